// Package alns implements Adaptive Large Neighborhood Search.
//
// Each iteration ruins part of the incumbent with one destroy operator and
// rebuilds it with one repair operator, both drawn independently by
// weight-proportional roulette from caller-supplied pools. Operators earn
// layered rewards — new global best, better than the incumbent, or merely
// accepted by the shared acceptance module — and every UpdateInterval
// iterations each used operator's weight is blended toward its mean reward:
//
//	weight ← decay·weight + (1−decay)·score/usage
//
// floor-clamped to 0.01. Operators unused in a window keep their prior weight,
// so one bad window cannot starve an operator, and the weight vector always
// sums to a strictly positive value. A ≈0 total weight at selection time falls
// back to uniform choice — a policy, not an error.
//
// The incumbent walk is driven by core's acceptance criteria (SA-like by
// default); the global best updates independently of acceptance.
package alns
