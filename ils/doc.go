// Package ils implements Iterated Local Search.
//
// The driver first descends to a local optimum with the shared best-of-K
// kernel, then repeats: perturb the incumbent with a strong move, descend
// again, and let the shared acceptance module decide whether the walk adopts
// the new local optimum. The global best is tracked independently of
// acceptance.
//
// Perturbation uses the problem's optional core.Perturber capability; problems
// without it get a stacked-Neighbor fallback (strength chained elementary
// moves), which preserves the "strong Neighbor-like move" contract.
package ils
