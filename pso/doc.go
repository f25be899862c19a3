// Package pso implements continuous Particle Swarm Optimization.
//
// A swarm of particles moves through a box-bounded real search space under the
// canonical velocity rule
//
//	v ← w·v + c1·r1·(pBest − x) + c2·r2·(gBest − x)
//	x ← x + v
//
// with per-component velocity clamping and boundary clamping (velocity zeroed
// on contact). PSO sits outside the byte-buffer substrate shared by the
// combinatorial engines: its contract is a plain objective over []float64.
// Determinism, direction handling and convergence bookkeeping follow the same
// rules as the rest of the library.
package pso
