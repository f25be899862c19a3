// Package memetic implements a memetic (genetic + local search) engine.
//
// A population evolves by elitism, tournament selection, crossover and
// mutation through the problem's core.Breeder capability; every offspring is
// then refined by the shared best-of-K descent kernel. Two hybridization modes
// are supported:
//
//   - Lamarckian: the refined solution overwrites the offspring's genome, so
//     learned improvements are inherited.
//   - Baldwinian: only the offspring's fitness reflects the refinement; the
//     genome keeps its pre-descent form.
//
// Population storage lives in two preallocated slabs swapped between
// generations, so the generational loop performs no per-offspring allocation.
package memetic
