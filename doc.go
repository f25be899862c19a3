// Package lvlopt is a problem-agnostic metaheuristic optimization toolkit:
// a family of stochastic search engines that optimize an opaque solution
// representation through caller-supplied strategies.
//
// 🚀 What is lvlopt?
//
//	A deterministic, single-threaded library that brings together:
//		• core/    — evaluation substrate: opaque buffers, seeded RNG, FNV hashing,
//		             a best-of-K local-search kernel and shared acceptance criteria
//		• tabu/    — reactive dual-memory Tabu Search (aspiration, frequency memory,
//		             adaptive tenure, diversification & intensification)
//		• alns/    — Adaptive Large Neighborhood Search with weight-learning
//		             destroy/repair operator pools
//		• ils/     — Iterated Local Search
//		• vns/     — Variable Neighborhood Search (with optional VND descent)
//		• grasp/   — Greedy Randomized Adaptive Search Procedure
//		• memetic/ — population search hybridized with local search
//		• pso/     — continuous Particle Swarm Optimization
//		• aco/     — combinatorial Ant Colony Optimization
//		• bench/   — seeded multi-run benchmark harness + Euclidean TSP fixture
//
// ✨ Why choose lvlopt?
//
//   - Deterministic by construction – every engine threads an explicit seeded RNG;
//     the same seed reproduces a bit-identical trajectory
//   - Problem-agnostic – engines never interpret solution bytes; semantics live
//     entirely in the caller's strategy implementations
//   - Allocation-disciplined – scratch buffers are reused across iterations;
//     the convergence history is the only externally visible allocation
//   - Uniform direction handling – one Better predicate encodes minimize/maximize
//     everywhere, so direction bugs cannot creep into individual engines
//
// The engines are synchronous and cooperative: budgets (iterations, evaluations)
// are the only stopping machinery, and one engine instance supports one run at a
// time. There are no exact solvers, no gradients and no parallel search here —
// only carefully bookkept stochastic local search.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
