// Package tabu implements a reactive, dual-memory Tabu Search engine.
//
// Each iteration samples a fixed number of randomized neighbors of the
// incumbent, forbids moves whose solution hash sits in a bounded FIFO recency
// memory, and advances to the best eligible candidate. Three classic extensions
// are layered on top:
//
//   - Aspiration: an otherwise-tabu candidate that beats the best-ever cost is
//     always eligible — the sole exception to the forbidden-move rule.
//   - Reactive tenure: the tabu tenure grows when the trajectory revisits a
//     recent solution (cycle evidence) and decays after a calm stretch, clamped
//     to [MinTenure, MaxTenure].
//   - Dual memory: a long-term frequency table penalizes often-visited
//     solutions once the search stalls (diversification), and a medium-term
//     policy restarts from the best-known solution after a longer stall
//     (intensification).
//
// Degenerate states are policies, not errors: when every sampled candidate is
// tabu and none aspirates, the engine advances to the least-recently-tabu
// candidate instead of stalling.
//
// The engine is problem-agnostic: solution semantics live in core.Problem, and
// identity is an opaque 64-bit hash (core.FNV1a by default; callers may plug a
// canonicalizing core.HashFunc).
//
// Use Solve for a one-shot run; determinism follows the core RNG seed policy.
package tabu
