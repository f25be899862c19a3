// Package core - best-of-K local search kernel shared by several drivers.
//
// Descend hill-climbs toward a local optimum: each round samples K independent
// neighbors of the current solution, keeps the best of them (first-seen
// tie-break) and replaces the current solution only when that candidate is
// strictly better. The first round without improvement stops the descent —
// steepest-descent over a sampled neighborhood, not first-improvement over an
// exhaustive one; intensity is tuned via K and the round cap.
//
// Accounting: exactly K objective evaluations per completed round.
package core

import "math/rand"

// LocalSearch is the reusable hill-climbing kernel. Scratch buffers are
// allocated once at construction and reused across every call, so repeated
// descents inside an outer driver loop do not churn the heap.
type LocalSearch struct {
	eval      *Evaluator // counted objective gate
	neighbors int        // K candidates sampled per round
	maxRounds int        // hard cap on rounds per descent
	cand      []byte     // scratch: candidate under evaluation
	roundBest []byte     // scratch: best candidate of the current round
}

// NewLocalSearch builds a kernel over eval sampling neighbors candidates per
// round, capped at maxRounds rounds per descent.
//
// Errors: ErrNilProblem when eval is nil; ErrBadOptions when neighbors < 1 or
// maxRounds < 1.
//
// Complexity: O(bufLen) setup (two scratch buffers).
func NewLocalSearch(eval *Evaluator, neighbors, maxRounds int) (*LocalSearch, error) {
	if eval == nil {
		return nil, ErrNilProblem
	}
	if neighbors < 1 || maxRounds < 1 {
		return nil, ErrBadOptions
	}

	return &LocalSearch{
		eval:      eval,
		neighbors: neighbors,
		maxRounds: maxRounds,
		cand:      eval.NewBuffer(),
		roundBest: eval.NewBuffer(),
	}, nil
}

// Descend improves cur in place until a round yields no strict improvement or
// the round cap is reached, and returns the final cost of cur.
//
// Contracts:
//   - cur holds a valid solution of cost curCost (already evaluated).
//   - rng must be the engine's run stream (non-nil).
//
// Complexity: O(rounds·K) objective calls; no allocations.
func (ls *LocalSearch) Descend(cur []byte, curCost float64, rng *rand.Rand) float64 {
	var (
		round    int     // current round index
		k        int     // candidate index within a round
		cost     float64 // cost of the candidate under evaluation
		bestCost float64 // best candidate cost seen this round
	)

	for round = 0; round < ls.maxRounds; round++ {
		bestCost = ls.eval.Direction().InitCost()

		// Sample K independent neighbors; keep the best (first-seen tie-break:
		// only a strictly better candidate displaces the running round best).
		for k = 0; k < ls.neighbors; k++ {
			ls.eval.Neighbor(cur, ls.cand, rng)
			cost = ls.eval.Cost(ls.cand)
			if ls.eval.Better(cost, bestCost) {
				bestCost = cost
				copy(ls.roundBest, ls.cand)
			}
		}

		// Steepest descent: accept only a strict improvement over cur.
		if !ls.eval.Better(bestCost, curCost) {
			break
		}
		copy(cur, ls.roundBest)
		curCost = bestCost
	}

	return curCost
}
