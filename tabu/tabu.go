// Package tabu - the engine loop.
//
// Per iteration:
//  1. Sample Candidates randomized neighbors of the incumbent and evaluate all
//     of them (exactly Candidates objective calls per iteration).
//  2. Classify each candidate: tabu if its hash is in the recency list, unless
//     aspiration is on and the candidate beats the best cost known at the start
//     of the iteration.
//  3. Among eligible candidates pick the best score (cost, or cost worsened by
//     the frequency penalty while diversification is armed); equal scores break
//     toward the lowest visit count when intensification is enabled, first-seen
//     otherwise. If every candidate is tabu and none aspirates, advance to the
//     least-recently-tabu one.
//  4. Move, stamp the chosen hash into the recency list, trim to the current
//     tenure, feed cycle evidence to the reactive controller, bump frequency.
//  5. After a long stall, reset the incumbent to the best-known solution
//     (intensification).
//
// The global best updates whenever any sampled candidate beats it, independent
// of which move the walk takes: the engine never reports a solution it did not
// evaluate.
package tabu

import (
	"github.com/katalvlaran/lvlopt/core"
)

// Solve runs Tabu Search on p under opts and returns the best evaluated
// solution with its convergence history.
//
// Errors: ErrInvalidOptions plus core sentinels from evaluator construction
// (ErrNilProblem, ErrZeroDimension). A failed validation returns a zero Result.
//
// Complexity: O(Iterations·Candidates) objective calls; memory is
// O(Candidates·bufLen) scratch plus the bounded recency/frequency structures.
func Solve(p core.Problem, opts Options) (core.Result, error) {
	if err := opts.Validate(); err != nil {
		return core.Result{}, err
	}
	eval, err := core.NewEvaluator(p, opts.Direction)
	if err != nil {
		return core.Result{}, err
	}

	var hash = opts.Hash
	if hash == nil {
		hash = core.FNV1a
	}
	var (
		rng    = core.NewRNG(opts.Seed)
		dir    = opts.Direction
		k      = opts.Candidates
		bufLen = eval.BufLen()
	)

	// Engine-owned scratch: incumbent, best, and one arena slab holding all
	// candidate buffers. Nothing below allocates per iteration.
	var (
		cur    = eval.NewBuffer()
		best   = eval.NewBuffer()
		arena  = make([]byte, k*bufLen)
		cands  = make([][]byte, k)
		costs  = make([]float64, k)
		hashes = make([]uint64, k)
		i      int
	)
	for i = 0; i < k; i++ {
		cands[i] = arena[i*bufLen : (i+1)*bufLen]
	}

	// Initial solution (+1 evaluation, the "± initial" of the accounting rule).
	eval.Generate(cur, rng)
	copy(best, cur)
	var bestCost = eval.Cost(cur)

	var (
		list = newRecencyList(opts.hardCap())
		freq = make(freqTable, 4*opts.Iterations/3)
		ctrl = newTenureController(opts)
	)
	freq.Bump(hash(cur))

	var res = core.Result{Convergence: make([]float64, 0, opts.Iterations)}

	var (
		nonImproving int  // iterations since the last global-best improvement
		iter         int  // completed outer iterations
		improved     bool // did this iteration set a new global best
	)
	for iter = 0; iter < opts.Iterations; iter++ {
		// Cooperative evaluation budget: stop before starting a round that
		// would overrun it.
		if opts.MaxEvaluations > 0 && eval.Evaluations()+k > opts.MaxEvaluations {
			break
		}

		// Aspiration compares against the best cost known when the iteration
		// begins; the global best itself may tighten mid-scan.
		var bestBefore = bestCost

		improved = false
		for i = 0; i < k; i++ {
			eval.Neighbor(cur, cands[i], rng)
			costs[i] = eval.Cost(cands[i])
			hashes[i] = hash(cands[i])
			if dir.Better(costs[i], bestCost) {
				bestCost = costs[i]
				copy(best, cands[i])
				improved = true
			}
		}

		// Candidate selection.
		var (
			divArmed    = opts.Diversify && nonImproving >= opts.DiversificationTrigger
			chosen      = -1
			chosenScore float64
			chosenFreq  int
			fallback    = -1 // least-recently-tabu candidate
			fallbackAge = int(^uint(0) >> 1)
			score       float64
			visits      int
			last        int
			seen        bool
		)
		for i = 0; i < k; i++ {
			var isTabu = list.Contains(hashes[i])
			var aspirates = opts.Aspiration && dir.Better(costs[i], bestBefore)
			if isTabu && !aspirates {
				// Remember the entry that went tabu longest ago.
				last, seen = list.LastSeen(hashes[i])
				if seen && last < fallbackAge {
					fallbackAge = last
					fallback = i
				}

				continue
			}

			score = costs[i]
			if divArmed {
				score = worsen(score, dir, opts.DiversificationWeight*float64(freq.Count(hashes[i])))
			}
			visits = freq.Count(hashes[i])

			if chosen < 0 || dir.Better(score, chosenScore) {
				chosen, chosenScore, chosenFreq = i, score, visits

				continue
			}
			// Tie-break: lowest frequency when intensification is on;
			// first-seen otherwise (i.e., keep the earlier candidate).
			if opts.Intensify && score == chosenScore && visits < chosenFreq {
				chosen, chosenScore, chosenFreq = i, score, visits
			}
		}
		if chosen < 0 {
			// Degenerate state: everything tabu, nothing aspirates.
			// Advance to the least-recently-tabu candidate rather than stall.
			chosen = fallback
		}

		// Apply the move: the walk continues from the chosen candidate whether
		// or not it improves anything.
		copy(cur, cands[chosen])

		// Memory updates: cycle evidence first (LastSeen predates the push),
		// then recency insert + trim to the tenure in force.
		var h = hashes[chosen]
		last, seen = list.LastSeen(h)
		ctrl.Observe(seen && iter-last <= opts.CycleWindow)
		list.Push(h, iter)
		list.TrimTo(ctrl.Current())
		freq.Bump(h)

		// Stall bookkeeping + medium-term intensification restart.
		if improved {
			nonImproving = 0
		} else {
			nonImproving++
		}
		if opts.Intensify && nonImproving >= opts.IntensificationTrigger {
			copy(cur, best)
			nonImproving = 0
		}

		res.Record(bestCost)
	}

	res.Best = best
	res.Cost = bestCost
	res.Iterations = iter
	res.Evaluations = eval.Evaluations()

	return res, nil
}

// worsen degrades score by penalty p under direction d (penalties always push
// away from the optimum, whatever the sense).
func worsen(score float64, d core.Direction, p float64) float64 {
	if d == core.Maximize {
		return score - p
	}

	return score + p
}
