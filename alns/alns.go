// Package alns - the engine loop.
//
// Per iteration: roulette-select one destroy and one repair operator, ruin the
// incumbent into the candidate buffer, rebuild it in place, evaluate once, then
// settle rewards and the incumbent walk. Weight blending runs every
// UpdateInterval iterations.
//
// Reward policy: the tier comparison uses the direction predicate against the
// pre-move global best and incumbent, but the "accepted" tier is granted only
// when the shared acceptance module actually takes the candidate — an operator
// earns nothing for a proposal the walk rejects.
package alns

import (
	"github.com/katalvlaran/lvlopt/core"
)

// Solve runs ALNS on p with the given operator pools under opts.
//
// Errors: ErrInvalidOptions, ErrEmptyPool, ErrNilOperator, plus core sentinels
// from evaluator/acceptor construction. A failed validation returns a zero
// Result.
//
// Complexity: O(Iterations) objective calls (one candidate per iteration);
// O(bufLen) scratch plus O(nd+nr) operator state.
func Solve(p core.Problem, destroy []DestroyOp, repair []RepairOp, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if len(destroy) == 0 || len(repair) == 0 {
		return Result{}, ErrEmptyPool
	}
	var i int
	for i = range destroy {
		if destroy[i].Apply == nil {
			return Result{}, ErrNilOperator
		}
	}
	for i = range repair {
		if repair[i].Apply == nil {
			return Result{}, ErrNilOperator
		}
	}

	eval, err := core.NewEvaluator(p, opts.Direction)
	if err != nil {
		return Result{}, err
	}
	acc, err := core.NewAcceptor(opts.Direction, opts.Acceptance)
	if err != nil {
		return Result{}, err
	}

	var (
		rng = core.NewRNG(opts.Seed)
		dir = opts.Direction

		cur  = eval.NewBuffer()
		cand = eval.NewBuffer()
		best = eval.NewBuffer()

		dPool = newOpPool(len(destroy))
		rPool = newOpPool(len(repair))
	)

	// Initial solution.
	eval.Generate(cur, rng)
	var curCost = eval.Cost(cur)
	copy(best, cur)
	var bestCost = curCost

	var res = Result{Result: core.Result{Convergence: make([]float64, 0, opts.Iterations)}}

	var (
		iter     int
		di, ri   int
		cost     float64
		tier     float64
		newBest  bool
		better   bool
		accepted bool
	)
	for iter = 0; iter < opts.Iterations; iter++ {
		if opts.MaxEvaluations > 0 && eval.Evaluations() >= opts.MaxEvaluations {
			break
		}

		// Ruin & recreate through the selected operator pair.
		di = dPool.pick(rng)
		ri = rPool.pick(rng)
		destroy[di].Apply(cur, cand, opts.DestroyDegree, rng)
		repair[ri].Apply(cand, rng)
		cost = eval.Cost(cand)

		// Tier comparison against pre-move reference points.
		newBest = dir.Better(cost, bestCost)
		better = dir.Better(cost, curCost)

		// One acceptance call per outer iteration (cooling/streaks advance here).
		accepted = acc.Accept(cost, curCost, rng)

		// Settle the reward: exactly one tier, or none.
		tier = 0
		switch {
		case newBest:
			tier = opts.RewardBest
		case better:
			tier = opts.RewardBetter
		case accepted:
			tier = opts.RewardAccepted
		}
		if tier > 0 {
			dPool.reward(di, tier)
			rPool.reward(ri, tier)
		}

		// Global best moves independently of the incumbent walk.
		if newBest {
			bestCost = cost
			copy(best, cand)
		}
		if accepted {
			copy(cur, cand)
			curCost = cost
		}
		if acc.ShouldRestart() {
			copy(cur, best)
			curCost = bestCost
		}

		// Periodic learning step.
		if (iter+1)%opts.UpdateInterval == 0 {
			dPool.blend(opts.Decay)
			rPool.blend(opts.Decay)
		}

		res.Record(bestCost)
	}

	res.Best = best
	res.Cost = bestCost
	res.Iterations = iter
	res.Evaluations = eval.Evaluations()
	res.DestroyWeights = dPool.weights()
	res.RepairWeights = rPool.weights()

	return res, nil
}
