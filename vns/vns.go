// Package vns - options and engine loop.
package vns

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlopt/core"
)

// ErrInvalidOptions indicates an Options field outside its documented range.
var ErrInvalidOptions = errors.New("vns: invalid options")

// Options configures one Variable Neighborhood Search run.
type Options struct {
	// Direction selects minimize/maximize (default Minimize).
	Direction core.Direction

	// Iterations is the number of shake→descend cycles (default 300).
	Iterations int

	// MaxEvaluations caps objective calls; 0 means unlimited.
	MaxEvaluations int

	// KMax bounds the shake strength (default 5).
	KMax int

	// Neighbors is K for the descent kernel (default 10).
	Neighbors int

	// DescentRounds caps rounds per descent (default 50).
	DescentRounds int

	// UseVND replaces the flat descent with a strength-indexed VND sweep.
	UseVND bool

	// Seed drives the run's RNG stream (0 ⇒ deterministic default stream).
	Seed int64
}

// DefaultOptions returns the canonical VNS configuration.
func DefaultOptions() Options {
	return Options{
		Direction:     core.Minimize,
		Iterations:    300,
		KMax:          5,
		Neighbors:     10,
		DescentRounds: 50,
	}
}

// Validate checks every field against its documented range.
func (o Options) Validate() error {
	if !o.Direction.Valid() {
		return ErrInvalidOptions
	}
	if o.Iterations < 1 || o.KMax < 1 || o.Neighbors < 1 || o.DescentRounds < 1 {
		return ErrInvalidOptions
	}
	if o.MaxEvaluations < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// Solve runs VNS on p under opts.
//
// Errors: ErrInvalidOptions plus core sentinels from evaluator/kernel
// construction.
func Solve(p core.Problem, opts Options) (core.Result, error) {
	if err := opts.Validate(); err != nil {
		return core.Result{}, err
	}
	eval, err := core.NewEvaluator(p, opts.Direction)
	if err != nil {
		return core.Result{}, err
	}
	ls, err := core.NewLocalSearch(eval, opts.Neighbors, opts.DescentRounds)
	if err != nil {
		return core.Result{}, err
	}

	var (
		rng = core.NewRNG(opts.Seed)
		dir = opts.Direction

		cur   = eval.NewBuffer()
		cand  = eval.NewBuffer()
		best  = eval.NewBuffer()
		chain = eval.NewBuffer()
		vbuf  = eval.NewBuffer() // VND working candidate, reused across sweeps
	)

	eval.Generate(cur, rng)
	var curCost = ls.Descend(cur, eval.Cost(cur), rng)
	copy(best, cur)
	var bestCost = curCost

	var res = core.Result{Convergence: make([]float64, 0, opts.Iterations)}

	var (
		iter int
		k    = 1 // current shake strength
		cost float64
	)
	for iter = 0; iter < opts.Iterations; iter++ {
		if opts.MaxEvaluations > 0 && eval.Evaluations() >= opts.MaxEvaluations {
			break
		}

		shake(eval, cur, cand, chain, k, rng)
		cost = eval.Cost(cand)
		if opts.UseVND {
			cost = vndDescend(eval, ls, cand, cost, chain, vbuf, opts.KMax, rng)
		} else {
			cost = ls.Descend(cand, cost, rng)
		}

		if dir.Better(cost, bestCost) {
			bestCost = cost
			copy(best, cand)
		}

		// Neighborhood-change rule: success resets k, failure widens the shake.
		if dir.Better(cost, curCost) {
			copy(cur, cand)
			curCost = cost
			k = 1
		} else {
			k++
			if k > opts.KMax {
				k = 1
			}
		}

		res.Record(bestCost)
	}

	res.Best = best
	res.Cost = bestCost
	res.Iterations = iter
	res.Evaluations = eval.Evaluations()

	return res, nil
}

// shake writes a strength-k perturbation of cur into out (Perturber when
// available, chained Neighbor moves otherwise).
func shake(eval *core.Evaluator, cur, out, chain []byte, k int, rng *rand.Rand) {
	if pr, ok := eval.Problem().(core.Perturber); ok {
		pr.Perturb(cur, out, k, rng)

		return
	}

	copy(chain, cur)
	var s int
	for s = 0; s < k; s++ {
		eval.Neighbor(chain, out, rng)
		copy(chain, out)
	}
}

// vndDescend is the strength-indexed variable neighborhood descent: sweep
// shake strengths 1..kMax, descending after each shake; any improvement
// restarts the sweep from strength 1.
func vndDescend(eval *core.Evaluator, ls *core.LocalSearch, cur []byte, curCost float64, scratch, cand []byte, kMax int, rng *rand.Rand) float64 {
	var (
		s    = 1
		cost float64
	)
	for s <= kMax {
		shake(eval, cur, cand, scratch, s, rng)
		cost = ls.Descend(cand, eval.Cost(cand), rng)
		if eval.Better(cost, curCost) {
			copy(cur, cand)
			curCost = cost
			s = 1

			continue
		}
		s++
	}

	return curCost
}
