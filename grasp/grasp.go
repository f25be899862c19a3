// Package grasp - options and engine loop.
package grasp

import (
	"errors"

	"github.com/katalvlaran/lvlopt/core"
)

var (
	// ErrInvalidOptions indicates an Options field outside its documented range.
	ErrInvalidOptions = errors.New("grasp: invalid options")

	// ErrNoConstructor indicates the problem does not implement core.Constructor.
	ErrNoConstructor = errors.New("grasp: problem lacks a construction strategy")
)

// Options configures one GRASP run.
type Options struct {
	// Direction selects minimize/maximize (default Minimize).
	Direction core.Direction

	// Restarts is the number of construct→descend cycles (default 100).
	Restarts int

	// MaxEvaluations caps objective calls; 0 means unlimited.
	MaxEvaluations int

	// Alpha is the RCL tightness in [0,1] (default 0.3).
	Alpha float64

	// Neighbors is K for the descent kernel (default 10).
	Neighbors int

	// DescentRounds caps rounds per descent (default 100).
	DescentRounds int

	// Seed drives the run's RNG streams (0 ⇒ deterministic default stream).
	Seed int64
}

// DefaultOptions returns the canonical GRASP configuration.
func DefaultOptions() Options {
	return Options{
		Direction:     core.Minimize,
		Restarts:      100,
		Alpha:         0.3,
		Neighbors:     10,
		DescentRounds: 100,
	}
}

// Validate checks every field against its documented range.
func (o Options) Validate() error {
	if !o.Direction.Valid() {
		return ErrInvalidOptions
	}
	if o.Restarts < 1 || o.Neighbors < 1 || o.DescentRounds < 1 {
		return ErrInvalidOptions
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return ErrInvalidOptions
	}
	if o.MaxEvaluations < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// Solve runs GRASP on p under opts; p must implement core.Constructor.
//
// Errors: ErrInvalidOptions, ErrNoConstructor, plus core sentinels from
// evaluator/kernel construction.
func Solve(p core.Problem, opts Options) (core.Result, error) {
	if err := opts.Validate(); err != nil {
		return core.Result{}, err
	}
	eval, err := core.NewEvaluator(p, opts.Direction)
	if err != nil {
		return core.Result{}, err
	}
	ctor, ok := p.(core.Constructor)
	if !ok {
		return core.Result{}, ErrNoConstructor
	}
	ls, err := core.NewLocalSearch(eval, opts.Neighbors, opts.DescentRounds)
	if err != nil {
		return core.Result{}, err
	}

	var (
		base = core.NewRNG(opts.Seed)
		dir  = opts.Direction

		cand = eval.NewBuffer()
		best = eval.NewBuffer()
	)

	var (
		res      = core.Result{Convergence: make([]float64, 0, opts.Restarts)}
		bestCost = dir.InitCost()
		restart  int
		cost     float64
	)
	for restart = 0; restart < opts.Restarts; restart++ {
		if opts.MaxEvaluations > 0 && eval.Evaluations() >= opts.MaxEvaluations {
			break
		}

		// Independent stream per restart keeps constructions decorrelated.
		var rng = core.DeriveRNG(base, uint64(restart))

		ctor.Construct(cand, opts.Alpha, rng)
		cost = ls.Descend(cand, eval.Cost(cand), rng)

		if dir.Better(cost, bestCost) {
			bestCost = cost
			copy(best, cand)
		}

		res.Record(bestCost)
	}

	res.Best = best
	res.Cost = bestCost
	res.Iterations = restart
	res.Evaluations = eval.Evaluations()

	return res, nil
}
