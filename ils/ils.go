// Package ils - options and engine loop.
package ils

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlopt/core"
)

// ErrInvalidOptions indicates an Options field outside its documented range.
var ErrInvalidOptions = errors.New("ils: invalid options")

// Options configures one Iterated Local Search run.
type Options struct {
	// Direction selects minimize/maximize (default Minimize).
	Direction core.Direction

	// Iterations is the number of perturb→descend→accept cycles (default 200).
	Iterations int

	// MaxEvaluations caps objective calls; 0 means unlimited.
	MaxEvaluations int

	// Neighbors is K for the descent kernel (default 10).
	Neighbors int

	// DescentRounds caps rounds per descent (default 100).
	DescentRounds int

	// Strength scales the perturbation (default 3).
	Strength int

	// Acceptance configures the incumbent walk (default strict improvement).
	Acceptance core.AcceptanceOptions

	// Seed drives the run's RNG stream (0 ⇒ deterministic default stream).
	Seed int64
}

// DefaultOptions returns the canonical ILS configuration.
func DefaultOptions() Options {
	return Options{
		Direction:     core.Minimize,
		Iterations:    200,
		Neighbors:     10,
		DescentRounds: 100,
		Strength:      3,
		Acceptance:    core.DefaultAcceptanceOptions(),
	}
}

// Validate checks every field against its documented range.
func (o Options) Validate() error {
	if !o.Direction.Valid() {
		return ErrInvalidOptions
	}
	if o.Iterations < 1 || o.Neighbors < 1 || o.DescentRounds < 1 || o.Strength < 1 {
		return ErrInvalidOptions
	}
	if o.MaxEvaluations < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// Solve runs ILS on p under opts.
//
// Errors: ErrInvalidOptions plus core sentinels from evaluator/acceptor/kernel
// construction.
func Solve(p core.Problem, opts Options) (core.Result, error) {
	if err := opts.Validate(); err != nil {
		return core.Result{}, err
	}
	eval, err := core.NewEvaluator(p, opts.Direction)
	if err != nil {
		return core.Result{}, err
	}
	acc, err := core.NewAcceptor(opts.Direction, opts.Acceptance)
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
		chain = eval.NewBuffer() // stacked-Neighbor fallback scratch
	)

	// Initial local optimum.
	eval.Generate(cur, rng)
	var curCost = ls.Descend(cur, eval.Cost(cur), rng)
	copy(best, cur)
	var bestCost = curCost

	var res = core.Result{Convergence: make([]float64, 0, opts.Iterations)}

	var (
		iter int
		cost float64
	)
	for iter = 0; iter < opts.Iterations; iter++ {
		if opts.MaxEvaluations > 0 && eval.Evaluations() >= opts.MaxEvaluations {
			break
		}

		perturb(eval, cur, cand, chain, opts.Strength, rng)
		cost = ls.Descend(cand, eval.Cost(cand), rng)

		if dir.Better(cost, bestCost) {
			bestCost = cost
			copy(best, cand)
		}
		if acc.Accept(cost, curCost, rng) {
			copy(cur, cand)
			curCost = cost
		}
		if acc.ShouldRestart() {
			copy(cur, best)
			curCost = bestCost
		}

		res.Record(bestCost)
	}

	res.Best = best
	res.Cost = bestCost
	res.Iterations = iter
	res.Evaluations = eval.Evaluations()

	return res, nil
}

// perturb writes a strength-scaled perturbation of cur into out, preferring
// the problem's Perturber capability and falling back to strength chained
// Neighbor moves through the chain scratch buffer.
func perturb(eval *core.Evaluator, cur, out, chain []byte, strength int, rng *rand.Rand) {
	if pr, ok := eval.Problem().(core.Perturber); ok {
		pr.Perturb(cur, out, strength, rng)

		return
	}

	copy(chain, cur)
	var s int
	for s = 0; s < strength; s++ {
		eval.Neighbor(chain, out, rng)
		copy(chain, out)
	}
}
