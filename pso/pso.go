// Package pso - options, result and engine loop.
package pso

import (
	"errors"

	"github.com/katalvlaran/lvlopt/core"
)

var (
	// ErrInvalidOptions indicates an Options field outside its documented range.
	ErrInvalidOptions = errors.New("pso: invalid options")

	// ErrNilObjective indicates a nil objective function.
	ErrNilObjective = errors.New("pso: nil objective")
)

// Objective evaluates one position. It must be a pure function of x.
type Objective func(x []float64) float64

// Options configures one PSO run.
type Options struct {
	// Direction selects minimize/maximize (default Minimize).
	Direction core.Direction

	// Iterations is the swarm-update budget (default 500).
	Iterations int

	// MaxEvaluations caps objective calls; 0 means unlimited.
	MaxEvaluations int

	// Particles is the swarm size (default 40).
	Particles int

	// Inertia, Cognitive and Social are the velocity coefficients
	// (defaults 0.729 / 1.49445 / 1.49445 — the constriction-style standard).
	Inertia   float64
	Cognitive float64
	Social    float64

	// VMax clamps each velocity component to [−VMax, VMax]; ≤ 0 disables
	// clamping (default 0.25·(Hi−Lo)).
	VMax float64

	// Lo and Hi bound every position component (defaults 0 and 1; Lo < Hi).
	Lo float64
	Hi float64

	// Seed drives the run's RNG stream (0 ⇒ deterministic default stream).
	Seed int64
}

// DefaultOptions returns the canonical PSO configuration on the unit box.
func DefaultOptions() Options {
	return Options{
		Direction:  core.Minimize,
		Iterations: 500,
		Particles:  40,
		Inertia:    0.729,
		Cognitive:  1.49445,
		Social:     1.49445,
		VMax:       0.25,
		Lo:         0.0,
		Hi:         1.0,
	}
}

// Validate checks every field against its documented range.
func (o Options) Validate() error {
	if !o.Direction.Valid() {
		return ErrInvalidOptions
	}
	if o.Iterations < 1 || o.Particles < 1 {
		return ErrInvalidOptions
	}
	if o.Inertia < 0 || o.Cognitive < 0 || o.Social < 0 {
		return ErrInvalidOptions
	}
	if o.Lo >= o.Hi {
		return ErrInvalidOptions
	}
	if o.MaxEvaluations < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// Result holds the outcome of one PSO run.
type Result struct {
	// Position is the best position actually evaluated.
	Position []float64

	// Cost is the objective value at Position.
	Cost float64

	// Iterations and Evaluations account the run.
	Iterations  int
	Evaluations int

	// Convergence records the best-so-far cost per iteration.
	Convergence []float64
}

// particle is one swarm member; all slices are views into per-swarm slabs.
type particle struct {
	pos      []float64
	vel      []float64
	bestPos  []float64
	bestCost float64
}

// Solve runs PSO on objective f over dim dimensions under opts.
//
// Errors: ErrInvalidOptions, ErrNilObjective, core.ErrZeroDimension.
func Solve(f Objective, dim int, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, ErrNilObjective
	}
	if dim < 1 {
		return Result{}, core.ErrZeroDimension
	}

	var (
		rng = core.NewRNG(opts.Seed)
		dir = opts.Direction
		n   = opts.Particles

		span = opts.Hi - opts.Lo
		vMax = opts.VMax
	)

	// Swarm storage: three slabs sliced per particle.
	var (
		posSlab  = make([]float64, n*dim)
		velSlab  = make([]float64, n*dim)
		bestSlab = make([]float64, n*dim)
		swarm    = make([]particle, n)
		i, d     int
	)
	for i = 0; i < n; i++ {
		swarm[i] = particle{
			pos:     posSlab[i*dim : (i+1)*dim],
			vel:     velSlab[i*dim : (i+1)*dim],
			bestPos: bestSlab[i*dim : (i+1)*dim],
		}
	}

	var (
		gBestPos  = make([]float64, dim)
		gBestCost = dir.InitCost()
		evals     int
		cost      float64
	)

	// Random initialization + first evaluation sweep.
	for i = 0; i < n; i++ {
		var pt = &swarm[i]
		for d = 0; d < dim; d++ {
			pt.pos[d] = opts.Lo + rng.Float64()*span
			if vMax > 0 {
				pt.vel[d] = (rng.Float64()*2 - 1) * vMax
			} else {
				pt.vel[d] = (rng.Float64()*2 - 1) * 0.1 * span
			}
		}
		cost = f(pt.pos)
		evals++

		pt.bestCost = cost
		copy(pt.bestPos, pt.pos)
		if dir.Better(cost, gBestCost) {
			gBestCost = cost
			copy(gBestPos, pt.pos)
		}
	}

	var res = Result{Convergence: make([]float64, 0, opts.Iterations)}

	var (
		iter   int
		v, x   float64
		r1, r2 float64
	)
	for iter = 0; iter < opts.Iterations; iter++ {
		if opts.MaxEvaluations > 0 && evals+n > opts.MaxEvaluations {
			break
		}

		for i = 0; i < n; i++ {
			var pt = &swarm[i]

			for d = 0; d < dim; d++ {
				r1 = rng.Float64()
				r2 = rng.Float64()

				v = opts.Inertia*pt.vel[d] +
					opts.Cognitive*r1*(pt.bestPos[d]-pt.pos[d]) +
					opts.Social*r2*(gBestPos[d]-pt.pos[d])

				if vMax > 0 {
					if v > vMax {
						v = vMax
					} else if v < -vMax {
						v = -vMax
					}
				}
				pt.vel[d] = v

				// Boundary clamp zeroes the velocity component on contact.
				x = pt.pos[d] + v
				if x < opts.Lo {
					x = opts.Lo
					pt.vel[d] = 0
				} else if x > opts.Hi {
					x = opts.Hi
					pt.vel[d] = 0
				}
				pt.pos[d] = x
			}

			cost = f(pt.pos)
			evals++

			if dir.Better(cost, pt.bestCost) {
				pt.bestCost = cost
				copy(pt.bestPos, pt.pos)
			}
			if dir.Better(cost, gBestCost) {
				gBestCost = cost
				copy(gBestPos, pt.pos)
			}
		}

		res.Convergence = append(res.Convergence, gBestCost)
	}

	res.Position = gBestPos
	res.Cost = gBestCost
	res.Iterations = iter
	res.Evaluations = evals

	return res, nil
}
