// Package memetic - options and engine loop.
package memetic

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/katalvlaran/lvlopt/core"
)

var (
	// ErrInvalidOptions indicates an Options field outside its documented range.
	ErrInvalidOptions = errors.New("memetic: invalid options")

	// ErrNoBreeder indicates the problem does not implement core.Breeder.
	ErrNoBreeder = errors.New("memetic: problem lacks a breeding strategy")
)

// Mode selects how local search feeds back into the population.
type Mode int

const (
	// Lamarckian overwrites the offspring genome with the descent result.
	Lamarckian Mode = iota

	// Baldwinian updates only the offspring fitness; the genome is untouched.
	Baldwinian
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == Lamarckian || m == Baldwinian }

// Options configures one memetic run.
type Options struct {
	// Direction selects minimize/maximize (default Minimize).
	Direction core.Direction

	// Generations is the generational budget (default 100).
	Generations int

	// MaxEvaluations caps objective calls; 0 means unlimited.
	MaxEvaluations int

	// Population is the number of individuals (default 30, minimum 2).
	Population int

	// Elite is the number of top individuals copied unchanged (default 2).
	Elite int

	// Tournament is the selection tournament size (default 3).
	Tournament int

	// CrossoverRate / MutationRate are per-offspring probabilities
	// (defaults 0.9 / 0.2).
	CrossoverRate float64
	MutationRate  float64

	// Neighbors / DescentRounds parameterize the per-offspring descent
	// (defaults 5 / 20).
	Neighbors     int
	DescentRounds int

	// Mode selects Lamarckian or Baldwinian hybridization (default Lamarckian).
	Mode Mode

	// Seed drives the run's RNG stream (0 ⇒ deterministic default stream).
	Seed int64
}

// DefaultOptions returns the canonical memetic configuration.
func DefaultOptions() Options {
	return Options{
		Direction:     core.Minimize,
		Generations:   100,
		Population:    30,
		Elite:         2,
		Tournament:    3,
		CrossoverRate: 0.9,
		MutationRate:  0.2,
		Neighbors:     5,
		DescentRounds: 20,
		Mode:          Lamarckian,
	}
}

// Validate checks every field against its documented range.
func (o Options) Validate() error {
	if !o.Direction.Valid() || !o.Mode.Valid() {
		return ErrInvalidOptions
	}
	if o.Generations < 1 || o.Population < 2 {
		return ErrInvalidOptions
	}
	if o.Elite < 0 || o.Elite >= o.Population {
		return ErrInvalidOptions
	}
	if o.Tournament < 1 || o.Tournament > o.Population {
		return ErrInvalidOptions
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 || o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrInvalidOptions
	}
	if o.Neighbors < 1 || o.DescentRounds < 1 {
		return ErrInvalidOptions
	}
	if o.MaxEvaluations < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// Solve runs the memetic engine on p under opts; p must implement core.Breeder.
//
// Errors: ErrInvalidOptions, ErrNoBreeder, plus core sentinels from
// evaluator/kernel construction.
func Solve(p core.Problem, opts Options) (core.Result, error) {
	if err := opts.Validate(); err != nil {
		return core.Result{}, err
	}
	eval, err := core.NewEvaluator(p, opts.Direction)
	if err != nil {
		return core.Result{}, err
	}
	breeder, ok := p.(core.Breeder)
	if !ok {
		return core.Result{}, ErrNoBreeder
	}
	ls, err := core.NewLocalSearch(eval, opts.Neighbors, opts.DescentRounds)
	if err != nil {
		return core.Result{}, err
	}

	var (
		rng    = core.NewRNG(opts.Seed)
		dir    = opts.Direction
		pop    = opts.Population
		bufLen = eval.BufLen()
	)

	// Two generations backed by slabs, swapped each cycle.
	var (
		popA, scoresA = makeGeneration(pop, bufLen)
		popB, scoresB = makeGeneration(pop, bufLen)
		best          = eval.NewBuffer()
		scratch       = eval.NewBuffer() // Baldwinian descent workspace
		idxs          = make([]int, pop)
	)

	// Seed generation.
	var (
		i        int
		bestCost = dir.InitCost()
	)
	for i = 0; i < pop; i++ {
		eval.Generate(popA[i], rng)
		scoresA[i] = eval.Cost(popA[i])
		if dir.Better(scoresA[i], bestCost) {
			bestCost = scoresA[i]
			copy(best, popA[i])
		}
		idxs[i] = i
	}

	var res = core.Result{Convergence: make([]float64, 0, opts.Generations)}

	var (
		gen   int
		write int
		cost  float64
		child []byte
	)
	for gen = 0; gen < opts.Generations; gen++ {
		if opts.MaxEvaluations > 0 && eval.Evaluations() >= opts.MaxEvaluations {
			break
		}

		// Rank the living generation (direction-aware).
		sort.Slice(idxs, func(a, b int) bool {
			return dir.Better(scoresA[idxs[a]], scoresA[idxs[b]])
		})

		// Elitism: carry the top individuals unchanged.
		write = 0
		for ; write < opts.Elite; write++ {
			copy(popB[write], popA[idxs[write]])
			scoresB[write] = scoresA[idxs[write]]
		}

		// Breed the rest.
		for write < pop {
			var (
				p1 = tournament(scoresA, opts.Tournament, dir, rng)
				p2 = tournament(scoresA, opts.Tournament, dir, rng)
			)
			child = popB[write]

			if rng.Float64() < opts.CrossoverRate {
				breeder.Crossover(popA[p1], popA[p2], child, rng)
			} else {
				copy(child, popA[p1])
			}
			if rng.Float64() < opts.MutationRate {
				breeder.Mutate(child, rng)
			}

			cost = eval.Cost(child)
			if opts.Mode == Lamarckian {
				// Genome inherits the refinement.
				cost = ls.Descend(child, cost, rng)
				if dir.Better(cost, bestCost) {
					bestCost = cost
					copy(best, child)
				}
			} else {
				// Baldwinian: fitness reflects the refinement, genome does not.
				copy(scratch, child)
				cost = ls.Descend(scratch, cost, rng)
				if dir.Better(cost, bestCost) {
					bestCost = cost
					copy(best, scratch) // the refined solution was evaluated
				}
			}
			scoresB[write] = cost
			write++
		}

		popA, popB = popB, popA
		scoresA, scoresB = scoresB, scoresA

		res.Record(bestCost)
	}

	res.Best = best
	res.Cost = bestCost
	res.Iterations = gen
	res.Evaluations = eval.Evaluations()

	return res, nil
}

// makeGeneration allocates pop individual buffers over one backing slab.
func makeGeneration(pop, bufLen int) ([][]byte, []float64) {
	var (
		slab   = make([]byte, pop*bufLen)
		bufs   = make([][]byte, pop)
		scores = make([]float64, pop)
		i      int
	)
	for i = 0; i < pop; i++ {
		bufs[i] = slab[i*bufLen : (i+1)*bufLen]
	}

	return bufs, scores
}

// tournament returns the index of the best of size random individuals.
func tournament(scores []float64, size int, dir core.Direction, rng *rand.Rand) int {
	var best = rng.Intn(len(scores))
	var t, c int
	for t = 1; t < size; t++ {
		c = rng.Intn(len(scores))
		if dir.Better(scores[c], scores[best]) {
			best = c
		}
	}

	return best
}
