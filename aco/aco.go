// Package aco - contracts, options, result and engine loop.
package aco

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlopt/core"
)

var (
	// ErrInvalidOptions indicates an Options field outside its documented range.
	ErrInvalidOptions = errors.New("aco: invalid options")

	// ErrNilProblem indicates a nil problem implementation.
	ErrNilProblem = errors.New("aco: nil problem")
)

// pheromoneFloor keeps every trail strictly positive after evaporation.
const pheromoneFloor = 1e-12

// Problem is the permutation contract consumed by the colony.
//
// Contracts:
//   - Cost must be a pure, strictly positive function of the permutation.
//   - Heuristic(from, to) returns the static desirability of placing index
//     `to` right after `from`; from == Dimension() addresses the virtual start.
type Problem interface {
	// Dimension returns the permutation length n (indices 0..n-1).
	Dimension() int

	// Cost evaluates a complete permutation.
	Cost(perm []int) float64

	// Heuristic returns η(from, to) ≥ 0.
	Heuristic(from, to int) float64
}

// Options configures one ACO run.
type Options struct {
	// Iterations is the colony-sweep budget (default 200).
	Iterations int

	// MaxEvaluations caps objective calls; 0 means unlimited.
	MaxEvaluations int

	// Ants is the colony size (default 20).
	Ants int

	// Alpha and Beta weight pheromone vs. heuristic influence
	// (defaults 1.0 / 2.0).
	Alpha float64
	Beta  float64

	// Rho is the evaporation rate in (0,1) (default 0.2).
	Rho float64

	// Q scales the iteration-best deposit Q/cost (default 100).
	Q float64

	// Tau0 is the initial pheromone level (default 1.0).
	Tau0 float64

	// CandidateK truncates the per-step candidate list; 0 keeps all remaining
	// indices.
	CandidateK int

	// Seed drives the run's RNG stream (0 ⇒ deterministic default stream).
	Seed int64
}

// DefaultOptions returns the canonical ACO configuration.
func DefaultOptions() Options {
	return Options{
		Iterations: 200,
		Ants:       20,
		Alpha:      1.0,
		Beta:       2.0,
		Rho:        0.2,
		Q:          100.0,
		Tau0:       1.0,
	}
}

// Validate checks every field against its documented range.
func (o Options) Validate() error {
	if o.Iterations < 1 || o.Ants < 1 {
		return ErrInvalidOptions
	}
	if o.Alpha < 0 || o.Beta < 0 {
		return ErrInvalidOptions
	}
	if o.Rho <= 0 || o.Rho >= 1 {
		return ErrInvalidOptions
	}
	if o.Q <= 0 || o.Tau0 <= 0 {
		return ErrInvalidOptions
	}
	if o.CandidateK < 0 || o.MaxEvaluations < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// Result holds the outcome of one ACO run.
type Result struct {
	// Tour is the best permutation actually evaluated.
	Tour []int

	// Cost is the objective value of Tour.
	Cost float64

	// Iterations and Evaluations account the run.
	Iterations  int
	Evaluations int

	// Convergence records the best-so-far cost per iteration.
	Convergence []float64
}

// Solve runs the colony on p under opts (minimization; the deposit rule
// divides by cost).
//
// Errors: ErrInvalidOptions, ErrNilProblem, core.ErrZeroDimension.
//
// Complexity: O(Iterations·Ants·n²) time, O(n²) pheromone memory.
func Solve(p Problem, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if p == nil {
		return Result{}, ErrNilProblem
	}
	var n = p.Dimension()
	if n < 1 {
		return Result{}, core.ErrZeroDimension
	}

	var rng = core.NewRNG(opts.Seed)

	// Pheromone matrix with a virtual start row (row index n).
	var (
		tau = make([]float64, (n+1)*n)
		i   int
	)
	for i = range tau {
		tau[i] = opts.Tau0
	}

	// Colony scratch, reused by every ant.
	var (
		perm      = make([]int, n)
		available = make([]int, n)
		weights   = make([]float64, n)

		iterBest = make([]int, n)
		best     = make([]int, n)
		bestCost = math.Inf(1)
		evals    int
	)

	var res = Result{Convergence: make([]float64, 0, opts.Iterations)}

	var (
		iter         int
		ant          int
		cost         float64
		iterBestCost float64
	)
	for iter = 0; iter < opts.Iterations; iter++ {
		if opts.MaxEvaluations > 0 && evals+opts.Ants > opts.MaxEvaluations {
			break
		}

		iterBestCost = math.Inf(1)

		for ant = 0; ant < opts.Ants; ant++ {
			construct(p, tau, opts, rng, perm, available, weights)
			cost = p.Cost(perm)
			evals++

			if cost < iterBestCost {
				iterBestCost = cost
				copy(iterBest, perm)
			}
			if cost < bestCost {
				bestCost = cost
				copy(best, perm)
			}
		}

		// Evaporation with floor, then iteration-best deposit.
		var keep = 1.0 - opts.Rho
		for i = range tau {
			tau[i] *= keep
			if tau[i] < pheromoneFloor {
				tau[i] = pheromoneFloor
			}
		}
		deposit(tau, n, iterBest, opts.Q/iterBestCost)

		res.Convergence = append(res.Convergence, bestCost)
	}

	res.Tour = best
	res.Cost = bestCost
	res.Iterations = iter
	res.Evaluations = evals

	return res, nil
}

// tauIdx linearizes the (n+1)×n pheromone matrix.
func tauIdx(n, from, to int) int { return from*n + to }

// deposit reinforces the trail along perm, including the virtual-start edge.
func deposit(tau []float64, n int, perm []int, delta float64) {
	if len(perm) == 0 {
		return
	}
	tau[tauIdx(n, n, perm[0])] += delta
	var i int
	for i = 0; i+1 < len(perm); i++ {
		tau[tauIdx(n, perm[i], perm[i+1])] += delta
	}
}

// construct builds one permutation, drawing each next index with probability
// proportional to τ^α·η^β over the (optionally truncated) remaining set.
func construct(p Problem, tau []float64, opts Options, rng *rand.Rand, outPerm, available []int, weights []float64) {
	var (
		n    = len(outPerm)
		i    int
		rem  = n
		prev = n // virtual start
	)
	for i = 0; i < n; i++ {
		available[i] = i
	}

	var (
		pos, t, k int
		j, chosen int
		w, sum, r float64
		acc       float64
	)
	for pos = 0; pos < n; pos++ {
		// Candidate-list truncation: sample k of the remaining rem indices.
		k = rem
		if opts.CandidateK > 0 && opts.CandidateK < rem {
			k = opts.CandidateK
			for t = 0; t < k; t++ {
				var swap = t + rng.Intn(rem-t)
				available[t], available[swap] = available[swap], available[t]
			}
		}

		// Transition weights τ^α·η^β.
		sum = 0
		for t = 0; t < k; t++ {
			j = available[t]
			w = math.Pow(tau[tauIdx(n, prev, j)], opts.Alpha) *
				math.Pow(p.Heuristic(prev, j), opts.Beta)
			weights[t] = w
			sum += w
		}

		// Roulette draw; a collapsed weight mass degrades to uniform.
		if sum <= 0 {
			chosen = rng.Intn(k)
		} else {
			r = rng.Float64() * sum
			acc = 0
			chosen = k - 1
			for t = 0; t < k; t++ {
				acc += weights[t]
				if r <= acc {
					chosen = t

					break
				}
			}
		}

		j = available[chosen]
		outPerm[pos] = j
		prev = j

		// Remove the chosen index from the remaining set.
		available[chosen], available[rem-1] = available[rem-1], available[chosen]
		rem--
	}
}
