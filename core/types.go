// Package core - central types shared by every engine: the Direction predicate,
// the Problem capability contracts and the sentinel errors.
//
// Design principles:
//   - One direction predicate: never an inline sign comparison in an engine.
//   - Capability interfaces: one method per strategy; optional capabilities are
//     separate interfaces discovered via type assertion.
//   - Strict sentinels: engines return these errors verbatim, no wrapping in
//     hot paths.
package core

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors shared by the engines.
var (
	// ErrNilProblem indicates a nil Problem (or nil optional capability) was supplied.
	ErrNilProblem = errors.New("core: nil problem")

	// ErrZeroDimension indicates Dimension() or ElemSize() is not positive.
	ErrZeroDimension = errors.New("core: non-positive solution dimension")

	// ErrDimensionMismatch indicates a buffer whose length differs from
	// ElemSize()*Dimension().
	ErrDimensionMismatch = errors.New("core: buffer length mismatch")

	// ErrBadOptions indicates an options field outside its documented range.
	ErrBadOptions = errors.New("core: invalid options")
)

// Direction selects the optimization sense. It is the single source of truth
// for "is a better than b" across the whole library.
type Direction int

const (
	// Minimize treats lower costs as better.
	Minimize Direction = iota

	// Maximize treats higher costs as better.
	Maximize
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == Minimize || d == Maximize
}

// Better reports whether cost a is strictly better than cost b under d.
//
// Complexity: O(1).
func (d Direction) Better(a, b float64) bool {
	if d == Maximize {
		return a > b
	}

	return a < b
}

// InitCost returns the worst representable cost for d, suitable as the initial
// value of a running best (+Inf when minimizing, −Inf when maximizing).
func (d Direction) InitCost() float64 {
	if d == Maximize {
		return math.Inf(-1)
	}

	return math.Inf(1)
}

// Worsening returns the non-negative worsening magnitude of cand relative to
// incumbent under d (how much worse cand is; ≤0 means not worse). Used by
// SA-like acceptance to orient Δ independently of the direction flag.
func (d Direction) Worsening(cand, incumbent float64) float64 {
	if d == Maximize {
		return incumbent - cand
	}

	return cand - incumbent
}

// Problem is the mandatory capability contract every engine consumes.
//
// Contracts:
//   - Cost must be a pure function of the buffer contents (plus receiver state
//     that does not change during a run); the Evaluator counts each call.
//   - Neighbor must fully overwrite out and must not assume out aliases cur.
//   - Generate must write one valid random solution into out.
//   - Both Neighbor and Generate draw randomness only from the supplied rng.
type Problem interface {
	// Dimension returns the logical number of elements in a solution.
	Dimension() int

	// ElemSize returns the byte width of one element; a solution buffer holds
	// exactly ElemSize()*Dimension() bytes.
	ElemSize() int

	// Cost evaluates the solution stored in buf.
	Cost(buf []byte) float64

	// Neighbor writes one randomized neighbor of cur into out.
	Neighbor(cur, out []byte, rng *rand.Rand)

	// Generate writes one valid random initial solution into out.
	Generate(out []byte, rng *rand.Rand)
}

// Perturber is the optional capability consumed by ILS and VNS: a stronger,
// strength-scaled variant of Neighbor used to escape local optima.
type Perturber interface {
	// Perturb writes a perturbed copy of cur into out. strength ≥ 1 scales the
	// move size (e.g., number of stacked elementary moves).
	Perturb(cur, out []byte, strength int, rng *rand.Rand)
}

// Constructor is the optional capability consumed by GRASP: greedy-with-
// randomization construction through a restricted candidate list.
type Constructor interface {
	// Construct writes one greedily randomized solution into out.
	// alpha ∈ [0,1] controls RCL tightness: 0 is purely greedy, 1 purely random.
	Construct(out []byte, alpha float64, rng *rand.Rand)
}

// Breeder is the optional capability consumed by the memetic engine.
type Breeder interface {
	// Crossover combines parents p1 and p2 into child (child must not alias
	// either parent).
	Crossover(p1, p2, child []byte, rng *rand.Rand)

	// Mutate applies one random modification to buf in place.
	Mutate(buf []byte, rng *rand.Rand)
}
