// Package alns - operator contracts, options and sentinel errors.
package alns

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlopt/core"
)

var (
	// ErrInvalidOptions indicates an Options field outside its documented range.
	ErrInvalidOptions = errors.New("alns: invalid options")

	// ErrEmptyPool indicates an empty destroy or repair operator pool.
	ErrEmptyPool = errors.New("alns: empty operator pool")

	// ErrNilOperator indicates an operator with a nil Apply function.
	ErrNilOperator = errors.New("alns: nil operator")
)

// DestroyOp removes part of a solution.
//
// Contract: Apply writes a partial solution into out (out never aliases cur);
// the encoding of "removed" is owned by the caller's representation and must be
// understood by every repair operator in the run. degree ∈ (0,1] scales how
// much of the solution is ruined.
type DestroyOp struct {
	// Name identifies the operator in results and logs.
	Name string

	// Apply ruins cur into out.
	Apply func(cur, out []byte, degree float64, rng *rand.Rand)
}

// RepairOp completes a partial solution in place into a feasible one.
type RepairOp struct {
	// Name identifies the operator in results and logs.
	Name string

	// Apply rebuilds buf (as produced by a DestroyOp) into a full solution.
	Apply func(buf []byte, rng *rand.Rand)
}

// Options configures one ALNS run.
type Options struct {
	// Direction selects minimize/maximize (default Minimize).
	Direction core.Direction

	// Iterations is the outer-loop budget (default 2000).
	Iterations int

	// MaxEvaluations caps objective calls; 0 means unlimited.
	MaxEvaluations int

	// DestroyDegree is the ruin fraction handed to destroy operators,
	// in (0,1] (default 0.25).
	DestroyDegree float64

	// RewardBest / RewardBetter / RewardAccepted are the reward tiers
	// (defaults 10 / 5 / 1). A candidate earns exactly one tier per iteration.
	RewardBest     float64
	RewardBetter   float64
	RewardAccepted float64

	// UpdateInterval is the weight-update period in iterations (default 50).
	UpdateInterval int

	// Decay is the blending factor in [0,1): weight ← Decay·weight +
	// (1−Decay)·score/usage (default 0.8).
	Decay float64

	// Acceptance configures the shared incumbent-walk predicate
	// (default SA-like with core defaults).
	Acceptance core.AcceptanceOptions

	// Seed drives the run's RNG stream (0 ⇒ deterministic default stream).
	Seed int64
}

// DefaultOptions returns the canonical ALNS configuration (reward tiers
// 10/5/1, interval 50, decay 0.8, SA-like acceptance).
func DefaultOptions() Options {
	var acc = core.DefaultAcceptanceOptions()
	acc.Kind = core.AcceptSALike

	return Options{
		Direction:      core.Minimize,
		Iterations:     2000,
		MaxEvaluations: 0,
		DestroyDegree:  0.25,
		RewardBest:     10,
		RewardBetter:   5,
		RewardAccepted: 1,
		UpdateInterval: 50,
		Decay:          0.8,
		Acceptance:     acc,
	}
}

// Validate checks every field against its documented range.
//
// Errors: ErrInvalidOptions (acceptance misconfiguration surfaces as
// core.ErrBadOptions from the acceptor constructor).
//
// Complexity: O(1).
func (o Options) Validate() error {
	if !o.Direction.Valid() {
		return ErrInvalidOptions
	}
	if o.Iterations < 1 || o.MaxEvaluations < 0 {
		return ErrInvalidOptions
	}
	if o.DestroyDegree <= 0 || o.DestroyDegree > 1 {
		return ErrInvalidOptions
	}
	if o.RewardBest < 0 || o.RewardBetter < 0 || o.RewardAccepted < 0 {
		return ErrInvalidOptions
	}
	if o.UpdateInterval < 1 {
		return ErrInvalidOptions
	}
	if o.Decay < 0 || o.Decay >= 1 {
		return ErrInvalidOptions
	}

	return nil
}

// Result extends the shared result with the learned operator weights,
// index-aligned with the pools passed to Solve.
type Result struct {
	core.Result

	// DestroyWeights / RepairWeights are the final weights after the run.
	DestroyWeights []float64
	RepairWeights  []float64
}
