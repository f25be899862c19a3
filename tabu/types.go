// Package tabu - options and sentinel errors for the Tabu Search engine.
package tabu

import (
	"errors"

	"github.com/katalvlaran/lvlopt/core"
)

// ErrInvalidOptions indicates an Options field outside its documented range.
var ErrInvalidOptions = errors.New("tabu: invalid options")

// Options configures one Tabu Search run.
// Use DefaultOptions() for the canonical setup, then override selectively.
type Options struct {
	// Direction selects minimize/maximize (default Minimize).
	Direction core.Direction

	// Iterations is the outer-loop budget (default 5000).
	Iterations int

	// MaxEvaluations caps objective calls; 0 means unlimited.
	MaxEvaluations int

	// Candidates is the number of neighbors sampled per iteration (default 20).
	Candidates int

	// Tenure is the initial (and, without reactive control, fixed) tabu-list
	// length cap (default 15). The list never exceeds the current tenure.
	Tenure int

	// Aspiration permits an otherwise-tabu candidate that beats the best-ever
	// cost (default true).
	Aspiration bool

	// Hash maps a solution buffer to its 64-bit identity; nil selects
	// core.FNV1a. Canonicalizing hashes (e.g., rotation-invariant tours) widen
	// what counts as "the same solution".
	Hash core.HashFunc

	// Reactive enables the adaptive tenure controller.
	Reactive bool

	// MinTenure / MaxTenure clamp the reactive tenure (defaults 5 / 50).
	MinTenure int
	MaxTenure int

	// ReactiveIncrease is added to the tenure when a sampled hash repeats
	// within CycleWindow iterations (default 5).
	ReactiveIncrease int

	// ReactiveDecrease is subtracted after CalmStretch iterations without a
	// repeat (default 1).
	ReactiveDecrease int

	// CycleWindow is the lookback (in iterations) within which a re-seen hash
	// counts as cycling (default 100).
	CycleWindow int

	// CalmStretch is the repeat-free stretch required before the tenure decays
	// (default 200).
	CalmStretch int

	// Diversify enables the long-term frequency penalty.
	Diversify bool

	// DiversificationTrigger is the non-improving stretch that arms the
	// frequency penalty (default 100).
	DiversificationTrigger int

	// DiversificationWeight scales the penalty: score worsens by
	// weight × frequency[hash] (default 0.5).
	DiversificationWeight float64

	// Intensify enables the medium-term restart policy and the low-frequency
	// tie-break among equally scored candidates.
	Intensify bool

	// IntensificationTrigger is the non-improving stretch after which the
	// incumbent is reset to the best-known solution (default 250).
	IntensificationTrigger int

	// Seed drives the run's RNG stream (0 ⇒ deterministic default stream).
	Seed int64
}

// DefaultOptions returns the canonical Tabu Search configuration:
// 5000 iterations, 20 candidates per iteration, tenure 15, aspiration on,
// reactive control and both memories enabled with literature defaults.
func DefaultOptions() Options {
	return Options{
		Direction:      core.Minimize,
		Iterations:     5000,
		MaxEvaluations: 0,
		Candidates:     20,
		Tenure:         15,
		Aspiration:     true,

		Reactive:         true,
		MinTenure:        5,
		MaxTenure:        50,
		ReactiveIncrease: 5,
		ReactiveDecrease: 1,
		CycleWindow:      100,
		CalmStretch:      200,

		Diversify:              true,
		DiversificationTrigger: 100,
		DiversificationWeight:  0.5,

		Intensify:              true,
		IntensificationTrigger: 250,
	}
}

// Validate checks every field against its documented range.
//
// Errors: ErrInvalidOptions.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if !o.Direction.Valid() {
		return ErrInvalidOptions
	}
	if o.Iterations < 1 || o.Candidates < 1 || o.Tenure < 1 {
		return ErrInvalidOptions
	}
	if o.MaxEvaluations < 0 {
		return ErrInvalidOptions
	}
	if o.Reactive {
		if o.MinTenure < 1 || o.MaxTenure < o.MinTenure {
			return ErrInvalidOptions
		}
		if o.Tenure < o.MinTenure || o.Tenure > o.MaxTenure {
			return ErrInvalidOptions
		}
		if o.ReactiveIncrease < 1 || o.ReactiveDecrease < 1 {
			return ErrInvalidOptions
		}
		if o.CycleWindow < 1 || o.CalmStretch < 1 {
			return ErrInvalidOptions
		}
	}
	if o.Diversify {
		if o.DiversificationTrigger < 1 || o.DiversificationWeight < 0 {
			return ErrInvalidOptions
		}
	}
	if o.Intensify && o.IntensificationTrigger < 1 {
		return ErrInvalidOptions
	}

	return nil
}

// hardCap returns the largest tenure this run can reach (ring capacity).
func (o Options) hardCap() int {
	if o.Reactive {
		return o.MaxTenure
	}

	return o.Tenure
}
