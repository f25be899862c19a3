// Package core - shared acceptance criteria for the incumbent walk.
//
// The Acceptor decides, once per outer iteration, whether a proposed solution
// replaces the incumbent. Global-best tracking is deliberately NOT here: the
// best-ever solution updates whenever a candidate beats it, even when the
// incumbent walk rejects that candidate. Engines keep those two concerns apart.
package core

import (
	"math"
	"math/rand"
)

// AcceptanceKind selects one of the shared acceptance predicates.
type AcceptanceKind int

const (
	// AcceptBetter accepts iff the candidate is strictly better.
	AcceptBetter AcceptanceKind = iota

	// AcceptAlways accepts unconditionally (random-walk incumbent).
	AcceptAlways

	// AcceptSALike accepts improvements always and worsenings with probability
	// exp(−Δ/T); T cools geometrically every outer iteration regardless of the
	// outcome. T ≤ 0 degenerates to AcceptBetter.
	AcceptSALike

	// AcceptRestart behaves like AcceptBetter but counts consecutive
	// non-improving iterations; at the configured threshold the engine must
	// force-reset the incumbent to the best-known solution.
	AcceptRestart
)

// Valid reports whether k is a known acceptance kind.
func (k AcceptanceKind) Valid() bool {
	switch k {
	case AcceptBetter, AcceptAlways, AcceptSALike, AcceptRestart:
		return true
	default:
		return false
	}
}

// AcceptanceOptions configures the shared Acceptor.
//
// Fields:
//   - Kind             — predicate selection (default AcceptBetter).
//   - InitialTemp      — SA-like starting temperature; ≤ 0 degenerates to Better.
//   - Cooling          — SA-like geometric factor in (0,1]; applied every call.
//   - RestartThreshold — AcceptRestart: consecutive non-improving iterations
//     before a forced reset to the best-known solution (≥ 1).
type AcceptanceOptions struct {
	Kind             AcceptanceKind
	InitialTemp      float64
	Cooling          float64
	RestartThreshold int
}

// DefaultAcceptanceOptions returns the canonical configuration:
// strict-improvement acceptance with SA/restart knobs at literature defaults.
func DefaultAcceptanceOptions() AcceptanceOptions {
	return AcceptanceOptions{
		Kind:             AcceptBetter,
		InitialTemp:      1000.0,
		Cooling:          0.95,
		RestartThreshold: 50,
	}
}

// Validate checks option ranges for the selected kind.
//
// Errors: ErrBadOptions.
func (o AcceptanceOptions) Validate() error {
	if !o.Kind.Valid() {
		return ErrBadOptions
	}
	if o.Kind == AcceptSALike {
		// InitialTemp may be ≤ 0 (degenerates to Better), but cooling must be a
		// usable geometric factor.
		if o.Cooling <= 0 || o.Cooling > 1 {
			return ErrBadOptions
		}
		if math.IsNaN(o.InitialTemp) {
			return ErrBadOptions
		}
	}
	if o.Kind == AcceptRestart && o.RestartThreshold < 1 {
		return ErrBadOptions
	}

	return nil
}

// Acceptor applies one acceptance predicate across a run. It is stateful
// (temperature, non-improving streak) and serves exactly one run at a time.
type Acceptor struct {
	dir       Direction
	kind      AcceptanceKind
	temp      float64
	cooling   float64
	threshold int
	streak    int // consecutive non-improving Accept calls (AcceptRestart only)
}

// NewAcceptor builds an Acceptor for direction d from validated options.
//
// Errors: ErrBadOptions (unknown direction or invalid options).
func NewAcceptor(d Direction, o AcceptanceOptions) (*Acceptor, error) {
	if !d.Valid() {
		return nil, ErrBadOptions
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Acceptor{
		dir:       d,
		kind:      o.Kind,
		temp:      o.InitialTemp,
		cooling:   o.Cooling,
		threshold: o.RestartThreshold,
	}, nil
}

// Accept reports whether cand should replace the incumbent. Call exactly once
// per outer iteration: SA-like cooling and the restart streak advance on every
// call regardless of outcome.
func (a *Acceptor) Accept(cand, incumbent float64, rng *rand.Rand) bool {
	var better = a.dir.Better(cand, incumbent)

	switch a.kind {
	case AcceptAlways:
		a.bumpStreak(better)

		return true

	case AcceptSALike:
		var ok = better
		if !ok && a.temp > 0 {
			// Metropolis rule with Δ oriented by the direction predicate.
			var delta = a.dir.Worsening(cand, incumbent)
			if rng.Float64() < math.Exp(-delta/a.temp) {
				ok = true
			}
		}
		// Geometric cooling happens every outer iteration, accepted or not.
		a.temp *= a.cooling
		a.bumpStreak(better)

		return ok

	case AcceptRestart:
		a.bumpStreak(better)

		return better

	default: // AcceptBetter
		a.bumpStreak(better)

		return better
	}
}

// ShouldRestart reports whether the AcceptRestart streak has hit its threshold;
// it clears the streak when it fires so restarts do not cascade. Always false
// for other kinds.
func (a *Acceptor) ShouldRestart() bool {
	if a.kind != AcceptRestart || a.streak < a.threshold {
		return false
	}
	a.streak = 0

	return true
}

// Temperature exposes the current SA-like temperature (diagnostics/tests).
func (a *Acceptor) Temperature() float64 { return a.temp }

// bumpStreak advances the non-improving counter shared by the restart logic.
func (a *Acceptor) bumpStreak(improved bool) {
	if improved {
		a.streak = 0

		return
	}
	a.streak++
}
