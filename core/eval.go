// Package core - counted objective evaluation.
//
// Evaluator is the single gate between an engine and the caller's objective:
// every Cost call increments the evaluation counter, which makes the accounting
// properties (evaluations ≥ iterations; tabu evaluations = iterations ×
// candidates) checkable without instrumenting problems.
package core

import "math/rand"

// Evaluator wraps a validated Problem with evaluation counting and buffer
// helpers. One Evaluator serves exactly one run; counters are not shared.
type Evaluator struct {
	prob   Problem   // caller's strategy object
	dir    Direction // optimization sense for this run
	bufLen int       // ElemSize()*Dimension(), cached
	evals  int       // number of Cost calls issued so far
}

// NewEvaluator validates p and returns an Evaluator for one run in direction d.
//
// Errors: ErrNilProblem, ErrZeroDimension, ErrBadOptions (unknown direction).
//
// Complexity: O(1).
func NewEvaluator(p Problem, d Direction) (*Evaluator, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if !d.Valid() {
		return nil, ErrBadOptions
	}

	var (
		dim  = p.Dimension()
		elem = p.ElemSize()
	)
	if dim <= 0 || elem <= 0 {
		return nil, ErrZeroDimension
	}

	return &Evaluator{
		prob:   p,
		dir:    d,
		bufLen: dim * elem,
	}, nil
}

// Cost evaluates buf and increments the evaluation counter.
func (e *Evaluator) Cost(buf []byte) float64 {
	e.evals++

	return e.prob.Cost(buf)
}

// Neighbor forwards to the problem's Neighbor strategy.
func (e *Evaluator) Neighbor(cur, out []byte, rng *rand.Rand) {
	e.prob.Neighbor(cur, out, rng)
}

// Generate forwards to the problem's Generate strategy.
func (e *Evaluator) Generate(out []byte, rng *rand.Rand) {
	e.prob.Generate(out, rng)
}

// Better forwards to the run's direction predicate.
func (e *Evaluator) Better(a, b float64) bool { return e.dir.Better(a, b) }

// Direction returns the run's optimization sense.
func (e *Evaluator) Direction() Direction { return e.dir }

// Problem returns the wrapped strategy object (for optional-capability
// discovery via type assertion).
func (e *Evaluator) Problem() Problem { return e.prob }

// BufLen returns the byte length of one solution buffer.
func (e *Evaluator) BufLen() int { return e.bufLen }

// NewBuffer allocates one solution buffer of the correct length.
// Engines call it during setup only; hot loops reuse these buffers.
func (e *Evaluator) NewBuffer() []byte { return make([]byte, e.bufLen) }

// Evaluations returns the number of objective calls issued so far.
func (e *Evaluator) Evaluations() int { return e.evals }
