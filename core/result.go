// Package core - the result model shared by all engines.
package core

// Result holds the outcome of one engine run.
//
// Ownership: Best is an engine-owned copy released to the caller; the
// Convergence slice is the only other externally visible allocation. Engines
// never retain references to either after returning.
type Result struct {
	// Best is the best solution buffer actually evaluated during the run.
	Best []byte

	// Cost is the objective value of Best.
	Cost float64

	// Iterations is the number of completed outer-loop iterations.
	Iterations int

	// Evaluations is the number of objective calls issued during the run.
	Evaluations int

	// Convergence records the best-so-far cost after each outer iteration
	// (index = iteration number); it is monotone w.r.t. the direction predicate.
	Convergence []float64
}

// Record appends the current best-so-far cost to the convergence history.
// Engines call it exactly once per outer iteration, in iteration order.
func (r *Result) Record(bestCost float64) {
	r.Convergence = append(r.Convergence, bestCost)
}
