package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlopt/core"
)

var (
	// ErrNoAlgorithms indicates a Runner invoked with an empty algorithm set.
	ErrNoAlgorithms = errors.New("bench: no algorithms to run")
	// ErrBadRuns indicates Runs < 1.
	ErrBadRuns = errors.New("bench: runs must be >= 1")
)

// Algorithm is one named contender: Run executes a full solve with the given
// seed and returns its result. The context carries the per-run deadline;
// cancellation is cooperative, so a Run decides how often it polls ctx.
type Algorithm struct {
	Name string
	Run  func(ctx context.Context, seed int64) (core.Result, error)
}

// Record is the outcome of one algorithm across all repeated runs.
type Record struct {
	ID          string  // unique run-batch identifier
	Name        string
	Runs        int
	Cost        Summary
	Millis      Summary // wall time per run, milliseconds
	Evaluations int     // total across runs
}

// Runner repeats each algorithm Runs times with seeds BaseSeed, BaseSeed+1, …
// so contenders face identical seed sequences. Timeout > 0 puts a deadline on
// every individual run.
type Runner struct {
	Runs     int
	BaseSeed int64
	Timeout  time.Duration
	Log      *slog.Logger
}

// Execute runs every algorithm and returns one Record per contender. The
// batch stops as soon as ctx is done.
//
// Errors: ErrNoAlgorithms, ErrBadRuns, ctx.Err() on a canceled batch, or the
// first error any Run returns.
func (r Runner) Execute(ctx context.Context, algos []Algorithm) ([]Record, error) {
	if len(algos) == 0 {
		return nil, ErrNoAlgorithms
	}
	if r.Runs < 1 {
		return nil, ErrBadRuns
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		out   = make([]Record, 0, len(algos))
		costs = make([]float64, r.Runs)
		times = make([]float64, r.Runs)
	)
	for _, a := range algos {
		var (
			rec = Record{
				ID:   uuid.NewString(),
				Name: a.Name,
				Runs: r.Runs,
			}
			run int
		)
		for run = 0; run < r.Runs; run++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			var started = time.Now()
			res, err := r.runOne(ctx, a, r.BaseSeed+int64(run))
			if err != nil {
				return nil, err
			}
			costs[run] = res.Cost
			times[run] = float64(time.Since(started).Microseconds()) / 1e3
			rec.Evaluations += res.Evaluations
		}
		rec.Cost = Summarize(costs)
		rec.Millis = Summarize(times)

		if r.Log != nil {
			r.Log.Info("algorithm finished",
				slog.String("id", rec.ID),
				slog.String("name", rec.Name),
				slog.Float64("best", rec.Cost.Best),
				slog.Float64("mean", rec.Cost.Mean),
				slog.Float64("std", rec.Cost.Std),
				slog.Int("evaluations", rec.Evaluations))
		}

		out = append(out, rec)
	}

	return out, nil
}

// runOne executes a single seeded run under the per-run deadline, if any.
func (r Runner) runOne(ctx context.Context, a Algorithm, seed int64) (core.Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	return a.Run(ctx, seed)
}

// WriteCSV emits one header row plus one row per record.
func WriteCSV(w io.Writer, recs []Record) error {
	var cw = csv.NewWriter(w)
	if err := cw.Write([]string{
		"id", "name", "runs",
		"best_cost", "mean_cost", "std_cost",
		"best_ms", "mean_ms", "std_ms",
		"evaluations",
	}); err != nil {
		return err
	}

	var f = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, rec := range recs {
		if err := cw.Write([]string{
			rec.ID,
			rec.Name,
			strconv.Itoa(rec.Runs),
			f(rec.Cost.Best), f(rec.Cost.Mean), f(rec.Cost.Std),
			f(rec.Millis.Best), f(rec.Millis.Mean), f(rec.Millis.Std),
			strconv.Itoa(rec.Evaluations),
		}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
