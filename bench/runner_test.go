package bench_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/bench"
	"github.com/katalvlaran/lvlopt/core"
)

// seedEcho is a stub contender whose cost is its seed, so run/seed plumbing
// is observable from the outside.
func seedEcho() bench.Algorithm {
	return bench.Algorithm{
		Name: "echo",
		Run: func(_ context.Context, seed int64) (core.Result, error) {
			return core.Result{Cost: float64(seed), Evaluations: 3}, nil
		},
	}
}

func TestRunner_Validation(t *testing.T) {
	var r = bench.Runner{Runs: 5}
	_, err := r.Execute(context.Background(), nil)
	require.ErrorIs(t, err, bench.ErrNoAlgorithms)

	r = bench.Runner{Runs: 0}
	_, err = r.Execute(context.Background(), []bench.Algorithm{seedEcho()})
	require.ErrorIs(t, err, bench.ErrBadRuns)
}

func TestRunner_SeedSequenceAndStats(t *testing.T) {
	var r = bench.Runner{Runs: 4, BaseSeed: 10}
	recs, err := r.Execute(context.Background(), []bench.Algorithm{seedEcho()})
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// Seeds 10..13 become costs 10..13.
	var rec = recs[0]
	require.Equal(t, "echo", rec.Name)
	require.Equal(t, 4, rec.Runs)
	require.Equal(t, 10.0, rec.Cost.Best)
	require.InDelta(t, 11.5, rec.Cost.Mean, 1e-12)
	require.Equal(t, 12, rec.Evaluations)
	require.NotEmpty(t, rec.ID)
}

func TestRunner_DistinctIDsPerAlgorithm(t *testing.T) {
	var r = bench.Runner{Runs: 1, BaseSeed: 1}
	var a, b = seedEcho(), seedEcho()
	b.Name = "echo2"

	recs, err := r.Execute(context.Background(), []bench.Algorithm{a, b})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.NotEqual(t, recs[0].ID, recs[1].ID)
}

func TestRunner_PropagatesRunError(t *testing.T) {
	var boom = errors.New("boom")
	var r = bench.Runner{Runs: 2, BaseSeed: 1}
	_, err := r.Execute(context.Background(), []bench.Algorithm{{
		Name: "broken",
		Run:  func(context.Context, int64) (core.Result, error) { return core.Result{}, boom },
	}})
	require.ErrorIs(t, err, boom)
}

func TestRunner_TimeoutBoundsEachRun(t *testing.T) {
	// The contender blocks until its deadline fires; the runner must hand it a
	// context that actually expires, and the error surfaces from Execute.
	var r = bench.Runner{Runs: 3, BaseSeed: 1, Timeout: 5 * time.Millisecond}
	_, err := r.Execute(context.Background(), []bench.Algorithm{{
		Name: "stuck",
		Run: func(ctx context.Context, _ int64) (core.Result, error) {
			<-ctx.Done()

			return core.Result{}, ctx.Err()
		},
	}})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunner_TimeoutLeavesFastRunsAlone(t *testing.T) {
	var r = bench.Runner{Runs: 2, BaseSeed: 7, Timeout: time.Minute}
	recs, err := r.Execute(context.Background(), []bench.Algorithm{seedEcho()})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, 7.0, recs[0].Cost.Best)
}

func TestRunner_CanceledContextStopsBatch(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()

	var calls int
	var r = bench.Runner{Runs: 3, BaseSeed: 1}
	_, err := r.Execute(ctx, []bench.Algorithm{{
		Name: "never",
		Run: func(context.Context, int64) (core.Result, error) {
			calls++

			return core.Result{}, nil
		},
	}})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, calls)
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var r = bench.Runner{Runs: 2, BaseSeed: 5}
	recs, err := r.Execute(context.Background(), []bench.Algorithm{seedEcho()})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, bench.WriteCSV(&sb, recs))

	var lines = strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "id,name,runs,best_cost"))
	require.Contains(t, lines[1], ",echo,2,")
}
