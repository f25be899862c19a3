package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/core"
)

func newKernel(t *testing.T, n, neighbors, rounds int) (*core.Evaluator, *core.LocalSearch) {
	t.Helper()
	eval, err := core.NewEvaluator(byteSum{n: n}, core.Minimize)
	require.NoError(t, err)
	ls, err := core.NewLocalSearch(eval, neighbors, rounds)
	require.NoError(t, err)

	return eval, ls
}

func TestNewLocalSearch_Validation(t *testing.T) {
	eval, err := core.NewEvaluator(byteSum{n: 4}, core.Minimize)
	require.NoError(t, err)

	_, err = core.NewLocalSearch(nil, 5, 5)
	require.ErrorIs(t, err, core.ErrNilProblem)
	_, err = core.NewLocalSearch(eval, 0, 5)
	require.ErrorIs(t, err, core.ErrBadOptions)
	_, err = core.NewLocalSearch(eval, 5, 0)
	require.ErrorIs(t, err, core.ErrBadOptions)
}

func TestDescend_NeverWorsens(t *testing.T) {
	var (
		eval, ls = newKernel(t, 16, 8, 50)
		rng      = core.NewRNG(42)
		cur      = eval.NewBuffer()
	)
	eval.Generate(cur, rng)
	var start = eval.Cost(cur)

	var final = ls.Descend(cur, start, rng)
	require.LessOrEqual(t, final, start)
	// The returned cost must match the buffer contents.
	require.Equal(t, final, byteSum{n: 16}.Cost(cur))
}

func TestDescend_ExactlyKEvaluationsPerRound(t *testing.T) {
	var (
		eval, ls = newKernel(t, 8, 5, 30)
		rng      = core.NewRNG(7)
		cur      = eval.NewBuffer()
	)
	eval.Generate(cur, rng)
	var (
		start  = eval.Cost(cur)
		before = eval.Evaluations()
	)
	ls.Descend(cur, start, rng)

	var spent = eval.Evaluations() - before
	require.Positive(t, spent)
	require.Zero(t, spent%5, "descent must spend a whole multiple of K evaluations")
}

func TestDescend_StopsAtLocalOptimum(t *testing.T) {
	var (
		eval, ls = newKernel(t, 4, 10, 100)
		rng      = core.NewRNG(1)
		cur      = eval.NewBuffer() // all zeros: the global optimum
	)
	var before = eval.Evaluations()
	var final = ls.Descend(cur, 0, rng)

	require.Zero(t, final)
	// No neighbor of the optimum improves: one probing round, then stop.
	require.Equal(t, 10, eval.Evaluations()-before)
}

func TestDescend_Deterministic(t *testing.T) {
	var run = func() ([]byte, float64) {
		var (
			eval, ls = newKernel(t, 16, 8, 50)
			rng      = core.NewRNG(42)
			cur      = eval.NewBuffer()
		)
		eval.Generate(cur, rng)

		return cur, ls.Descend(cur, eval.Cost(cur), rng)
	}

	aBuf, aCost := run()
	bBuf, bCost := run()
	require.Equal(t, aCost, bCost)
	require.Equal(t, aBuf, bBuf)
}
