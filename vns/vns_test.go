// Package vns_test exercises the variable neighborhood search driver.
package vns_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/bench"
	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/vns"
)

func TestSolve_HexagonNearOptimal(t *testing.T) {
	inst, err := bench.RegularPolygon(6, 10)
	require.NoError(t, err)
	var optimal = 6 * 2 * 10 * math.Sin(math.Pi/6)

	var o = vns.DefaultOptions()
	o.Iterations = 60
	o.Seed = 42

	res, err := vns.Solve(inst, o)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Cost, optimal-1e-9)
	require.LessOrEqual(t, res.Cost, optimal*1.05)
	require.Equal(t, res.Cost, inst.Cost(res.Best))
}

func TestSolve_VNDVariantAlsoConverges(t *testing.T) {
	inst, err := bench.RegularPolygon(6, 10)
	require.NoError(t, err)
	var optimal = 6 * 2 * 10 * math.Sin(math.Pi/6)

	var o = vns.DefaultOptions()
	o.Iterations = 60
	o.UseVND = true
	o.Seed = 42

	res, err := vns.Solve(inst, o)
	require.NoError(t, err)
	require.LessOrEqual(t, res.Cost, optimal*1.05)
}

func TestSolve_Deterministic(t *testing.T) {
	inst, err := bench.RandomInstance(15, 100, core.NewRNG(8))
	require.NoError(t, err)

	var run = func(useVND bool) core.Result {
		var o = vns.DefaultOptions()
		o.Iterations = 30
		o.UseVND = useVND
		o.Seed = 9

		res, err := vns.Solve(inst, o)
		require.NoError(t, err)

		return res
	}

	require.Equal(t, run(false).Cost, run(false).Cost)
	require.Equal(t, run(true).Cost, run(true).Cost)
	require.Equal(t, run(false).Best, run(false).Best)
}

func TestSolve_ConvergenceIsMonotone(t *testing.T) {
	inst, err := bench.RandomInstance(12, 100, core.NewRNG(5))
	require.NoError(t, err)

	var o = vns.DefaultOptions()
	o.Iterations = 40
	o.Seed = 2

	res, err := vns.Solve(inst, o)
	require.NoError(t, err)
	var i int
	for i = 1; i < len(res.Convergence); i++ {
		require.LessOrEqual(t, res.Convergence[i], res.Convergence[i-1])
	}
}

func TestSolve_OptionValidation(t *testing.T) {
	inst, err := bench.RegularPolygon(5, 1)
	require.NoError(t, err)

	var o = vns.DefaultOptions()
	o.KMax = 0
	_, err = vns.Solve(inst, o)
	require.ErrorIs(t, err, vns.ErrInvalidOptions)
}
