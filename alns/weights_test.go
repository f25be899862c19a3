// White-box tests for the operator-weight learning: roulette selection,
// reward/blend mechanics and the weight floor.
package alns

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/core"
)

func TestOpPool_StartsUniform(t *testing.T) {
	var p = newOpPool(3)
	require.Equal(t, []float64{1, 1, 1}, p.weights())
}

func TestOpPool_PickCountsUsage(t *testing.T) {
	var (
		p   = newOpPool(2)
		rng = core.NewRNG(42)
		i   int
	)
	for i = 0; i < 10; i++ {
		p.pick(rng)
	}
	require.Equal(t, 10, p.ops[0].usage+p.ops[1].usage)
}

func TestOpPool_PickFavorsHeavyOperator(t *testing.T) {
	var p = newOpPool(2)
	p.ops[0].weight = 100
	p.ops[1].weight = 0.01

	var (
		rng  = core.NewRNG(42)
		zero int
		i    int
	)
	for i = 0; i < 200; i++ {
		if p.pick(rng) == 0 {
			zero++
		}
	}
	require.Greater(t, zero, 180)
}

func TestOpPool_PickUniformFallbackOnZeroTotal(t *testing.T) {
	var p = newOpPool(3)
	var i int
	for i = range p.ops {
		p.ops[i].weight = 0
	}

	// Degenerate vector: selection must still hit every operator.
	var (
		rng  = core.NewRNG(42)
		hits [3]int
	)
	for i = 0; i < 300; i++ {
		hits[p.pick(rng)]++
	}
	for i = range hits {
		require.Positive(t, hits[i])
	}
}

func TestOpPool_BlendMovesOnlyUsedOperators(t *testing.T) {
	var p = newOpPool(2)
	p.ops[0].usage = 4
	p.ops[0].score = 40 // mean reward 10

	p.blend(0.8)

	// weight ← 0.8·1.0 + 0.2·10 = 2.8; the unused operator keeps its weight.
	require.InDelta(t, 2.8, p.ops[0].weight, 1e-12)
	require.Equal(t, 1.0, p.ops[1].weight)
}

func TestOpPool_BlendResetsWindowState(t *testing.T) {
	var p = newOpPool(2)
	p.ops[0].usage = 4
	p.ops[0].score = 40
	p.ops[1].usage = 2 // used, zero reward

	p.blend(0.8)

	var i int
	for i = range p.ops {
		require.Zero(t, p.ops[i].score)
		require.Zero(t, p.ops[i].usage)
	}
}

func TestOpPool_BlendFloorsWeight(t *testing.T) {
	var p = newOpPool(1)
	p.ops[0].weight = 0.02
	p.ops[0].usage = 10 // zero score: mean reward 0 drags the weight down

	p.blend(0.1)
	require.Equal(t, weightFloor, p.ops[0].weight)
}
