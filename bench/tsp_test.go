// Package bench_test validates the Euclidean TSP fixture: encoding, operator
// correctness and the rotation-normalizing hash.
package bench_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/bench"
	"github.com/katalvlaran/lvlopt/core"
)

// requirePermutation asserts buf visits each of n cities exactly once.
func requirePermutation(t *testing.T, buf []byte, n int) {
	t.Helper()
	require.Len(t, buf, n)
	var seen = make([]bool, n)
	for _, c := range buf {
		require.Less(t, int(c), n)
		require.False(t, seen[c], "city %d repeated", c)
		seen[c] = true
	}
}

func square(t *testing.T) *bench.EuclidTSP {
	t.Helper()
	inst, err := bench.NewEuclidTSP([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	return inst
}

func TestNewEuclidTSP_RejectsBadShapes(t *testing.T) {
	_, err := bench.NewEuclidTSP([][2]float64{{0, 0}, {1, 1}})
	require.ErrorIs(t, err, bench.ErrBadInstance)

	_, err = bench.NewEuclidTSP(make([][2]float64, 300))
	require.ErrorIs(t, err, bench.ErrBadInstance)

	// 256 cities would need index 255, which is the removed-position
	// sentinel in partial tours; 255 cities is the largest valid size.
	_, err = bench.NewEuclidTSP(make([][2]float64, 256))
	require.ErrorIs(t, err, bench.ErrBadInstance)

	_, err = bench.NewEuclidTSP(make([][2]float64, 255))
	require.NoError(t, err)

	_, err = bench.RegularPolygon(2, 1)
	require.ErrorIs(t, err, bench.ErrBadInstance)

	_, err = bench.RandomInstance(10, 0, core.NewRNG(1))
	require.ErrorIs(t, err, bench.ErrBadInstance)
}

func TestCost_UnitSquarePerimeter(t *testing.T) {
	var inst = square(t)
	require.InDelta(t, 4.0, inst.Cost([]byte{0, 1, 2, 3}), 1e-12)
	// Crossing diagonals cost more.
	require.InDelta(t, 2+2*math.Sqrt2, inst.Cost([]byte{0, 2, 1, 3}), 1e-12)
}

func TestGenerate_ProducesPermutation(t *testing.T) {
	inst, err := bench.RandomInstance(30, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng = core.NewRNG(42)
		buf = make([]byte, 30)
	)
	inst.Generate(buf, rng)
	requirePermutation(t, buf, 30)
}

func TestNeighbor_PreservesPermutation(t *testing.T) {
	inst, err := bench.RandomInstance(20, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng = core.NewRNG(42)
		cur = make([]byte, 20)
		out = make([]byte, 20)
		i   int
	)
	inst.Generate(cur, rng)
	for i = 0; i < 50; i++ {
		inst.Neighbor(cur, out, rng)
		requirePermutation(t, out, 20)
		copy(cur, out)
	}
}

func TestPerturb_PreservesPermutation(t *testing.T) {
	inst, err := bench.RandomInstance(20, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng = core.NewRNG(42)
		cur = make([]byte, 20)
		out = make([]byte, 20)
	)
	inst.Generate(cur, rng)
	inst.Perturb(cur, out, 5, rng)
	requirePermutation(t, out, 20)
}

func TestConstruct_GreedyAndRandomEndsProducePermutations(t *testing.T) {
	inst, err := bench.RandomInstance(25, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng   = core.NewRNG(42)
		out   = make([]byte, 25)
		alpha float64
	)
	for _, alpha = range []float64{0, 0.3, 1} {
		inst.Construct(out, alpha, rng)
		requirePermutation(t, out, 25)
	}
}

func TestConstruct_GreedyBeatsRandomOnAverage(t *testing.T) {
	inst, err := bench.RandomInstance(40, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng    = core.NewRNG(42)
		out    = make([]byte, 40)
		greedy float64
		random float64
		i      int
	)
	for i = 0; i < 10; i++ {
		inst.Construct(out, 0, rng)
		greedy += inst.Cost(out)
		inst.Construct(out, 1, rng)
		random += inst.Cost(out)
	}
	require.Less(t, greedy, random)
}

func TestCrossover_ChildIsPermutation(t *testing.T) {
	inst, err := bench.RandomInstance(20, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng   = core.NewRNG(42)
		p1    = make([]byte, 20)
		p2    = make([]byte, 20)
		child = make([]byte, 20)
		i     int
	)
	inst.Generate(p1, rng)
	inst.Generate(p2, rng)
	for i = 0; i < 20; i++ {
		inst.Crossover(p1, p2, child, rng)
		requirePermutation(t, child, 20)
	}
}

func TestMutate_SwapsExactlyTwoPositions(t *testing.T) {
	inst, err := bench.RandomInstance(20, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng = core.NewRNG(42)
		buf = make([]byte, 20)
	)
	inst.Generate(buf, rng)
	var before = append([]byte(nil), buf...)
	inst.Mutate(buf, rng)
	requirePermutation(t, buf, 20)

	var changed int
	var i int
	for i = range buf {
		if buf[i] != before[i] {
			changed++
		}
	}
	require.Equal(t, 2, changed)
}

func TestTourHash_RotationInvariant(t *testing.T) {
	var inst = square(t)

	var (
		tour = []byte{2, 3, 0, 1}
		want = inst.TourHash(tour)
		rots = [][]byte{{3, 0, 1, 2}, {0, 1, 2, 3}, {1, 2, 3, 0}}
	)
	for _, r := range rots {
		require.Equal(t, want, inst.TourHash(r))
	}

	// A genuinely different cycle must (here) hash differently.
	require.NotEqual(t, want, inst.TourHash([]byte{0, 2, 1, 3}))
}

func TestDestroyRepair_AllPairsRestoreValidTours(t *testing.T) {
	inst, err := bench.RandomInstance(20, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng = core.NewRNG(42)
		cur = make([]byte, 20)
		out = make([]byte, 20)
	)
	inst.Generate(cur, rng)

	for _, d := range inst.DestroyOps() {
		for _, r := range inst.RepairOps() {
			d.Apply(cur, out, 0.3, rng)
			r.Apply(out, rng)
			requirePermutation(t, out, 20)
		}
	}
}

func TestDestroy_HighDegreeLeavesAnchor(t *testing.T) {
	inst, err := bench.RandomInstance(10, 100, core.NewRNG(2))
	require.NoError(t, err)

	var (
		rng = core.NewRNG(42)
		cur = make([]byte, 10)
		out = make([]byte, 10)
	)
	inst.Generate(cur, rng)

	// Even degree 1.0 must keep at least two cities in place so repair has an
	// anchor to grow from.
	for _, d := range inst.DestroyOps() {
		d.Apply(cur, out, 1.0, rng)
		var kept int
		for _, c := range out {
			if c != 0xFF {
				kept++
			}
		}
		require.GreaterOrEqual(t, kept, 2)
	}
}
