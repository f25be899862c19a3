// Package bench_test — benchmarks for the engines on a shared deterministic
// instance.
//
// Policy: instances are built outside the timer, seeds are fixed, and sizes are
// small enough to run fast on CI while still exercising the hot loops.
package bench_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/alns"
	"github.com/katalvlaran/lvlopt/bench"
	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/ils"
	"github.com/katalvlaran/lvlopt/tabu"
)

// benchInstance is shared by every benchmark; construction stays off the clock.
func benchInstance(b *testing.B) *bench.EuclidTSP {
	b.Helper()
	inst, err := bench.RandomInstance(50, 100, core.NewRNG(42))
	if err != nil {
		b.Fatal(err)
	}

	return inst
}

func BenchmarkTabuSolve(b *testing.B) {
	var inst = benchInstance(b)
	var o = tabu.DefaultOptions()
	o.Iterations = 200
	o.Seed = 1

	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := tabu.Solve(inst, o); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkALNSSolve(b *testing.B) {
	var (
		inst    = benchInstance(b)
		destroy = inst.DestroyOps()
		repair  = inst.RepairOps()
	)
	var o = alns.DefaultOptions()
	o.Iterations = 500
	o.Seed = 1

	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := alns.Solve(inst, destroy, repair, o); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkILSSolve(b *testing.B) {
	var inst = benchInstance(b)
	var o = ils.DefaultOptions()
	o.Iterations = 20
	o.Seed = 1

	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := ils.Solve(inst, o); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTourCost(b *testing.B) {
	var (
		inst = benchInstance(b)
		rng  = core.NewRNG(7)
		buf  = make([]byte, 50)
	)
	inst.Generate(buf, rng)

	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		inst.Cost(buf)
	}
}

func BenchmarkTourHash(b *testing.B) {
	var (
		inst = benchInstance(b)
		rng  = core.NewRNG(7)
		buf  = make([]byte, 50)
	)
	inst.Generate(buf, rng)

	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		inst.TourHash(buf)
	}
}
