// Command optbench races the engines against each other on a shared random
// Euclidean TSP instance (plus a continuous sphere run for the swarm) and
// reports best/mean/std cost and wall time per algorithm.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlopt/aco"
	"github.com/katalvlaran/lvlopt/alns"
	"github.com/katalvlaran/lvlopt/bench"
	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/grasp"
	"github.com/katalvlaran/lvlopt/ils"
	"github.com/katalvlaran/lvlopt/memetic"
	"github.com/katalvlaran/lvlopt/pso"
	"github.com/katalvlaran/lvlopt/tabu"
	"github.com/katalvlaran/lvlopt/vns"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		verbose bool
	)

	var cmd = &cobra.Command{
		Use:           "optbench",
		Short:         "Benchmark the lvlopt metaheuristic engines on a random TSP instance",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			var level = slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			var log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level: level,
			}))

			return run(cmd.Context(), cfg, log, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(ctx context.Context, cfg config, log *slog.Logger, out io.Writer) error {
	inst, err := bench.RandomInstance(cfg.Cities, cfg.Span, core.NewRNG(cfg.Seed))
	if err != nil {
		return err
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		if timeout, err = time.ParseDuration(cfg.Timeout); err != nil {
			return fmt.Errorf("optbench: parse timeout: %w", err)
		}
	}
	log.Info("instance ready",
		slog.Int("cities", cfg.Cities),
		slog.Float64("span", cfg.Span),
		slog.Int64("seed", cfg.Seed))

	var algos []bench.Algorithm
	for _, a := range buildAlgorithms(inst, cfg) {
		if cfg.wants(a.Name) {
			algos = append(algos, a)
		}
	}

	var runner = bench.Runner{Runs: cfg.Runs, BaseSeed: cfg.Seed, Timeout: timeout, Log: log}
	recs, err := runner.Execute(ctx, algos)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("optbench: create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return bench.WriteCSV(out, recs)
}

// buildAlgorithms wires every engine to the shared instance. The swarm engine
// is continuous, so it races on a 20-dimensional sphere instead of the tour.
func buildAlgorithms(inst *bench.EuclidTSP, cfg config) []bench.Algorithm {
	var iters = cfg.Iterations
	// Budget divisions below must never reach zero on tiny configs.
	var div = func(d int) int {
		if iters/d < 1 {
			return 1
		}

		return iters / d
	}

	return []bench.Algorithm{
		{Name: "tabu", Run: func(_ context.Context, seed int64) (core.Result, error) {
			var o = tabu.DefaultOptions()
			o.Iterations = iters
			o.Hash = inst.TourHash
			o.Seed = seed

			return tabu.Solve(inst, o)
		}},
		{Name: "alns", Run: func(_ context.Context, seed int64) (core.Result, error) {
			var o = alns.DefaultOptions()
			o.Iterations = iters
			o.Seed = seed
			res, err := alns.Solve(inst, inst.DestroyOps(), inst.RepairOps(), o)

			return res.Result, err
		}},
		{Name: "ils", Run: func(_ context.Context, seed int64) (core.Result, error) {
			var o = ils.DefaultOptions()
			o.Iterations = div(10)
			o.Seed = seed

			return ils.Solve(inst, o)
		}},
		{Name: "vns", Run: func(_ context.Context, seed int64) (core.Result, error) {
			var o = vns.DefaultOptions()
			o.Iterations = div(10)
			o.UseVND = true
			o.Seed = seed

			return vns.Solve(inst, o)
		}},
		{Name: "grasp", Run: func(_ context.Context, seed int64) (core.Result, error) {
			var o = grasp.DefaultOptions()
			o.Restarts = div(20)
			o.Seed = seed

			return grasp.Solve(inst, o)
		}},
		{Name: "memetic", Run: func(_ context.Context, seed int64) (core.Result, error) {
			var o = memetic.DefaultOptions()
			o.Generations = div(20)
			o.Seed = seed

			return memetic.Solve(inst, o)
		}},
		{Name: "aco", Run: func(_ context.Context, seed int64) (core.Result, error) {
			var o = aco.DefaultOptions()
			o.Iterations = div(10)
			o.Seed = seed
			res, err := aco.Solve(bench.NewAntTSP(inst), o)
			if err != nil {
				return core.Result{}, err
			}

			return core.Result{
				Cost:        res.Cost,
				Iterations:  res.Iterations,
				Evaluations: res.Evaluations,
				Convergence: res.Convergence,
			}, nil
		}},
		{Name: "pso", Run: func(_ context.Context, seed int64) (core.Result, error) {
			var o = pso.DefaultOptions()
			o.Iterations = div(4)
			o.Lo, o.Hi = -5.12, 5.12
			o.Seed = seed
			res, err := pso.Solve(sphere, 20, o)
			if err != nil {
				return core.Result{}, err
			}

			return core.Result{
				Cost:        res.Cost,
				Iterations:  res.Iterations,
				Evaluations: res.Evaluations,
				Convergence: res.Convergence,
			}, nil
		}},
	}
}

// sphere is the classic continuous baseline: Σ xᵢ², optimum 0 at the origin.
func sphere(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}

	return s
}
