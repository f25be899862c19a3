// Package bench provides the benchmark harness and a self-contained Euclidean
// TSP fixture used by the CLI and the scenario tests.
//
// EuclidTSP implements every optional capability the engines consume
// (core.Problem, Perturber, Constructor, Breeder) over a one-byte-per-city
// permutation encoding, plus destroy/repair operator pools for the ALNS engine
// and a rotation-normalizing tour hash for tabu memories. The engines
// themselves stay problem-agnostic; everything TSP-specific lives here.
//
// Runner executes repeated seeded runs of each contending Algorithm under an
// optional per-run deadline, aggregates best/mean/std statistics for cost and
// wall time, tags each record with a UUID, and exports CSV.
package bench
