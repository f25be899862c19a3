package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/core"
)

func newAcceptor(t *testing.T, d core.Direction, o core.AcceptanceOptions) *core.Acceptor {
	t.Helper()
	acc, err := core.NewAcceptor(d, o)
	require.NoError(t, err)

	return acc
}

func TestAcceptor_BetterIsStrict(t *testing.T) {
	var (
		o   = core.DefaultAcceptanceOptions()
		acc = newAcceptor(t, core.Minimize, o)
		rng = core.NewRNG(1)
	)
	require.True(t, acc.Accept(5, 10, rng))
	require.False(t, acc.Accept(10, 10, rng)) // equal is not better
	require.False(t, acc.Accept(11, 10, rng))
}

func TestAcceptor_BetterRespectsMaximize(t *testing.T) {
	var (
		o   = core.DefaultAcceptanceOptions()
		acc = newAcceptor(t, core.Maximize, o)
		rng = core.NewRNG(1)
	)
	require.True(t, acc.Accept(10, 5, rng))
	require.False(t, acc.Accept(5, 10, rng))
}

func TestAcceptor_AlwaysAcceptsWorse(t *testing.T) {
	var o = core.DefaultAcceptanceOptions()
	o.Kind = core.AcceptAlways
	var (
		acc = newAcceptor(t, core.Minimize, o)
		rng = core.NewRNG(1)
	)
	require.True(t, acc.Accept(100, 1, rng))
}

func TestAcceptor_SALikeCoolsEveryCall(t *testing.T) {
	var o = core.DefaultAcceptanceOptions()
	o.Kind = core.AcceptSALike
	o.InitialTemp = 1000
	o.Cooling = 0.5
	var (
		acc = newAcceptor(t, core.Minimize, o)
		rng = core.NewRNG(1)
	)

	// Cooling applies whether the call accepted or rejected.
	acc.Accept(1, 10, rng)
	require.InDelta(t, 500.0, acc.Temperature(), 1e-12)
	acc.Accept(100, 1, rng)
	require.InDelta(t, 250.0, acc.Temperature(), 1e-12)
}

func TestAcceptor_SALikeAlwaysTakesImprovement(t *testing.T) {
	var o = core.DefaultAcceptanceOptions()
	o.Kind = core.AcceptSALike
	var (
		acc = newAcceptor(t, core.Minimize, o)
		rng = core.NewRNG(1)
		i   int
	)
	for i = 0; i < 100; i++ {
		require.True(t, acc.Accept(1, 2, rng))
	}
}

func TestAcceptor_SALikeZeroTempDegeneratesToBetter(t *testing.T) {
	var o = core.DefaultAcceptanceOptions()
	o.Kind = core.AcceptSALike
	o.InitialTemp = 0
	var (
		acc = newAcceptor(t, core.Minimize, o)
		rng = core.NewRNG(1)
		i   int
	)
	for i = 0; i < 100; i++ {
		require.False(t, acc.Accept(2, 1, rng))
	}
}

func TestAcceptor_SALikeHotTempAcceptsSomeWorsenings(t *testing.T) {
	var o = core.DefaultAcceptanceOptions()
	o.Kind = core.AcceptSALike
	o.InitialTemp = 1e9
	o.Cooling = 1.0 // hold the temperature
	var (
		acc  = newAcceptor(t, core.Minimize, o)
		rng  = core.NewRNG(42)
		hits int
		i    int
	)
	for i = 0; i < 200; i++ {
		if acc.Accept(2, 1, rng) {
			hits++
		}
	}
	// exp(-1/1e9) ≈ 1: essentially every worsening should pass.
	require.Greater(t, hits, 190)
}

func TestAcceptor_RestartFiresAtThresholdAndClears(t *testing.T) {
	var o = core.DefaultAcceptanceOptions()
	o.Kind = core.AcceptRestart
	o.RestartThreshold = 3
	var (
		acc = newAcceptor(t, core.Minimize, o)
		rng = core.NewRNG(1)
		i   int
	)

	for i = 0; i < 2; i++ {
		acc.Accept(2, 1, rng) // non-improving
		require.False(t, acc.ShouldRestart())
	}
	acc.Accept(2, 1, rng)
	require.True(t, acc.ShouldRestart())
	// The streak cleared when the restart fired.
	require.False(t, acc.ShouldRestart())
}

func TestAcceptor_RestartStreakResetsOnImprovement(t *testing.T) {
	var o = core.DefaultAcceptanceOptions()
	o.Kind = core.AcceptRestart
	o.RestartThreshold = 3
	var (
		acc = newAcceptor(t, core.Minimize, o)
		rng = core.NewRNG(1)
	)

	acc.Accept(2, 1, rng)
	acc.Accept(2, 1, rng)
	acc.Accept(0, 1, rng) // improvement clears the streak
	acc.Accept(2, 1, rng)
	require.False(t, acc.ShouldRestart())
}

func TestNewAcceptor_RejectsBadOptions(t *testing.T) {
	var bad = core.DefaultAcceptanceOptions()
	bad.Kind = core.AcceptSALike
	bad.Cooling = 0

	_, err := core.NewAcceptor(core.Minimize, bad)
	require.ErrorIs(t, err, core.ErrBadOptions)

	bad = core.DefaultAcceptanceOptions()
	bad.Kind = core.AcceptRestart
	bad.RestartThreshold = 0
	_, err = core.NewAcceptor(core.Minimize, bad)
	require.ErrorIs(t, err, core.ErrBadOptions)

	_, err = core.NewAcceptor(core.Direction(99), core.DefaultAcceptanceOptions())
	require.ErrorIs(t, err, core.ErrBadOptions)
}
