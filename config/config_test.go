package config

import (
	"testing"
	"time"

	"draughts/meta"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := Load()
		require.NoError(t, err)

		require.Equal(t, "comparison", config.Experiment)
		require.Equal(t, "english", config.Variant)
		require.Equal(t, 100, config.Games)
		require.Equal(t, meta.MAX_TURNS, config.MaxTurns)
		require.Equal(t, "depth", config.First.Kind)
		require.Equal(t, meta.DEFAULT_DEPTH, config.First.Depth)
		require.Equal(t, meta.DEFAULT_DEPTH, config.Second.Depth)
		require.Equal(t, meta.DEFAULT_CHECK_INTERVAL, config.First.CheckInterval)
		require.Equal(t, "time", config.Second.Kind)
		require.Equal(t, 25*time.Millisecond, config.Second.Duration)
		require.Equal(t, 1024, config.Second.CheckInterval)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DRAUGHTS_VARIANT", "international")
		t.Setenv("DRAUGHTS_GAMES", "10")
		t.Setenv("DRAUGHTS_FIRST_KIND", "random")
		t.Setenv("DRAUGHTS_SECOND_DURATION", "2s")
		t.Setenv("DRAUGHTS_SECOND_EVALUATOR", "weighted")

		config, err := Load()
		require.NoError(t, err)

		require.Equal(t, "international", config.Variant)
		require.Equal(t, 10, config.Games)
		require.Equal(t, "random", config.First.Kind)
		require.Equal(t, 2*time.Second, config.Second.Duration)
		require.Equal(t, "weighted", config.Second.Evaluator)
		require.Equal(t, "material", config.First.Evaluator)
	})

	t.Run("non-positive limits fall back", func(t *testing.T) {
		t.Setenv("DRAUGHTS_MAX_TURNS", "0")
		t.Setenv("DRAUGHTS_FIRST_DEPTH", "-1")
		t.Setenv("DRAUGHTS_SECOND_DURATION", "0s")

		config, err := Load()
		require.NoError(t, err)

		require.Equal(t, 300, config.MaxTurns)
		require.Equal(t, 4, config.First.Depth)
		require.Equal(t, meta.DEFAULT_DURATION*time.Millisecond, config.Second.Duration)
	})

	t.Run("malformed values", func(t *testing.T) {
		t.Setenv("DRAUGHTS_FIRST_DEPTH", "deep")

		_, err := Load()
		require.Error(t, err)
	})
}
