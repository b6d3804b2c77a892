package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, "warn", cfg.Log.Level)
		require.Equal(t, "console", cfg.Log.Format)
		require.Equal(t, "auto", cfg.Color)
		require.Zero(t, cfg.Seed)
		require.Equal(t, "all", cfg.Simulation.Kind)
	})

	t.Run("reads a yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log:\n  level: debug\n  format: json\nseed: 42\nsimulation:\n  games: 10\n  quit-after: 3\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "json", cfg.Log.Format)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, 10, cfg.Simulation.Games)
		require.Equal(t, 3, cfg.Simulation.QuitAfter)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("seed: 1\n"), 0o600))
		t.Setenv("DICE_SEED", "7")
		t.Setenv("DICE_LOG_LEVEL", "info")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		require.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}

func TestZerologLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, Log{Level: "debug"}.ZerologLevel())
	require.Equal(t, zerolog.ErrorLevel, Log{Level: "ERROR"}.ZerologLevel())
	require.Equal(t, zerolog.WarnLevel, Log{Level: "loud"}.ZerologLevel())
	require.Equal(t, zerolog.WarnLevel, Log{}.ZerologLevel())
}

func TestUseColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	require.True(t, (&Config{Color: "auto"}).UseColor(true))
	require.False(t, (&Config{Color: "auto"}).UseColor(false))
	require.True(t, (&Config{Color: "always"}).UseColor(false))
	require.False(t, (&Config{Color: "never"}).UseColor(true))

	t.Setenv("NO_COLOR", "1")
	require.False(t, (&Config{Color: "always"}).UseColor(true))
}

func TestUsage(t *testing.T) {
	require.Contains(t, Usage(), "DICE_SEED")
}
