package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-term/config"
	"snake-term/terminal"
)

func TestLoadConfigDefaults(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadConfig(cmd, "")

	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadConfigFlagsOverrideFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_size: 20\ntick_rate: 8\nlayout: wasd\n"), 0644))
	t.Setenv("SNAKE_TICK_RATE", "9")
	t.Setenv("SNAKE_SEED", "11")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--tick-rate", "10", "--color=false"}))

	cfg, err := loadConfig(cmd, path)

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.GridSize)
	assert.Equal(t, 10, cfg.TickRate)
	assert.Equal(t, uint64(11), cfg.Seed)
	assert.Equal(t, config.LayoutWASD, cfg.Layout)
	assert.False(t, cfg.Color)
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--grid-size", "2"}))

	_, err := loadConfig(cmd, "")

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewLoggerWritesToFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "snake.log")
	cfg.LogLevel = "debug"

	logger, closeLog, err := newLogger(cfg)
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestRunRefusesNonTerminal(t *testing.T) {
	if terminal.IsTerminal(os.Stdin) && terminal.IsTerminal(os.Stdout) {
		t.Skip("running attached to a terminal")
	}
	assert.ErrorIs(t, run(context.Background(), config.DefaultConfig()), terminal.ErrNotTerminal)
}
