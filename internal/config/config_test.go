package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var snake SnakeConfig
	require.NoError(t, yaml.Unmarshal(defaultSnakeYAML, &snake))
	assert.Equal(t, DefaultSnakeConfig(), snake)

	var ttt TicTacToeConfig
	require.NoError(t, yaml.Unmarshal(defaultTicTacToeYAML, &ttt))
	assert.Equal(t, DefaultTicTacToeConfig(), ttt)
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed:\n  min: 80ms\nstart:\n  direction: up\n"), 0o644))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)

	assert.Equal(t, 80*time.Millisecond, cfg.Speed.Min)
	assert.Equal(t, 250*time.Millisecond, cfg.Speed.Start, "unset keys keep their defaults")
	assert.Equal(t, "up", cfg.Start.Direction)
	assert.Equal(t, 115, cfg.Start.X)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadTicTacToe(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("first_player: [oops"), 0o644))
	_, err = LoadTicTacToe(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("first_player: nobody\n"), 0o644))
	_, err = LoadTicTacToe(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSpeedCurve(t *testing.T) {
	s := DefaultSnakeConfig().Speed

	tests := []struct {
		length   int
		expected time.Duration
	}{
		{1, 250 * time.Millisecond},
		{2, 240 * time.Millisecond},
		{10, 160 * time.Millisecond},
		{20, 60 * time.Millisecond},
		{500, 60 * time.Millisecond},
		{0, 250 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := s.For(tc.length); got != tc.expected {
			t.Errorf("For(%d) = %v, expected %v", tc.length, got, tc.expected)
		}
	}

	prev := s.For(1)
	for l := 2; l < 100; l++ {
		d := s.For(l)
		assert.LessOrEqual(t, d, prev, "longer snakes never get slower")
		prev = d
	}

	assert.ErrorIs(t, SpeedCurve{Start: time.Millisecond, Min: time.Second}.Validate(), ErrInvalidConfig)
}

func TestLoadAppFromEnv(t *testing.T) {
	t.Setenv("ARCADE_LOG_LEVEL", "debug")
	t.Setenv("ARCADE_SEED", "42")

	cfg, err := LoadApp("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.FPS)

	rt := cfg.Runtime()
	assert.Equal(t, 24, rt.Cols())
	assert.Equal(t, 32, rt.Rows())
}

func TestLoadAppFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: 60\ndisplay:\n  scale: 20\n"), 0o644))

	cfg, err := LoadApp(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 20, cfg.Display.Scale)
	assert.Equal(t, 240, cfg.Display.Width)

	require.NoError(t, os.WriteFile(path, []byte("fps: -5\n"), 0o644))
	_, err = LoadApp(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadAppRejectsPartialCells(t *testing.T) {
	t.Setenv("ARCADE_DISPLAY_WIDTH", "249")

	_, err := LoadApp("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
