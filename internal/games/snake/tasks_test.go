package snake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/engine"
)

func fastConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Speed = config.SpeedCurve{Start: 5 * time.Millisecond, Min: time.Millisecond, Step: time.Millisecond}
	cfg.Periods = config.SnakePeriods{
		Input:    time.Millisecond,
		Render:   2 * time.Millisecond,
		Analysis: 2 * time.Millisecond,
	}
	return cfg
}

func testEnv(rc core.RuntimeConfig, touch core.TouchPanel) engine.Env {
	return engine.Env{
		Config:  rc,
		Painter: core.NewFrameBuffer(rc.DisplayW, rc.DisplayH, rc.Scale),
		Touch:   touch,
		Clock:   engine.NewSystemClock(),
	}
}

func waitRun(t *testing.T, run *engine.Run) core.Verdict {
	t.Helper()
	select {
	case <-run.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("run did not finish")
	}
	return run.Verdict()
}

func TestProgramWinsAndReleasesOnce(t *testing.T) {
	cfg := fastConfig()
	cfg.Start.Position = config.Position{X: 5, Y: 5}
	cfg.Apple = config.Position{X: 15, Y: 5}
	rc := core.RuntimeConfig{DisplayW: 20, DisplayH: 10, Scale: 10, Seed: 1}
	env := testEnv(rc, &engine.ScriptedTouch{})

	w, prog, err := NewProgram(env, cfg)
	require.NoError(t, err)

	run := engine.NewScheduler(env.Clock, nil).Start(context.Background(), prog)
	v := waitRun(t, run)

	assert.Equal(t, core.OutcomeWon, v.Outcome)
	assert.Equal(t, MsgWon, v.Message)
	assert.False(t, w.Teardown(), "the program teardown already released the body")
}

func TestProgramSteersFromTouch(t *testing.T) {
	cfg := fastConfig()
	cfg.Speed = config.SpeedCurve{Start: 20 * time.Millisecond, Min: 20 * time.Millisecond}
	touch := &engine.ScriptedTouch{}
	env := testEnv(core.RuntimeConfig{DisplayW: 240, DisplayH: 320, Scale: 10, Seed: 3}, touch)

	w, prog, err := NewProgram(env, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	run := engine.NewScheduler(env.Clock, nil).Start(ctx, prog)

	touch.Tap(60, 150)
	require.Eventually(t, func() bool {
		return w.Snapshot().Dir == Up
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	v := waitRun(t, run)
	assert.Equal(t, core.OutcomeAborted, v.Outcome)
	assert.Equal(t, engine.MsgInterrupted, v.Message)
	assert.False(t, w.Teardown())
}

func TestProgramRendersFrames(t *testing.T) {
	cfg := fastConfig()
	cfg.Speed = config.SpeedCurve{Start: time.Hour, Min: time.Hour}
	rc := core.DefaultConfig()
	fb := core.NewFrameBuffer(rc.DisplayW, rc.DisplayH, rc.Scale)
	env := engine.Env{Config: rc, Painter: fb, Touch: &engine.ScriptedTouch{}, Clock: engine.NewSystemClock()}

	_, prog, err := NewProgram(env, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	run := engine.NewScheduler(env.Clock, nil).Start(ctx, prog)
	defer func() {
		cancel()
		waitRun(t, run)
	}()

	// The first tick runs at start-up, so the head is one step from the start.
	require.Eventually(t, func() bool {
		return fb.Snapshot().Get(12, 11) == '█'
	}, 2*time.Second, 5*time.Millisecond)
}

func TestGameTouchForKey(t *testing.T) {
	g := New()

	for key, zone := range map[string]Direction{"left": Right, "d": Left, "w": Up, "down": Down} {
		p, ok := g.TouchForKey(key)
		require.True(t, ok, key)
		dir, _ := zoneDirection(g.zones.At(core.TouchState{Touched: true, X: p.X, Y: p.Y}))
		assert.Equal(t, zone, dir, key)
	}
	_, ok := g.TouchForKey("x")
	assert.False(t, ok)
}
