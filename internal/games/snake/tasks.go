package snake

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/engine"
)

// Task priorities; lower starts first.
const (
	prioTouch    = 11
	prioAnalysis = 12
	prioGame     = 13
	prioRender   = 14
)

// NewProgram creates the world of a new run and the tasks that drive it:
//
//	touch    samples the panel and steers the snake
//	analysis watches for a terminal verdict, shows it and ends the run
//	game     ticks the world at the speed of the current length
//	render   paints a snapshot of the world
//
// The snake body is released by the program teardown.
func NewProgram(env engine.Env, cfg config.SnakeConfig) (*World, engine.Program, error) {
	logger := env.Log().With("game", "snake")
	w, err := NewWorld(cfg, env.Config, rand.New(rand.NewSource(env.Seed())), logger)
	if err != nil {
		return nil, engine.Program{}, err
	}
	scale := env.Config.Scale

	touch := engine.Task{
		Name:     "touch",
		Priority: prioTouch,
		Period:   engine.Every(cfg.Periods.Input),
		Body: func(ctx context.Context, run *engine.Run) error {
			t := env.Touch.Sample()
			if !t.Touched {
				return nil
			}
			logger.Debug("touch", "x", t.X, "y", t.Y)
			w.Steer(t)
			return nil
		},
	}

	analysis := engine.Task{
		Name:     "analysis",
		Priority: prioAnalysis,
		Period:   engine.Every(cfg.Periods.Analysis),
		Body: func(ctx context.Context, run *engine.Run) error {
			snap := w.Snapshot()
			if !snap.Verdict.Terminal() {
				return nil
			}
			Draw(env.Painter, snap, scale)
			run.Finish(snap.Verdict)
			return engine.ErrRetired
		},
	}

	game := engine.Task{
		Name:     "game",
		Priority: prioGame,
		Period:   w.Speed,
		Body: func(ctx context.Context, run *engine.Run) error {
			if w.Tick().Terminal() {
				return engine.ErrRetired
			}
			return nil
		},
	}

	render := engine.Task{
		Name:     "render",
		Priority: prioRender,
		Period:   engine.Every(cfg.Periods.Render),
		Body: func(ctx context.Context, run *engine.Run) error {
			Draw(env.Painter, w.Snapshot(), scale)
			return nil
		},
	}

	prog := engine.Program{
		Tasks: []engine.Task{touch, analysis, game, render},
		Teardown: func() {
			w.Teardown()
		},
	}
	return w, prog, nil
}
