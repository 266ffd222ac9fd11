package tictactoe

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/engine"
)

// Task priorities; lower starts first.
const (
	prioDispatch = 2
	prioPlayer   = 3
	prioAnalysis = 4
)

// referee is the turnstile participant of the dispatcher. Players use the
// value of their mark.
const referee = int(Empty)

// NewProgram creates the world of a new run and the tasks that drive it:
//
//	dispatch  draws the board and hands the turn to the players in order
//	bot       waits for its turn, thinks, and marks a random free cell
//	human     waits for its turn and polls the panel for a cell to mark
//	analysis  watches for a terminal verdict, shows it and ends the run
//
// Players hand the turn back to the dispatcher after every move.
func NewProgram(env engine.Env, cfg config.TicTacToeConfig) (*World, engine.Program, error) {
	if err := cfg.Validate(); err != nil {
		return nil, engine.Program{}, err
	}
	logger := env.Log().With("game", "tictactoe")
	w := NewWorld(env.Config, rand.New(rand.NewSource(env.Seed())), logger)
	turns := engine.NewTurnstile(referee)
	draw := func(snap Snapshot) {
		Draw(env.Painter, snap, w.Layout(), cfg.Marks, env.Config.Scale)
	}

	order := [2]int{int(Bot), int(Human)}
	if cfg.FirstPlayer == "human" {
		order = [2]int{int(Human), int(Bot)}
	}
	var turn int

	dispatch := engine.Task{
		Name:     "dispatch",
		Priority: prioDispatch,
		Body: func(ctx context.Context, run *engine.Run) error {
			if err := turns.Wait(ctx, referee); err != nil {
				return err
			}
			snap := w.Snapshot()
			draw(snap)
			if snap.Verdict.Terminal() {
				return engine.ErrRetired
			}
			next := order[turn%len(order)]
			turn++
			logger.Debug("turn", "player", Mark(next), "moves", snap.Moves)
			turns.Pass(next)
			return nil
		},
	}

	bot := engine.Task{
		Name:     "bot",
		Priority: prioPlayer,
		Body: func(ctx context.Context, run *engine.Run) error {
			if err := turns.Wait(ctx, int(Bot)); err != nil {
				return err
			}
			if !env.Clock.Sleep(ctx, cfg.BotThink) {
				return ctx.Err()
			}
			if cell := w.BotMove(); cell >= 0 {
				logger.Debug("bot move", "cell", cell)
			}
			turns.Pass(referee)
			return nil
		},
	}

	human := engine.Task{
		Name:     "human",
		Priority: prioPlayer,
		Period:   engine.Every(cfg.Periods.HumanPoll),
		Body: func(ctx context.Context, run *engine.Run) error {
			if err := turns.Wait(ctx, int(Human)); err != nil {
				return err
			}
			if w.Verdict().Terminal() {
				turns.Pass(referee)
				return nil
			}
			t := env.Touch.Sample()
			if !t.Touched {
				return nil
			}
			logger.Debug("touch", "x", t.X, "y", t.Y)
			if cell := w.HumanMove(t); cell >= 0 {
				logger.Debug("human move", "cell", cell)
				turns.Pass(referee)
			}
			return nil
		},
	}

	analysis := engine.Task{
		Name:     "analysis",
		Priority: prioAnalysis,
		Period:   engine.Every(cfg.Periods.Analysis),
		Body: func(ctx context.Context, run *engine.Run) error {
			if !w.Analyze().Terminal() {
				return nil
			}
			snap := w.Snapshot()
			draw(snap)
			run.Finish(snap.Verdict)
			return engine.ErrRetired
		},
	}

	return w, engine.Program{Tasks: []engine.Task{dispatch, bot, human, analysis}}, nil
}
