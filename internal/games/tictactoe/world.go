package tictactoe

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/geometry"
)

// Result messages shown on the display.
const (
	MsgBotWon   = "Bot Won!"
	MsgHumanWon = "Human Won!"
	MsgTie      = "Tie!"
	MsgCorrupt  = "Board corrupt"
)

// World is the state of one tic-tac-toe run. Every read and write of the
// board goes through the world lock, and a verdict is decided under the lock
// of the move that produced it.
type World struct {
	layout geometry.BoardLayout
	logger *log.Logger

	mu       sync.Mutex
	board    Board
	lastMove int
	verdict  core.Verdict
	rng      *rand.Rand
}

// NewWorld creates an empty board laid out on the display described by rc.
func NewWorld(rc core.RuntimeConfig, rng *rand.Rand, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		layout:   geometry.NewBoardLayout(rc.DisplayW, rc.DisplayH),
		logger:   logger,
		lastMove: -1,
		verdict:  core.Running,
		rng:      rng,
	}
}

// Layout returns the board placement on the display.
func (w *World) Layout() geometry.BoardLayout {
	return w.layout
}

// BotMove places the bot's mark on a uniformly random empty cell. Sampling
// happens under the lock against the live board, so no human move can slip
// in between the pick and the placement. It returns -1 when no move was made.
func (w *World) BotMove() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.verdict.Terminal() || w.board.Moves() >= Cells {
		return -1
	}
	cell := w.rng.Intn(Cells)
	for w.board.At(cell) != Empty {
		cell = w.rng.Intn(Cells)
	}
	w.board.Apply(cell, Bot)
	w.lastMove = cell
	w.decide()
	return cell
}

// HumanMove places the human's mark on the cell under the touch. It returns
// -1 when the touch is outside every cell or the cell is taken.
func (w *World) HumanMove(t core.TouchState) int {
	cell := w.layout.CellAt(t)
	if cell < 0 {
		return -1
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.verdict.Terminal() || !w.board.Apply(cell, Human) {
		return -1
	}
	w.lastMove = cell
	w.decide()
	return cell
}

// Analyze re-evaluates the board and returns the verdict.
func (w *World) Analyze() core.Verdict {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.decide()
	return w.verdict
}

// decide updates the verdict from the board. Callers hold the lock.
func (w *World) decide() {
	if w.verdict.Terminal() {
		return
	}
	status, err := Evaluate(&w.board)
	if err != nil {
		w.logger.Error("board check failed", "moves", w.board.Moves(), "err", err)
		w.verdict = core.Verdict{Outcome: core.OutcomeAborted, Message: MsgCorrupt}
		return
	}
	w.verdict = verdictFor(status)
	if w.verdict.Terminal() {
		w.logger.Info("tic-tac-toe over", "moves", w.board.Moves(), "result", status)
	}
}

// verdictFor maps a board status to a verdict from the human's side.
func verdictFor(s Status) core.Verdict {
	switch s {
	case BotWins:
		return core.Verdict{Outcome: core.OutcomeLost, Message: MsgBotWon}
	case HumanWins:
		return core.Verdict{Outcome: core.OutcomeWon, Message: MsgHumanWon}
	case Tie:
		return core.Verdict{Outcome: core.OutcomeDraw, Message: MsgTie}
	}
	return core.Running
}

// Verdict returns the run verdict.
func (w *World) Verdict() core.Verdict {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.verdict
}
