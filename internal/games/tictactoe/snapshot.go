package tictactoe

import "github.com/vovakirdan/touch-arcade/internal/core"

// Snapshot captures the state of a run for rendering and tests.
type Snapshot struct {
	Cells    [Cells]Mark
	Moves    int
	LastMove int // -1 before the first move
	Verdict  core.Verdict
}

// Snapshot copies the board under the lock.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Cells:    w.board.cells,
		Moves:    w.board.moves,
		LastMove: w.lastMove,
		Verdict:  w.verdict,
	}
}
