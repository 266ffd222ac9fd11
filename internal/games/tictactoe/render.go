package tictactoe

import (
	"unicode/utf8"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/geometry"
)

// Mark colours.
const (
	BotColor   = core.ColorCyan
	HumanColor = core.ColorYellow
	gridColor  = core.ColorWhite
)

// Draw paints the grid, the marks and, once decided, the result above the
// board, then publishes the frame.
func Draw(p core.Painter, snap Snapshot, layout geometry.BoardLayout, marks config.TicTacToeMarks, scale int) {
	p.Clear(core.ColorBlack)
	w, h := p.Size()
	top := layout.Top()
	ext := layout.Extent()

	for i := 0; i < layout.Size; i++ {
		y := top + i*layout.CellSize
		p.DrawLine(0, y, ext-1, y, gridColor)
	}
	for i := 1; i < layout.Size; i++ {
		x := i * layout.CellSize
		p.DrawLine(x, top, x, h-1, gridColor)
	}

	for i, m := range snap.Cells {
		c := layout.CellAnchor(i)
		switch m {
		case Bot:
			p.DrawCircle(c.X, c.Y, marks.CircleRadius, BotColor)
		case Human:
			s := marks.CrossSize
			p.DrawLine(c.X-s, c.Y-s, c.X+s, c.Y+s, HumanColor)
			p.DrawLine(c.X-s, c.Y+s, c.X+s, c.Y-s, HumanColor)
		}
	}

	if snap.Verdict.Terminal() {
		msg := snap.Verdict.Message
		x := w/2 - utf8.RuneCountInString(msg)*scale/2
		p.DrawText(x, top/2, msg, resultColor(snap.Verdict))
	}
	p.Flush()
}

func resultColor(v core.Verdict) core.Color {
	switch v.Outcome {
	case core.OutcomeWon:
		return core.ColorGreen
	case core.OutcomeDraw:
		return core.ColorYellow
	}
	return core.ColorRed
}
