package snake

import (
	"unicode/utf8"

	"github.com/vovakirdan/touch-arcade/internal/core"
)

// Draw paints a frame of the run and publishes it. The head is a filled
// square, body segments are outlined in their tag and the apple is a dot.
// A terminal verdict is written over the middle of the display.
func Draw(p core.Painter, snap Snapshot, scale int) {
	half := scale / 2
	p.Clear(core.ColorBlack)

	a := snap.Apple
	p.FillCircle(a.Pos.X, a.Pos.Y, half, a.Tag)

	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		x, y := seg.Pos.X-half, seg.Pos.Y-half
		if i == 0 {
			p.FillRect(x, y, scale, scale, seg.Tag)
			continue
		}
		p.DrawRect(x, y, scale, scale, seg.Tag)
	}

	if snap.Verdict.Terminal() {
		drawResult(p, snap.Verdict, scale)
	}
	p.Flush()
}

func drawResult(p core.Painter, v core.Verdict, scale int) {
	c := core.ColorRed
	if v.Outcome == core.OutcomeWon {
		c = core.ColorGreen
	}
	w, h := p.Size()
	x := w/2 - utf8.RuneCountInString(v.Message)*scale/2
	p.DrawText(x, h/2, v.Message, c)
}
