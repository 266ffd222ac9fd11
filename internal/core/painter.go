package core

import "sync"

// Painter is the output boundary. Coordinates are pixels in the display frame
// (origin top-left). Implementations must be safe for concurrent use.
type Painter interface {
	Size() (w, h int)
	Clear(c Color)
	FillRect(x, y, w, h int, c Color)
	DrawRect(x, y, w, h int, c Color)
	FillCircle(cx, cy, r int, c Color)
	DrawCircle(cx, cy, r int, c Color)
	DrawLine(x0, y0, x1, y1 int, c Color)
	DrawText(x, y int, text string, c Color)
	// Flush publishes everything drawn since the previous Flush.
	Flush()
}

// FrameBuffer is a double-buffered Painter that rasterises pixel primitives
// onto Screen cells of scale x scale pixels. Drawing goes to the back buffer;
// Flush copies it to the front buffer that readers observe.
type FrameBuffer struct {
	mu     sync.Mutex
	width  int
	height int
	scale  int
	back   *Screen
	front  *Screen
}

// NewFrameBuffer creates a frame buffer for a width x height pixel display.
func NewFrameBuffer(width, height, scale int) *FrameBuffer {
	if scale < 1 {
		scale = 1
	}
	cols, rows := width/scale, height/scale
	return &FrameBuffer{
		width:  width,
		height: height,
		scale:  scale,
		back:   NewScreen(cols, rows),
		front:  NewScreen(cols, rows),
	}
}

// Scale returns the number of pixels per cell side.
func (f *FrameBuffer) Scale() int {
	return f.scale
}

// Size implements Painter.
func (f *FrameBuffer) Size() (int, int) {
	return f.width, f.height
}

// cell maps a pixel to the cell containing it.
func (f *FrameBuffer) cell(x, y int) (int, int) {
	return floorDiv(x, f.scale), floorDiv(y, f.scale)
}

// Clear implements Painter.
func (f *FrameBuffer) Clear(c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.back.Fill(Cell{Rune: ' ', Color: c})
}

// FillRect implements Painter.
func (f *FrameBuffer) FillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	x0, y0 := f.cell(x, y)
	x1, y1 := f.cell(x+w-1, y+h-1)
	f.back.DrawRect(NewRect(x0, y0, x1-x0+1, y1-y0+1), '█', c)
}

// DrawRect implements Painter. A rectangle that fits in one cell is drawn as
// a hollow square glyph.
func (f *FrameBuffer) DrawRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	x0, y0 := f.cell(x, y)
	x1, y1 := f.cell(x+w-1, y+h-1)
	if x0 == x1 && y0 == y1 {
		f.back.Set(x0, y0, '□', c)
		return
	}
	f.back.DrawBox(NewRect(x0, y0, x1-x0+1, y1-y0+1), c)
}

// FillCircle implements Painter.
func (f *FrameBuffer) FillCircle(cx, cy, r int, c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r < f.scale {
		x, y := f.cell(cx, cy)
		f.back.Set(x, y, '●', c)
		return
	}
	f.eachCellIn(cx-r, cy-r, cx+r, cy+r, func(col, row, dx, dy int) {
		if dx*dx+dy*dy <= r*r {
			f.back.Set(col, row, '█', c)
		}
	})
}

// DrawCircle implements Painter.
func (f *FrameBuffer) DrawCircle(cx, cy, r int, c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r < f.scale {
		x, y := f.cell(cx, cy)
		f.back.Set(x, y, 'o', c)
		return
	}
	half := f.scale / 2
	inner, outer := (r-half)*(r-half), (r+half)*(r+half)
	f.eachCellIn(cx-r-half, cy-r-half, cx+r+half, cy+r+half, func(col, row, dx, dy int) {
		d := dx*dx + dy*dy
		if d >= inner && d <= outer {
			f.back.Set(col, row, 'o', c)
		}
	})
}

// eachCellIn calls fn for every cell overlapping the pixel box, passing the
// offset of the cell center from the box center.
func (f *FrameBuffer) eachCellIn(px0, py0, px1, py1 int, fn func(col, row, dx, dy int)) {
	mx, my := (px0+px1)/2, (py0+py1)/2
	c0, r0 := f.cell(px0, py0)
	c1, r1 := f.cell(px1, py1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			ccx := col*f.scale + f.scale/2
			ccy := row*f.scale + f.scale/2
			fn(col, row, ccx-mx, ccy-my)
		}
	}
}

// DrawLine implements Painter using Bresenham's algorithm in cell space.
func (f *FrameBuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()

	glyph := lineGlyph(x1-x0, y1-y0)
	cx0, cy0 := f.cell(x0, y0)
	cx1, cy1 := f.cell(x1, y1)

	dx := Abs(cx1 - cx0)
	dy := -Abs(cy1 - cy0)
	sx, sy := Sign(cx1-cx0), Sign(cy1-cy0)
	e := dx + dy
	for {
		f.back.Set(cx0, cy0, glyph, c)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx0 += sx
		}
		if e2 <= dx {
			e += dx
			cy0 += sy
		}
	}
}

func lineGlyph(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// DrawText implements Painter. (x, y) is the pixel of the first character.
func (f *FrameBuffer) DrawText(x, y int, text string, c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	col, row := f.cell(x, y)
	f.back.DrawText(col, row, text, c)
}

// Flush implements Painter.
func (f *FrameBuffer) Flush() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.front.CopyFrom(f.back)
}

// Snapshot returns a copy of the front buffer.
func (f *FrameBuffer) Snapshot() *Screen {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := NewScreen(f.front.Width(), f.front.Height())
	s.CopyFrom(f.front)
	return s
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
