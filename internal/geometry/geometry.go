// Package geometry maps between the touch panel, the display and the game
// grids. The touch panel reports positions in the device frame (origin at
// the bottom-left corner); the display draws in the display frame (origin at
// the top-left corner).
package geometry

import (
	"fmt"

	"github.com/vovakirdan/touch-arcade/internal/core"
)

// Mapper converts points between the device and display frames of a panel.
type Mapper struct {
	Width  int
	Height int
}

// ToDisplay converts a device-frame point to the display frame.
func (m Mapper) ToDisplay(p core.Point) core.Point {
	return core.Pt(p.X, m.Height-p.Y)
}

// ToDevice converts a display-frame point to the device frame.
func (m Mapper) ToDevice(p core.Point) core.Point {
	return core.Pt(p.X, m.Height-p.Y)
}

// Grid is a wrapping grid of Scale x Scale pixel cells. Positions on the grid
// are cell centers in the display frame.
type Grid struct {
	Width  int
	Height int
	Scale  int
}

// Cols returns the number of cells across.
func (g Grid) Cols() int { return g.Width / g.Scale }

// Rows returns the number of cells down.
func (g Grid) Rows() int { return g.Height / g.Scale }

// Capacity returns the number of cells on the grid.
func (g Grid) Capacity() int { return g.Cols() * g.Rows() }

// Bounds returns the pixel area covered by whole cells. Pixels past the last
// full column or row belong to no cell.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Cols()*g.Scale, g.Rows()*g.Scale)
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p core.Point) bool {
	return g.Bounds().Contains(p.X, p.Y)
}

// Wrap moves a position that left the grid to the opposite edge.
func (g Grid) Wrap(p core.Point) core.Point {
	b := g.Bounds()
	half := g.Scale / 2
	switch {
	case p.X >= b.Right():
		p.X = half
	case p.X < 0:
		p.X = b.Right() - half
	}
	switch {
	case p.Y >= b.Bottom():
		p.Y = half
	case p.Y < 0:
		p.Y = b.Bottom() - half
	}
	return p
}

// Offset returns the shortest displacement from b to a on the wrapping grid.
func (g Grid) Offset(a, b core.Point) core.Point {
	r := g.Bounds()
	return core.Pt(shortest(a.X-b.X, r.W), shortest(a.Y-b.Y, r.H))
}

func shortest(d, span int) int {
	if span <= 0 {
		return d
	}
	d %= span
	switch {
	case d > span/2:
		d -= span
	case d < -span/2:
		d += span
	}
	return d
}

// Index returns the cell index of p. It panics if p is off the grid.
func (g Grid) Index(p core.Point) int {
	if !g.Contains(p) {
		panic(fmt.Sprintf("geometry: point %v outside %dx%d grid", p, g.Cols(), g.Rows()))
	}
	return p.Y/g.Scale*g.Cols() + p.X/g.Scale
}

// CellCenter returns the pixel center of cell i. It panics if i is out of range.
func (g Grid) CellCenter(i int) core.Point {
	if i < 0 || i >= g.Capacity() {
		panic(fmt.Sprintf("geometry: cell %d out of range [0, %d)", i, g.Capacity()))
	}
	half := g.Scale / 2
	return core.Pt(i%g.Cols()*g.Scale+half, i/g.Cols()*g.Scale+half)
}

// BoardLayout places a Size x Size board of square cells in the bottom-left
// corner of the panel. Row 0 is the bottom row.
type BoardLayout struct {
	Mapper   Mapper
	Size     int // cells per side
	CellSize int // pixels per cell side
}

// NewBoardLayout returns the 3x3 layout of 80 px cells for a width x height panel.
func NewBoardLayout(width, height int) BoardLayout {
	return BoardLayout{
		Mapper:   Mapper{Width: width, Height: height},
		Size:     3,
		CellSize: 80,
	}
}

// Cells returns the number of cells on the board.
func (b BoardLayout) Cells() int { return b.Size * b.Size }

// Extent returns the board side in pixels.
func (b BoardLayout) Extent() int { return b.Size * b.CellSize }

// CellAt maps a touch sample to a cell index, or -1 when nothing is touched
// or the touch falls outside every cell.
func (b BoardLayout) CellAt(t core.TouchState) int {
	if !t.Touched {
		return -1
	}
	ext := b.Extent()
	if !core.NewRect(0, 0, ext, ext).Contains(t.X, t.Y) {
		return -1
	}
	return t.Y/b.CellSize*b.Size + t.X/b.CellSize
}

// CellTouch returns the device-frame center of cell i.
func (b BoardLayout) CellTouch(i int) core.Point {
	b.check(i)
	cell := core.NewRect(i%b.Size*b.CellSize, i/b.Size*b.CellSize, b.CellSize, b.CellSize)
	return core.Pt(cell.Center())
}

// CellAnchor returns the display-frame center of cell i.
func (b BoardLayout) CellAnchor(i int) core.Point {
	return b.Mapper.ToDisplay(b.CellTouch(i))
}

// Top returns the display-frame Y of the board's upper edge.
func (b BoardLayout) Top() int {
	return b.Mapper.Height - b.Extent()
}

func (b BoardLayout) check(i int) {
	if i < 0 || i >= b.Cells() {
		panic(fmt.Sprintf("geometry: board cell %d out of range [0, %d)", i, b.Cells()))
	}
}

// Zone is a touch region that steers the snake.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneLeft
	ZoneUp
	ZoneDown
	ZoneRight
)

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneUp:
		return "up"
	case ZoneDown:
		return "down"
	case ZoneRight:
		return "right"
	default:
		return "none"
	}
}

// Zones splits the panel into steering bands along the device Y axis:
// below Low is left, at or above High is right, and the middle band is split
// at X == Split into up and down.
type Zones struct {
	Width  int
	Height int
	Low    int
	High   int
	Split  int
}

// DefaultZones returns the steering bands of the 240x320 panel.
func DefaultZones() Zones {
	return Zones{Width: 240, Height: 320, Low: 75, High: 225, Split: 120}
}

// At maps a touch sample to a zone.
func (z Zones) At(t core.TouchState) Zone {
	switch {
	case !t.Touched:
		return ZoneNone
	case t.Y < z.Low:
		return ZoneLeft
	case t.Y < z.High && t.X < z.Split:
		return ZoneUp
	case t.Y < z.High:
		return ZoneDown
	default:
		return ZoneRight
	}
}

// Anchor returns a device-frame point inside the zone.
func (z Zones) Anchor(zone Zone) (core.Point, bool) {
	mid := (z.Low + z.High) / 2
	switch zone {
	case ZoneLeft:
		return core.Pt(z.Width/2, z.Low/2), true
	case ZoneUp:
		return core.Pt(z.Split/2, mid), true
	case ZoneDown:
		return core.Pt(z.Split+(z.Width-z.Split)/2, mid), true
	case ZoneRight:
		return core.Pt(z.Width/2, z.High+(z.Height-z.High)/2), true
	default:
		return core.Point{}, false
	}
}
