package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/geometry"
)

var (
	// ErrSegmentsExhausted is returned by Grow when the segment pool is full.
	ErrSegmentsExhausted = errors.New("snake: segment pool exhausted")
	// ErrReleased is returned by Grow after Teardown.
	ErrReleased = errors.New("snake: body released")
)

// Direction is a unit step in (row, col) grid order: Col advances X and Row
// advances Y. Names follow the panel's mounting, so Left moves toward +X.
type Direction struct {
	Row, Col int
}

var (
	Left  = Direction{Row: 0, Col: 1}
	Right = Direction{Row: 0, Col: -1}
	Down  = Direction{Row: 1, Col: 0}
	Up    = Direction{Row: -1, Col: 0}
)

// ParseDirection maps a config name to a direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Direction{}, fmt.Errorf("snake: unknown direction %q", name)
}

// Perpendicular reports whether d and o are at a right angle.
func (d Direction) Perpendicular(o Direction) bool {
	return d.Row*o.Row+d.Col*o.Col == 0
}

// Step returns the pixel displacement of one move on a grid of the given scale.
func (d Direction) Step(scale int) core.Point {
	return core.Pt(d.Col, d.Row).Mul(scale)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("(%d,%d)", d.Row, d.Col)
}

// Segment is one unit of the body.
type Segment struct {
	Pos core.Point
	Tag core.Color
}

// Collision is the result of CollisionCheck.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionHead
	CollisionBody
)

func (c Collision) String() string {
	switch c {
	case CollisionHead:
		return "head"
	case CollisionBody:
		return "body"
	default:
		return "none"
	}
}

// Snake is the body store: an ordered slice of segments with the head at
// index 0 and the tail last. It is not safe for concurrent use; World guards
// it with the snake lock.
type Snake struct {
	grid     geometry.Grid
	body     []Segment
	dir      Direction // applied on the last Advance
	next     Direction // requested for the next Advance
	speed    time.Duration
	limit    int
	released bool
}

// NewSnake creates a one-segment snake. limit caps the number of segments;
// values outside (0, capacity] mean the whole grid.
func NewSnake(grid geometry.Grid, head Segment, dir Direction, limit int) *Snake {
	if limit <= 0 || limit > grid.Capacity() {
		limit = grid.Capacity()
	}
	body := make([]Segment, 1, limit)
	body[0] = head
	return &Snake{
		grid:  grid,
		body:  body,
		dir:   dir,
		next:  dir,
		limit: limit,
	}
}

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.body) }

// Limit returns the segment pool size.
func (s *Snake) Limit() int { return s.limit }

// Head returns the first segment.
func (s *Snake) Head() Segment { return s.body[0] }

// Tail returns the last segment.
func (s *Snake) Tail() Segment { return s.body[len(s.body)-1] }

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction { return s.dir }

// Speed returns the current delay between ticks.
func (s *Snake) Speed() time.Duration { return s.speed }

// SetSpeed updates the delay between ticks.
func (s *Snake) SetSpeed(d time.Duration) { s.speed = d }

// Turn requests a new direction for the next move. Only turns perpendicular
// to the current direction are accepted, so the snake can never reverse into
// itself.
func (s *Snake) Turn(d Direction) bool {
	if d == (Direction{}) || !d.Perpendicular(s.dir) {
		return false
	}
	s.next = d
	return true
}

// Advance moves the snake one cell. Every segment takes its predecessor's
// position, tail first, then the head steps in the current direction and
// wraps at the grid edges.
func (s *Snake) Advance() {
	if len(s.body) == 0 {
		return
	}
	s.dir = s.next
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i].Pos = s.body[i-1].Pos
	}
	s.body[0].Pos = s.grid.Wrap(s.body[0].Pos.Add(s.dir.Step(s.grid.Scale)))
}

// Grow appends a tail segment carrying tag. A single-segment snake grows one
// cell behind the head; a longer one extends the line of its last two
// segments.
func (s *Snake) Grow(tag core.Color) error {
	if s.released {
		return ErrReleased
	}
	if len(s.body) >= s.limit {
		return fmt.Errorf("%w: length %d", ErrSegmentsExhausted, len(s.body))
	}

	var pos core.Point
	if len(s.body) == 1 {
		pos = s.body[0].Pos.Sub(s.dir.Step(s.grid.Scale))
	} else {
		tail, prev := s.body[len(s.body)-1].Pos, s.body[len(s.body)-2].Pos
		d := s.grid.Offset(tail, prev)
		step := s.grid.Scale
		pos = tail.Add(core.Pt(core.Clamp(d.X, -step, step), core.Clamp(d.Y, -step, step)))
	}

	s.body = append(s.body, Segment{Pos: s.grid.Wrap(pos), Tag: tag})
	return nil
}

// CollisionCheck compares p against the head, then against every other
// segment in order.
func (s *Snake) CollisionCheck(p core.Point) Collision {
	if len(s.body) == 0 {
		return CollisionNone
	}
	if s.body[0].Pos == p {
		return CollisionHead
	}
	if s.hitsBody(p) {
		return CollisionBody
	}
	return CollisionNone
}

// SelfCollision reports whether the head overlaps another segment.
func (s *Snake) SelfCollision() bool {
	return len(s.body) > 1 && s.hitsBody(s.body[0].Pos)
}

func (s *Snake) hitsBody(p core.Point) bool {
	for _, seg := range s.body[1:] {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

// Teardown releases every segment. It reports false when the body was
// already released.
func (s *Snake) Teardown() bool {
	if s.released {
		return false
	}
	s.body = nil
	s.released = true
	return true
}

// Released reports whether Teardown ran.
func (s *Snake) Released() bool { return s.released }
