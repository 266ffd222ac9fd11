package snake

import (
	"time"

	"github.com/vovakirdan/touch-arcade/internal/core"
)

// Snapshot captures the state of a run for rendering and determinism tests.
type Snapshot struct {
	Tick     uint64
	Length   int
	Head     core.Point
	Dir      Direction
	Speed    time.Duration
	Segments []Segment // head first
	Apple    Apple
	Verdict  core.Verdict
}

// Snapshot copies the state under both locks, so it is never a partial tick.
func (w *World) Snapshot() Snapshot {
	sl := w.LockSnake()
	defer sl.Unlock()
	al := sl.LockApple()
	defer al.Unlock()

	s := sl.Snake()
	snap := Snapshot{
		Tick:     w.ticks,
		Length:   s.Len(),
		Dir:      s.Direction(),
		Speed:    s.Speed(),
		Segments: s.Segments(),
		Apple:    al.Apple(),
		Verdict:  sl.Verdict(),
	}
	if s.Len() > 0 {
		snap.Head = s.Head().Pos
	}
	return snap
}
