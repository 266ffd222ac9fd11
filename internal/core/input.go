package core

import (
	"sync"
	"time"
)

// TouchState is one sample of the touch panel. Coordinates are in the device
// frame, whose origin is the bottom-left corner of the panel.
type TouchState struct {
	Touched bool
	X, Y    int
}

// Point returns the sampled position.
func (t TouchState) Point() Point {
	return Point{X: t.X, Y: t.Y}
}

// TouchPanel is the input boundary: a poll-style read of the current pointer.
type TouchPanel interface {
	Sample() TouchState
}

// TouchLatch is a TouchPanel fed by an event source (mouse, keyboard).
// A press is reported until it is released or its hold time expires.
// Safe for concurrent use.
type TouchLatch struct {
	mu    sync.Mutex
	state TouchState
	until time.Time
	now   func() time.Time
}

// NewTouchLatch creates an untouched latch.
func NewTouchLatch() *TouchLatch {
	return &TouchLatch{now: time.Now}
}

// Press records a touch at (x, y) in the device frame.
// hold == 0 keeps the touch until Release.
func (l *TouchLatch) Press(x, y int, hold time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = TouchState{Touched: true, X: x, Y: y}
	l.until = time.Time{}
	if hold > 0 {
		l.until = l.now().Add(hold)
	}
}

// Release clears the current touch.
func (l *TouchLatch) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = TouchState{}
	l.until = time.Time{}
}

// Sample implements TouchPanel.
func (l *TouchLatch) Sample() TouchState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.until.IsZero() && l.now().After(l.until) {
		l.state = TouchState{}
		l.until = time.Time{}
	}
	return l.state
}
