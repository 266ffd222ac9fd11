package engine

import (
	"context"
	"time"
)

// Clock is the timing boundary: a monotonic tick counter and a cancellable
// sleep.
type Clock interface {
	// Ticks returns milliseconds elapsed since the clock started.
	Ticks() uint64
	// Sleep blocks for d or until ctx is done. It returns false when the
	// sleep was cut short.
	Sleep(ctx context.Context, d time.Duration) bool
}

// SystemClock is a Clock backed by the monotonic wall clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose tick counter starts now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Ticks implements Clock.
func (c *SystemClock) Ticks() uint64 {
	return uint64(time.Since(c.start) / time.Millisecond)
}

// Sleep implements Clock.
func (c *SystemClock) Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
