package engine

import (
	"context"
	"sync"
)

// Turnstile holds whose turn it is. A participant waits for its turn and
// passes it on when done; every change wakes all waiters, and only the one
// named by the new turn proceeds.
type Turnstile struct {
	mu      sync.Mutex
	turn    int
	changed chan struct{}
}

// NewTurnstile creates a turnstile with the turn held by first.
func NewTurnstile(first int) *Turnstile {
	return &Turnstile{turn: first, changed: make(chan struct{})}
}

// Turn returns the current holder.
func (t *Turnstile) Turn() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.turn
}

// Pass hands the turn to p.
func (t *Turnstile) Pass(p int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turn = p
	close(t.changed)
	t.changed = make(chan struct{})
}

// Wait blocks until it is p's turn or ctx is done.
func (t *Turnstile) Wait(ctx context.Context, p int) error {
	for {
		t.mu.Lock()
		if t.turn == p {
			t.mu.Unlock()
			return nil
		}
		changed := t.changed
		t.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
