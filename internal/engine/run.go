package engine

import (
	"context"
	"sync"

	"github.com/vovakirdan/touch-arcade/internal/core"
)

// Run is one execution of a Program. It carries the run verdict and the
// context every task of the run observes.
type Run struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	verdict core.Verdict

	finishOnce sync.Once
	done       chan struct{}
}

func newRun(parent context.Context) *Run {
	ctx, cancel := context.WithCancel(parent)
	return &Run{
		ctx:     ctx,
		cancel:  cancel,
		verdict: core.Running,
		done:    make(chan struct{}),
	}
}

// Context returns the run context. It is cancelled when the run finishes.
func (r *Run) Context() context.Context {
	return r.ctx
}

// Finish records a terminal verdict and stops every task of the run.
// Only the first call has an effect; it reports whether this call won.
// Non-terminal verdicts are ignored.
func (r *Run) Finish(v core.Verdict) bool {
	if !v.Terminal() {
		return false
	}
	won := false
	r.finishOnce.Do(func() {
		r.mu.Lock()
		r.verdict = v
		r.mu.Unlock()
		won = true
		r.cancel()
	})
	return won
}

// Verdict returns the current verdict.
func (r *Run) Verdict() core.Verdict {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.verdict
}

// Active reports whether the run has not finished yet.
func (r *Run) Active() bool {
	return !r.Verdict().Terminal()
}

// Done is closed once every task has exited and the program teardown ran.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run is done and returns its verdict.
func (r *Run) Wait() core.Verdict {
	<-r.done
	return r.Verdict()
}

// Stop interrupts the run. It is a no-op if the run already finished.
func (r *Run) Stop() {
	r.Finish(core.Verdict{Outcome: core.OutcomeAborted, Message: MsgInterrupted})
}
