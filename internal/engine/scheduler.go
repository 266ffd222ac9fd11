// Package engine runs the fixed task set of a game: one goroutine per task,
// each looping over its body and sleeping its period, until the run reaches
// a terminal verdict.
package engine

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/logging"
)

// ErrRetired is returned by a task body to stop that task for the rest of
// the run.
var ErrRetired = errors.New("engine: task retired")

// Verdict messages set by the scheduler itself.
const (
	MsgInterrupted = "interrupted"
	MsgNoTasks     = "all tasks retired"
)

// Task is a unit of work of a Program.
type Task struct {
	Name string
	// Priority orders task start-up; lower numbers start first.
	Priority int
	// Period returns the delay after each body call. It is evaluated after
	// every call so it may depend on game state. Nil means no delay, for
	// tasks whose body blocks on its own.
	Period func() time.Duration
	// Body runs one iteration. Errors other than ErrRetired are logged and
	// the loop continues.
	Body func(ctx context.Context, run *Run) error
}

// Every returns a constant Period.
func Every(d time.Duration) func() time.Duration {
	return func() time.Duration { return d }
}

// Program is the task set of one game run.
type Program struct {
	Tasks []Task
	// Teardown runs exactly once after every task has exited.
	Teardown func()
}

// Scheduler starts programs.
type Scheduler struct {
	clock  Clock
	logger *log.Logger
}

// NewScheduler creates a scheduler. A nil logger discards output.
func NewScheduler(clock Clock, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Scheduler{clock: clock, logger: logger}
}

// Start launches every task of prog in priority order and returns the run.
// Cancelling ctx interrupts the run.
func (s *Scheduler) Start(ctx context.Context, prog Program) *Run {
	run := newRun(ctx)

	tasks := make([]Task, len(prog.Tasks))
	copy(tasks, prog.Tasks)
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority < tasks[j].Priority
	})

	var wg sync.WaitGroup
	for _, t := range tasks {
		started := make(chan struct{})
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			s.loop(run, t, started)
		}(t)
		<-started
	}

	go func() {
		wg.Wait()
		if ctx.Err() != nil {
			run.Stop()
		}
		run.Finish(core.Verdict{Outcome: core.OutcomeAborted, Message: MsgNoTasks})
		if prog.Teardown != nil {
			prog.Teardown()
		}
		v := run.Verdict()
		s.logger.Info("run finished", "outcome", v.Outcome, "message", v.Message)
		close(run.done)
	}()

	return run
}

// Run starts prog and blocks until it ends.
func (s *Scheduler) Run(ctx context.Context, prog Program) core.Verdict {
	return s.Start(ctx, prog).Wait()
}

func (s *Scheduler) loop(run *Run, t Task, started chan<- struct{}) {
	logger := s.logger.With("task", t.Name)
	ctx := run.Context()
	logger.Debug("task started", "priority", t.Priority)
	close(started)

	for ctx.Err() == nil {
		err := t.Body(ctx, run)
		switch {
		case errors.Is(err, ErrRetired):
			logger.Debug("task retired")
			return
		case err != nil && ctx.Err() == nil:
			logger.Error("task step failed", "err", err)
		}

		if t.Period == nil {
			continue
		}
		if !s.clock.Sleep(ctx, t.Period()) {
			break
		}
	}
	logger.Debug("task stopped")
}
