package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/logging"
)

// Env is what a game needs from its host to build a run.
type Env struct {
	Config  core.RuntimeConfig
	Painter core.Painter
	Touch   core.TouchPanel
	Clock   Clock
	Logger  *log.Logger
}

// Seed returns the configured seed, or one derived from the tick counter and
// wall clock when the config leaves it at zero.
func (e Env) Seed() int64 {
	if e.Config.Seed != 0 {
		return e.Config.Seed
	}
	var ticks uint64
	if e.Clock != nil {
		ticks = e.Clock.Ticks()
	}
	return time.Now().UnixNano() ^ int64(ticks)
}

// Log returns the env logger, or a discarding one.
func (e Env) Log() *log.Logger {
	if e.Logger == nil {
		return logging.Discard()
	}
	return e.Logger
}

// RandomTouch is a TouchPanel that reports a touch at a uniformly random
// device position with the given probability. It drives headless runs.
type RandomTouch struct {
	mu     sync.Mutex
	rng    *rand.Rand
	width  int
	height int
	chance float64
}

// NewRandomTouch creates a random panel of width x height pixels.
func NewRandomTouch(seed int64, width, height int, chance float64) *RandomTouch {
	return &RandomTouch{
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
		chance: chance,
	}
}

// Sample implements core.TouchPanel.
func (p *RandomTouch) Sample() core.TouchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rng.Float64() >= p.chance {
		return core.TouchState{}
	}
	return core.TouchState{Touched: true, X: p.rng.Intn(p.width), Y: p.rng.Intn(p.height)}
}

// ScriptedTouch is a TouchPanel that replays queued samples, one per call,
// and reports no touch once the queue is empty.
type ScriptedTouch struct {
	mu    sync.Mutex
	queue []core.TouchState
}

// Push queues samples.
func (p *ScriptedTouch) Push(states ...core.TouchState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, states...)
}

// Tap queues a single touch at (x, y).
func (p *ScriptedTouch) Tap(x, y int) {
	p.Push(core.TouchState{Touched: true, X: x, Y: y})
}

// Sample implements core.TouchPanel.
func (p *ScriptedTouch) Sample() core.TouchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return core.TouchState{}
	}
	s := p.queue[0]
	p.queue = p.queue[1:]
	return s
}

// Pending returns the number of queued samples.
func (p *ScriptedTouch) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}
