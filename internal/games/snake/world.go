package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/geometry"
)

// ErrNoFreeCell is returned when the apple cannot be placed because the snake
// covers the whole grid.
var ErrNoFreeCell = errors.New("snake: no free cell for the apple")

// Result messages shown on the display.
const (
	MsgWon  = "WON!"
	MsgLost = "LOST!"
)

// HeadColor is the tag of the head segment.
const HeadColor = core.ColorGreen

// Apple is the food item.
type Apple struct {
	Pos core.Point
	Tag core.Color
}

// World is the state of one snake run: one snake and one apple, each behind
// its own lock. The locks are only reachable through SnakeLock and AppleLock,
// which fix the acquisition order to snake then apple.
type World struct {
	grid   geometry.Grid
	zones  geometry.Zones
	speed  config.SpeedCurve
	logger *log.Logger

	snakeMu sync.Mutex
	snake   *Snake
	verdict core.Verdict
	ticks   uint64

	appleMu sync.Mutex
	apple   Apple
	rng     *rand.Rand
}

// NewWorld creates the state of a new run on the display described by rc.
// Start and apple positions snap to the center of their cell.
func NewWorld(cfg config.SnakeConfig, rc core.RuntimeConfig, rng *rand.Rand, logger *log.Logger) (*World, error) {
	grid := geometry.Grid{Width: rc.DisplayW, Height: rc.DisplayH, Scale: rc.Scale}
	if grid.Capacity() < 2 {
		return nil, fmt.Errorf("snake: grid %dx%d too small", grid.Cols(), grid.Rows())
	}
	dir, err := ParseDirection(cfg.Start.Direction)
	if err != nil {
		return nil, err
	}
	start := core.Pt(cfg.Start.X, cfg.Start.Y)
	if !grid.Contains(start) {
		return nil, fmt.Errorf("snake: start %v outside the display", start)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := NewSnake(grid, Segment{Pos: snap(grid, start), Tag: HeadColor}, dir, cfg.MaxSegments)
	s.SetSpeed(cfg.Speed.For(s.Len()))

	w := &World{
		grid:    grid,
		zones:   zonesFor(cfg, rc),
		speed:   cfg.Speed,
		logger:  logger,
		snake:   s,
		verdict: core.Running,
		rng:     rng,
	}

	applePos := core.Pt(cfg.Apple.X, cfg.Apple.Y)
	w.apple = Apple{Tag: w.appleTag()}
	if grid.Contains(applePos) && s.CollisionCheck(snap(grid, applePos)) == CollisionNone {
		w.apple.Pos = snap(grid, applePos)
	} else if w.apple.Pos, err = w.freeCell(s); err != nil {
		return nil, err
	}
	return w, nil
}

func zonesFor(cfg config.SnakeConfig, rc core.RuntimeConfig) geometry.Zones {
	return geometry.Zones{
		Width:  rc.DisplayW,
		Height: rc.DisplayH,
		Low:    cfg.Zones.Low,
		High:   cfg.Zones.High,
		Split:  cfg.Zones.Split,
	}
}

func snap(g geometry.Grid, p core.Point) core.Point {
	return g.CellCenter(g.Index(p))
}

// Grid returns the playfield grid.
func (w *World) Grid() geometry.Grid {
	return w.grid
}

// SnakeLock is the held snake lock. It is the only way to reach the snake.
type SnakeLock struct {
	w *World
}

// AppleLock is the held apple lock. It can only be taken while holding the
// snake lock.
type AppleLock struct {
	w *World
}

// LockSnake acquires the snake lock.
func (w *World) LockSnake() *SnakeLock {
	w.snakeMu.Lock()
	return &SnakeLock{w: w}
}

// Snake returns the guarded snake.
func (l *SnakeLock) Snake() *Snake {
	return l.world().snake
}

// Verdict returns the run verdict.
func (l *SnakeLock) Verdict() core.Verdict {
	return l.world().verdict
}

// LockApple acquires the apple lock while the snake lock is held.
func (l *SnakeLock) LockApple() *AppleLock {
	w := l.world()
	w.appleMu.Lock()
	return &AppleLock{w: w}
}

// Unlock releases the snake lock. The guard is unusable afterwards.
func (l *SnakeLock) Unlock() {
	w := l.world()
	l.w = nil
	w.snakeMu.Unlock()
}

func (l *SnakeLock) world() *World {
	if l.w == nil {
		panic("snake: snake lock used after Unlock")
	}
	return l.w
}

// Apple returns the guarded apple.
func (l *AppleLock) Apple() Apple {
	return l.world().apple
}

// Unlock releases the apple lock. The guard is unusable afterwards.
func (l *AppleLock) Unlock() {
	w := l.world()
	l.w = nil
	w.appleMu.Unlock()
}

func (l *AppleLock) world() *World {
	if l.w == nil {
		panic("snake: apple lock used after Unlock")
	}
	return l.w
}

// TryEat grows the snake when its head is on the apple. The new tail takes the
// apple's tag. It reports whether the apple was eaten; a growth failure is
// returned alongside true.
func (l *AppleLock) TryEat(s *Snake) (bool, error) {
	w := l.world()
	if s.Head().Pos != w.apple.Pos {
		return false, nil
	}
	return true, s.Grow(w.apple.Tag)
}

// Relocate moves the apple to a random cell the snake does not cover and
// gives it a new tag.
func (l *AppleLock) Relocate(s *Snake) error {
	w := l.world()
	pos, err := w.freeCell(s)
	if err != nil {
		return err
	}
	w.apple = Apple{Pos: pos, Tag: w.appleTag()}
	return nil
}

// freeCell samples random cells until one is free of the snake. After
// 8 x capacity misses it scans the grid from a random offset instead.
func (w *World) freeCell(s *Snake) (core.Point, error) {
	capacity := w.grid.Capacity()
	for i := 0; i < 8*capacity; i++ {
		p := w.grid.CellCenter(w.rng.Intn(capacity))
		if s.CollisionCheck(p) == CollisionNone {
			return p, nil
		}
	}
	start := w.rng.Intn(capacity)
	for i := 0; i < capacity; i++ {
		p := w.grid.CellCenter((start + i) % capacity)
		if s.CollisionCheck(p) == CollisionNone {
			return p, nil
		}
	}
	return core.Point{}, ErrNoFreeCell
}

func (w *World) appleTag() core.Color {
	return core.AppleColors[w.rng.Intn(len(core.AppleColors))]
}

// Evaluate returns the verdict for the snake: LOST when the head overlaps the
// body, WON when the snake fills the grid, otherwise running.
func Evaluate(s *Snake, capacity int) core.Verdict {
	switch {
	case s.SelfCollision():
		return core.Verdict{Outcome: core.OutcomeLost, Message: MsgLost}
	case s.Len() >= capacity:
		return core.Verdict{Outcome: core.OutcomeWon, Message: MsgWon}
	}
	return core.Running
}

// Tick advances the run by one step: move, eat, relocate the apple, update
// the speed and evaluate. The verdict is finalized under the snake lock, and
// once it is terminal further ticks do nothing.
func (w *World) Tick() core.Verdict {
	sl := w.LockSnake()
	defer sl.Unlock()

	s := sl.Snake()
	if w.verdict.Terminal() || s.Released() {
		return w.verdict
	}
	w.ticks++
	s.Advance()

	al := sl.LockApple()
	ate, err := al.TryEat(s)
	if err != nil {
		w.logger.Warn("growth skipped", "tick", w.ticks, "length", s.Len(), "err", err)
	}
	if ate {
		if err := al.Relocate(s); err != nil {
			w.logger.Debug("apple not placed", "tick", w.ticks, "err", err)
		}
	}
	al.Unlock()

	s.SetSpeed(w.speed.For(s.Len()))
	w.verdict = Evaluate(s, w.grid.Capacity())
	if w.verdict.Terminal() {
		w.logger.Info("snake run over", "tick", w.ticks, "length", s.Len(), "outcome", w.verdict.Outcome)
	}
	return w.verdict
}

// Steer turns the snake toward the zone of the touch sample. It reports
// whether the direction request was accepted.
func (w *World) Steer(t core.TouchState) bool {
	dir, ok := zoneDirection(w.zones.At(t))
	if !ok {
		return false
	}

	sl := w.LockSnake()
	defer sl.Unlock()
	if sl.Verdict().Terminal() {
		return false
	}
	return sl.Snake().Turn(dir)
}

func zoneDirection(z geometry.Zone) (Direction, bool) {
	switch z {
	case geometry.ZoneLeft:
		return Left, true
	case geometry.ZoneUp:
		return Up, true
	case geometry.ZoneDown:
		return Down, true
	case geometry.ZoneRight:
		return Right, true
	}
	return Direction{}, false
}

// Verdict returns the run verdict.
func (w *World) Verdict() core.Verdict {
	sl := w.LockSnake()
	defer sl.Unlock()
	return sl.Verdict()
}

// Speed returns the current delay between ticks.
func (w *World) Speed() time.Duration {
	sl := w.LockSnake()
	defer sl.Unlock()
	return sl.Snake().Speed()
}

// Teardown releases the snake body. It reports false if it was already
// released.
func (w *World) Teardown() bool {
	sl := w.LockSnake()
	defer sl.Unlock()
	s := sl.Snake()
	n := s.Len()
	if !s.Teardown() {
		return false
	}
	w.logger.Debug("snake released", "segments", n)
	return true
}
