package snake

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/core"
)

func newTestWorld(t *testing.T, cfg config.SnakeConfig, rc core.RuntimeConfig, logger *log.Logger) *World {
	t.Helper()
	w, err := NewWorld(cfg, rc, rand.New(rand.NewSource(1)), logger)
	require.NoError(t, err)
	return w
}

func defaultWorld(t *testing.T) *World {
	return newTestWorld(t, config.DefaultSnakeConfig(), core.DefaultConfig(), nil)
}

// placeApple moves the apple, taking the locks in order.
func placeApple(w *World, a Apple) {
	sl := w.LockSnake()
	al := sl.LockApple()
	w.apple = a
	al.Unlock()
	sl.Unlock()
}

func TestNewWorldStartState(t *testing.T) {
	w := defaultWorld(t)
	snap := w.Snapshot()

	assert.Equal(t, core.Pt(115, 115), snap.Head)
	assert.Equal(t, Left, snap.Dir)
	assert.Equal(t, 1, snap.Length)
	assert.Equal(t, core.Pt(5, 5), snap.Apple.Pos)
	assert.Contains(t, core.AppleColors, snap.Apple.Tag)
	assert.Equal(t, core.Running, snap.Verdict)
}

func TestNewWorldRejectsBadStart(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Start.X = 500
	_, err := NewWorld(cfg, core.DefaultConfig(), rand.New(rand.NewSource(1)), nil)
	assert.Error(t, err)

	cfg = config.DefaultSnakeConfig()
	cfg.Start.Direction = "north"
	_, err = NewWorld(cfg, core.DefaultConfig(), rand.New(rand.NewSource(1)), nil)
	assert.Error(t, err)
}

func TestTryEatAppleOnHead(t *testing.T) {
	w := defaultWorld(t)

	sl := w.LockSnake()
	defer sl.Unlock()
	al := sl.LockApple()
	defer al.Unlock()

	s := sl.Snake()
	w.apple = Apple{Pos: s.Head().Pos, Tag: core.ColorMagenta}

	ate, err := al.TryEat(s)
	require.NoError(t, err)
	assert.True(t, ate)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, core.ColorMagenta, s.Tail().Tag)

	w.apple = Apple{Pos: core.Pt(205, 205), Tag: core.ColorRed}
	ate, err = al.TryEat(s)
	require.NoError(t, err)
	assert.False(t, ate)
	assert.Equal(t, 2, s.Len())
}

func TestTickEatsAndRelocates(t *testing.T) {
	w := defaultWorld(t)
	placeApple(w, Apple{Pos: core.Pt(125, 115), Tag: core.ColorCyan})

	v := w.Tick()
	assert.Equal(t, core.Running, v)

	snap := w.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, 2, snap.Length)
	assert.Equal(t, core.Pt(125, 115), snap.Head)
	assert.Equal(t, core.ColorCyan, snap.Segments[1].Tag)
	assert.Equal(t, config.DefaultSnakeConfig().Speed.For(2), snap.Speed)
	for _, seg := range snap.Segments {
		assert.NotEqual(t, seg.Pos, snap.Apple.Pos)
	}
}

func TestRelocateNeverOnSnake(t *testing.T) {
	for _, covered := range []int{1, 100, 500, testGrid.Capacity() - 1} {
		w := defaultWorld(t)
		sl := w.LockSnake()
		al := sl.LockApple()
		s := sl.Snake()

		s.body = s.body[:0]
		for i := 0; i < covered; i++ {
			s.body = append(s.body, Segment{Pos: testGrid.CellCenter(i)})
		}

		for seed := int64(1); seed <= 20; seed++ {
			w.rng = rand.New(rand.NewSource(seed))
			require.NoError(t, al.Relocate(s))
			assert.Equal(t, CollisionNone, s.CollisionCheck(al.Apple().Pos), "covered=%d seed=%d", covered, seed)
		}
		al.Unlock()
		sl.Unlock()
	}
}

func TestRelocateFullGrid(t *testing.T) {
	w := defaultWorld(t)
	sl := w.LockSnake()
	defer sl.Unlock()
	al := sl.LockApple()
	defer al.Unlock()

	s := sl.Snake()
	s.body = s.body[:0]
	for i := 0; i < testGrid.Capacity(); i++ {
		s.body = append(s.body, Segment{Pos: testGrid.CellCenter(i)})
	}
	assert.ErrorIs(t, al.Relocate(s), ErrNoFreeCell)
}

func TestSelfCollisionLoses(t *testing.T) {
	w := defaultWorld(t)
	placeApple(w, Apple{Pos: core.Pt(205, 205), Tag: core.ColorRed})

	sl := w.LockSnake()
	s := sl.Snake()
	s.body = []Segment{
		{Pos: core.Pt(25, 15)},
		{Pos: core.Pt(15, 15)},
		{Pos: core.Pt(15, 25)},
		{Pos: core.Pt(25, 25)},
		{Pos: core.Pt(35, 25)},
	}
	s.dir, s.next = Down, Down
	sl.Unlock()

	v := w.Tick()
	assert.Equal(t, core.OutcomeLost, v.Outcome)
	assert.Equal(t, MsgLost, v.Message)

	before := w.Snapshot()
	assert.Equal(t, v, w.Tick(), "terminal verdicts are sticky")
	assert.Equal(t, before, w.Snapshot(), "no tick runs after a terminal verdict")
	assert.False(t, w.Steer(core.TouchState{Touched: true, X: 60, Y: 150}))
}

func TestFillingTheGridWins(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Start.Position = config.Position{X: 5, Y: 5}
	cfg.Apple = config.Position{X: 15, Y: 5}
	rc := core.RuntimeConfig{DisplayW: 20, DisplayH: 10, Scale: 10}

	w := newTestWorld(t, cfg, rc, nil)
	v := w.Tick()

	assert.Equal(t, core.OutcomeWon, v.Outcome)
	assert.Equal(t, MsgWon, v.Message)
	assert.Equal(t, 2, w.Snapshot().Length)
}

func TestExhaustedPoolSkipsGrowth(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultSnakeConfig()
	cfg.MaxSegments = 1

	w := newTestWorld(t, cfg, core.DefaultConfig(), log.New(&buf))
	placeApple(w, Apple{Pos: core.Pt(125, 115), Tag: core.ColorCyan})

	v := w.Tick()
	assert.Equal(t, core.Running, v)
	snap := w.Snapshot()
	assert.Equal(t, 1, snap.Length)
	assert.NotEqual(t, core.Pt(125, 115), snap.Apple.Pos, "the apple is still eaten")
	assert.Contains(t, buf.String(), "growth skipped")
}

func TestGrowthMonotonicAndBounded(t *testing.T) {
	rc := core.RuntimeConfig{DisplayW: 40, DisplayH: 40, Scale: 10}
	cfg := config.DefaultSnakeConfig()
	cfg.Start.Position = config.Position{X: 15, Y: 15}
	cfg.Apple = config.Position{X: 25, Y: 15}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		w := newTestWorld(t, cfg, rc, nil)
		capacity := w.Grid().Capacity()
		prev := 1
		for i := 0; i < 500; i++ {
			w.Steer(core.TouchState{Touched: true, X: rng.Intn(40), Y: rng.Intn(40)})
			v := w.Tick()
			n := w.Snapshot().Length
			require.GreaterOrEqual(t, n, prev)
			require.LessOrEqual(t, n, capacity)
			prev = n
			if v.Terminal() {
				break
			}
		}
	}
}

func TestSteerUsesTouchZones(t *testing.T) {
	w := defaultWorld(t)

	assert.False(t, w.Steer(core.TouchState{}))
	assert.True(t, w.Steer(core.TouchState{Touched: true, X: 60, Y: 150}))
	assert.Equal(t, Left, w.Snapshot().Dir, "applied on the next tick")

	w.Tick()
	assert.Equal(t, Up, w.Snapshot().Dir)
	assert.Equal(t, core.Pt(115, 105), w.Snapshot().Head)

	assert.False(t, w.Steer(core.TouchState{Touched: true, X: 180, Y: 150}), "down reverses up")
	assert.True(t, w.Steer(core.TouchState{Touched: true, X: 10, Y: 10}))
}

func TestTeardownReleasesOnce(t *testing.T) {
	w := defaultWorld(t)

	assert.True(t, w.Teardown())
	assert.False(t, w.Teardown())
	assert.Equal(t, core.Running, w.Tick(), "released worlds do not tick")
}

func TestDrawFrame(t *testing.T) {
	w := defaultWorld(t)
	fb := core.NewFrameBuffer(240, 320, 10)

	snap := w.Snapshot()
	Draw(fb, snap, 10)
	screen := fb.Snapshot()

	head := screen.GetCell(11, 11)
	assert.Equal(t, '█', head.Rune)
	assert.Equal(t, HeadColor, head.Color)
	assert.Equal(t, '●', screen.Get(0, 0))

	snap.Verdict = core.Verdict{Outcome: core.OutcomeLost, Message: MsgLost}
	Draw(fb, snap, 10)
	assert.Contains(t, fb.Snapshot().Row(16), MsgLost)
}
