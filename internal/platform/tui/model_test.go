package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/engine"
	"github.com/vovakirdan/touch-arcade/internal/registry"
)

// stubGame paints a block while the panel is touched.
type stubGame struct{}

func (stubGame) ID() string    { return "stub" }
func (stubGame) Title() string { return "Stub" }

func (stubGame) Build(env engine.Env) (engine.Program, error) {
	paint := engine.Task{
		Name:     "paint",
		Priority: 1,
		Period:   engine.Every(time.Millisecond),
		Body: func(ctx context.Context, run *engine.Run) error {
			env.Painter.Clear(core.ColorBlack)
			if t := env.Touch.Sample(); t.Touched {
				env.Painter.FillRect(0, 0, 10, 10, core.ColorRed)
			}
			env.Painter.Flush()
			return nil
		},
	}
	return engine.Program{Tasks: []engine.Task{paint}}, nil
}

func (stubGame) TouchForKey(k string) (core.Point, bool) {
	if k == "up" {
		return core.Pt(5, 315), true
	}
	return core.Point{}, false
}

func init() {
	registry.Register("stub", func() registry.Game { return stubGame{} })
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelRunLifecycle(t *testing.T) {
	h := NewHistory(10)
	cfg := core.DefaultConfig()
	m := NewModel(stubGame{}, cfg, Options{History: h, LogLevel: "debug"})

	assert.True(t, m.keys.Steer.Enabled())
	assert.False(t, m.keys.Cells.Enabled())
	assert.False(t, m.keys.Restart.Enabled())

	started, ok := m.startCmd(cfg)().(runStartedMsg)
	require.True(t, ok)
	tm, wait := m.Update(started)
	m = tm.(Model)
	require.NotNil(t, wait)

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = tm.(Model)
	assert.Equal(t, core.TouchState{Touched: true, X: 5, Y: 315}, m.touch.Sample())
	require.Eventually(t, func() bool {
		return m.fb.Snapshot().Get(0, 0) == '█'
	}, 2*time.Second, 5*time.Millisecond)

	tm, cmd := m.Update(keyRunes("q"))
	m = tm.(Model)
	assert.Nil(t, cmd, "quit waits for the run to end")

	finished, ok := wait().(RunFinishedMsg)
	require.True(t, ok)
	assert.Equal(t, core.OutcomeAborted, finished.Verdict.Outcome)
	assert.Equal(t, engine.MsgInterrupted, finished.Verdict.Message)

	tm, cmd = m.Update(finished)
	m = tm.(Model)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.Equal(t, finished.Verdict, m.Verdict())
	assert.True(t, m.keys.Restart.Enabled())

	entries := h.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "stub", entries[0].GameID)
}

func TestModelMouseClickTouches(t *testing.T) {
	m := NewModel(stubGame{}, core.DefaultConfig(), Options{})

	tm, _ := m.Update(tea.MouseMsg{X: displayLeft + 6, Y: displayTop + 31, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tm.(Model)
	assert.Equal(t, core.TouchState{Touched: true, X: 35, Y: 5}, m.touch.Sample())

	m.touch.Release()
	tm, _ = m.Update(tea.MouseMsg{X: displayLeft + 6, Y: displayTop + 31, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = tm.(Model)
	assert.False(t, m.touch.Sample().Touched)
}

func TestTouchAt(t *testing.T) {
	cfg := core.DefaultConfig()
	tests := []struct {
		col, row int
		want     core.Point
		ok       bool
	}{
		{0, 0, core.Pt(5, 315), true},
		{1, 0, core.Pt(5, 315), true},
		{47, 31, core.Pt(235, 5), true},
		{12, 16, core.Pt(65, 155), true},
		{48, 0, core.Point{}, false},
		{0, 32, core.Point{}, false},
		{-1, 3, core.Point{}, false},
	}
	for _, tt := range tests {
		got, ok := TouchAt(cfg, tt.col, tt.row)
		assert.Equal(t, tt.ok, ok, "col=%d row=%d", tt.col, tt.row)
		assert.Equal(t, tt.want, got, "col=%d row=%d", tt.col, tt.row)
	}
}

func TestRenderScreenWidensCells(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.Set(0, 0, '█', core.ColorRed)
	s.Set(1, 0, 'A', core.ColorWhite)
	s.Set(2, 0, '─', core.ColorWhite)

	out := RenderScreen(s)
	assert.Contains(t, out, "██")
	assert.Contains(t, out, "A ")
	assert.Contains(t, out, "──")
}

func TestHistory(t *testing.T) {
	h := NewHistory(2)
	won := core.Verdict{Outcome: core.OutcomeWon, Message: "WON!"}
	lost := core.Verdict{Outcome: core.OutcomeLost, Message: "LOST!"}

	h.Add(Entry{GameID: "snake", Verdict: lost})
	h.Add(Entry{GameID: "snake", Verdict: won})
	h.Add(Entry{GameID: "tictactoe", Verdict: won})

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "tictactoe", entries[0].GameID)
	assert.Equal(t, map[core.Outcome]int{core.OutcomeWon: 1}, h.Tally("snake"))
	assert.Equal(t, "1W 0L 0D", summary(h.Tally("snake")))
	assert.Empty(t, summary(h.Tally("pong")))
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(NewHistory(5), 80, 24)
	require.NotEmpty(t, m.items)

	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(MenuModel)
	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.True(t, registry.Exists(m.Selected().GameID))

	m = NewMenuModel(NewHistory(5), 80, 24)
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, tm.(MenuModel).WantsResults())

	tm, _ = m.Update(keyRunes("q"))
	assert.True(t, tm.(MenuModel).IsQuitting())
}
