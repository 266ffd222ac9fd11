package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/engine"
	"github.com/vovakirdan/touch-arcade/internal/geometry"
	"github.com/vovakirdan/touch-arcade/internal/logging"
	"github.com/vovakirdan/touch-arcade/internal/registry"
)

// Placement of the display inside the view: a title line, then the top
// border; the left border takes one column.
const (
	displayTop  = 2
	displayLeft = 1
)

// touchHold is how long a click or key press stays on the touch panel. It is
// longer than the slowest polling task so every press is sampled.
const touchHold = 200 * time.Millisecond

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	wonStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	consoleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// runStartedMsg carries a run that was just started.
type runStartedMsg struct {
	run *engine.Run
}

// RunFinishedMsg is sent once every task of a run has exited.
type RunFinishedMsg struct {
	Verdict core.Verdict
	Elapsed time.Duration
}

// runErrorMsg reports a run that could not be built.
type runErrorMsg struct {
	err error
}

// Options configures a play session.
type Options struct {
	LogLevel     string
	ConsoleLines int
	History      *History
}

// Model is the Bubble Tea model hosting a game run. The terminal is the
// display, mouse clicks and game keys are the touch panel.
type Model struct {
	game    registry.Game
	config  core.RuntimeConfig
	fb      *core.FrameBuffer
	touch   *core.TouchLatch
	console *logging.Console
	logger  *log.Logger
	history *History
	keys    PlayKeyMap
	help    help.Model

	run      *engine.Run
	started  time.Time
	verdict  core.Verdict
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	lines := opts.ConsoleLines
	if lines <= 0 {
		lines = 5
	}
	console := logging.NewConsole(lines)

	keys := DefaultPlayKeyMap()
	kt, ok := game.(registry.KeyTouch)
	_, steer := touchForKey(kt, ok, "up")
	_, cells := touchForKey(kt, ok, "1")
	keys.Steer.SetEnabled(steer)
	keys.Cells.SetEnabled(cells)

	return Model{
		game:    game,
		config:  cfg,
		fb:      core.NewFrameBuffer(cfg.DisplayW, cfg.DisplayH, cfg.Scale),
		touch:   core.NewTouchLatch(),
		console: console,
		logger:  logging.New(console, opts.LogLevel, game.ID()),
		history: opts.History,
		keys:    keys,
		help:    help.New(),
		verdict: core.Running,
	}
}

func touchForKey(kt registry.KeyTouch, ok bool, k string) (core.Point, bool) {
	if !ok {
		return core.Point{}, false
	}
	return kt.TouchForKey(k)
}

// Init starts the run and the redraw tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startCmd(m.config), tickCmd(m.config.TickRate))
}

// startCmd builds a fresh run of the game and starts its tasks.
func (m Model) startCmd(cfg core.RuntimeConfig) tea.Cmd {
	env := engine.Env{
		Config:  cfg,
		Painter: m.fb,
		Touch:   m.touch,
		Clock:   engine.NewSystemClock(),
		Logger:  m.logger,
	}
	game, logger := m.game, m.logger
	return func() tea.Msg {
		prog, err := game.Build(env)
		if err != nil {
			return runErrorMsg{err: err}
		}
		sched := engine.NewScheduler(env.Clock, logger)
		return runStartedMsg{run: sched.Start(context.Background(), prog)}
	}
}

// waitCmd reports the end of a run.
func waitCmd(run *engine.Run, started time.Time) tea.Cmd {
	return func() tea.Msg {
		v := run.Wait()
		return RunFinishedMsg{Verdict: v, Elapsed: time.Since(started)}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case runStartedMsg:
		m.run = msg.run
		m.started = time.Now()
		m.verdict = core.Running
		m.keys.Restart.SetEnabled(false)
		return m, waitCmd(msg.run, m.started)

	case RunFinishedMsg:
		m.verdict = msg.Verdict
		m.keys.Restart.SetEnabled(true)
		if m.history != nil {
			m.history.Add(Entry{
				GameID:  m.game.ID(),
				Title:   m.game.Title(),
				Verdict: msg.Verdict,
				Elapsed: msg.Elapsed,
				At:      time.Now(),
			})
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case runErrorMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.run != nil && m.run.Active() {
			m.run.Stop()
			return m, nil // quit once the run reports its end
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		// Reset seed for new game
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		m.console.Reset()
		m.keys.Restart.SetEnabled(false)
		return m, m.startCmd(cfg)
	}

	if m.run == nil || !m.run.Active() {
		return m, nil
	}
	if kt, ok := m.game.(registry.KeyTouch); ok {
		if p, ok := kt.TouchForKey(msg.String()); ok {
			m.touch.Press(p.X, p.Y, touchHold)
		}
	}
	return m, nil
}

// handleMouse turns a left click on the display into a touch.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := TouchAt(m.config, msg.X-displayLeft, msg.Y-displayTop); ok {
		m.logger.Debug("click", "col", msg.X, "row", msg.Y, "x", p.X, "y", p.Y)
		m.touch.Press(p.X, p.Y, touchHold)
	}
	return m, nil
}

// TouchAt maps a terminal position relative to the display's top-left corner
// to the device-frame center of the display cell under it.
func TouchAt(cfg core.RuntimeConfig, col, row int) (core.Point, bool) {
	if col < 0 || row < 0 {
		return core.Point{}, false
	}
	cx, cy := col/cellWidth, row
	if cx >= cfg.Cols() || cy >= cfg.Rows() {
		return core.Point{}, false
	}
	half := cfg.Scale / 2
	display := core.Pt(cx*cfg.Scale+half, cy*cfg.Scale+half)
	mapper := geometry.Mapper{Width: cfg.DisplayW, Height: cfg.DisplayH}
	return mapper.ToDevice(display), true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting && m.err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(m.game.Title())))
	b.WriteString("  ")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	b.WriteString(RenderDisplay(m.fb.Snapshot()))
	b.WriteString("\n")

	for _, line := range m.console.Lines() {
		b.WriteString(consoleStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("click: touch  " + m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	switch v := m.verdict; {
	case !v.Terminal():
		return statusStyle.Render("playing")
	case v.Outcome == core.OutcomeWon:
		return wonStyle.Render(fmt.Sprintf("%s (%s)", v.Message, v.Outcome))
	default:
		return lostStyle.Render(fmt.Sprintf("%s (%s)", v.Message, v.Outcome))
	}
}

// Verdict returns the verdict of the last run.
func (m Model) Verdict() core.Verdict {
	return m.verdict
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game and returns the verdict of the
// last run once the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.Verdict, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return core.Verdict{}, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return core.Verdict{}, nil
	}
	if m.Err() != nil {
		return core.Verdict{}, m.Err()
	}
	return m.Verdict(), nil
}
