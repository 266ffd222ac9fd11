// Package tictactoe implements touch Tic-Tac-Toe against a random bot. A
// dispatcher hands turns to the two players through a turnstile, and every
// board access happens under the world lock.
package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/engine"
	"github.com/vovakirdan/touch-arcade/internal/geometry"
	"github.com/vovakirdan/touch-arcade/internal/registry"
)

var configPath string

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements registry.Game for Tic-Tac-Toe.
type Game struct {
	layout geometry.BoardLayout
}

// New creates a Tic-Tac-Toe game.
func New() *Game {
	rc := core.DefaultConfig()
	return &Game{layout: geometry.NewBoardLayout(rc.DisplayW, rc.DisplayH)}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Build loads the configuration and creates the program of a new run.
func (g *Game) Build(env engine.Env) (engine.Program, error) {
	cfg, err := config.LoadTicTacToe(configPath)
	if err != nil {
		return engine.Program{}, fmt.Errorf("tictactoe: %w", err)
	}
	w, prog, err := NewProgram(env, cfg)
	if err != nil {
		return engine.Program{}, err
	}
	g.layout = w.Layout()
	return prog, nil
}

// TouchForKey maps the digits 1-9 to the board like a numeric keypad:
// 1 is the bottom-left cell and 9 the top-right.
func (g *Game) TouchForKey(key string) (core.Point, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return core.Point{}, false
	}
	return g.layout.CellTouch(int(key[0] - '1')), true
}
