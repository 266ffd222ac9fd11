// Package snake implements the touch Snake game: a wrapping grid, a snake
// that grows by eating apples, and the task set that plays it.
package snake

import (
	"fmt"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/engine"
	"github.com/vovakirdan/touch-arcade/internal/geometry"
	"github.com/vovakirdan/touch-arcade/internal/registry"
)

// Package-level config path, set by the CLI before a run is built.
var configPath string

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements registry.Game for Snake.
type Game struct {
	zones geometry.Zones
}

// New creates a Snake game.
func New() *Game {
	return &Game{zones: geometry.DefaultZones()}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Build loads the configuration and creates the program of a new run.
func (g *Game) Build(env engine.Env) (engine.Program, error) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		return engine.Program{}, fmt.Errorf("snake: %w", err)
	}
	_, prog, err := NewProgram(env, cfg)
	if err != nil {
		return engine.Program{}, err
	}
	g.zones = zonesFor(cfg, env.Config)
	return prog, nil
}

// TouchForKey maps arrow and WASD keys to a touch inside the steering zone
// of the last built run. Keys follow the on-screen direction, which for the
// horizontal zones is the mirror of their panel names.
func (g *Game) TouchForKey(key string) (core.Point, bool) {
	var zone geometry.Zone
	switch key {
	case "left", "a":
		zone = geometry.ZoneRight
	case "right", "d":
		zone = geometry.ZoneLeft
	case "up", "w":
		zone = geometry.ZoneUp
	case "down", "s":
		zone = geometry.ZoneDown
	default:
		return core.Point{}, false
	}
	return g.zones.Anchor(zone)
}
