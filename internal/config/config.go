// Package config provides YAML-based game configuration loading and the
// application settings of the arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Start       SnakeStart   `yaml:"start"`
	Apple       Position     `yaml:"apple"`
	Speed       SpeedCurve   `yaml:"speed"`
	MaxSegments int          `yaml:"max_segments"` // 0 = grid capacity
	Zones       SnakeZones   `yaml:"zones"`
	Periods     SnakePeriods `yaml:"periods"`
}

// Position is a pixel position in the display frame.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeStart defines where the snake spawns.
type SnakeStart struct {
	Position  `yaml:",inline"`
	Direction string `yaml:"direction"` // "left", "right", "up" or "down"
}

// SnakeZones defines the steering bands of the touch panel, in device pixels.
type SnakeZones struct {
	Low   int `yaml:"low"`
	High  int `yaml:"high"`
	Split int `yaml:"split"`
}

// SnakePeriods defines task periods of the snake run.
type SnakePeriods struct {
	Input    time.Duration `yaml:"input"`
	Render   time.Duration `yaml:"render"`
	Analysis time.Duration `yaml:"analysis"`
}

// Validate checks the configuration.
func (c SnakeConfig) Validate() error {
	switch c.Start.Direction {
	case "left", "right", "up", "down":
	default:
		return fmt.Errorf("%w: snake start direction %q", ErrInvalidConfig, c.Start.Direction)
	}
	if err := c.Speed.Validate(); err != nil {
		return err
	}
	if c.MaxSegments < 0 {
		return fmt.Errorf("%w: negative max_segments", ErrInvalidConfig)
	}
	if c.Zones.Low > c.Zones.High {
		return fmt.Errorf("%w: zone low %d above high %d", ErrInvalidConfig, c.Zones.Low, c.Zones.High)
	}
	if c.Periods.Input <= 0 || c.Periods.Render <= 0 || c.Periods.Analysis <= 0 {
		return fmt.Errorf("%w: snake periods must be positive", ErrInvalidConfig)
	}
	return nil
}

// TicTacToeConfig contains all configuration for the Tic-Tac-Toe game.
type TicTacToeConfig struct {
	FirstPlayer string           `yaml:"first_player"` // "bot" or "human"
	BotThink    time.Duration    `yaml:"bot_think"`
	Periods     TicTacToePeriods `yaml:"periods"`
	Marks       TicTacToeMarks   `yaml:"marks"`
}

// TicTacToePeriods defines task periods of the tic-tac-toe run.
type TicTacToePeriods struct {
	HumanPoll time.Duration `yaml:"human_poll"`
	Analysis  time.Duration `yaml:"analysis"`
}

// TicTacToeMarks defines mark sizes in pixels.
type TicTacToeMarks struct {
	CircleRadius int `yaml:"circle_radius"`
	CrossSize    int `yaml:"cross_size"`
}

// Validate checks the configuration.
func (c TicTacToeConfig) Validate() error {
	if c.FirstPlayer != "bot" && c.FirstPlayer != "human" {
		return fmt.Errorf("%w: first_player %q", ErrInvalidConfig, c.FirstPlayer)
	}
	if c.BotThink < 0 {
		return fmt.Errorf("%w: negative bot_think", ErrInvalidConfig)
	}
	if c.Periods.HumanPoll <= 0 || c.Periods.Analysis <= 0 {
		return fmt.Errorf("%w: tic-tac-toe periods must be positive", ErrInvalidConfig)
	}
	return nil
}
