package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Start: SnakeStart{
			Position:  Position{X: 115, Y: 115},
			Direction: "left",
		},
		Apple: Position{X: 5, Y: 5},
		Speed: SpeedCurve{
			Start: 250 * time.Millisecond,
			Min:   60 * time.Millisecond,
			Step:  10 * time.Millisecond,
		},
		Zones: SnakeZones{Low: 75, High: 225, Split: 120},
		Periods: SnakePeriods{
			Input:    10 * time.Millisecond,
			Render:   20 * time.Millisecond,
			Analysis: 100 * time.Millisecond,
		},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		FirstPlayer: "bot",
		BotThink:    100 * time.Millisecond,
		Periods: TicTacToePeriods{
			HumanPoll: 100 * time.Millisecond,
			Analysis:  100 * time.Millisecond,
		},
		Marks: TicTacToeMarks{CircleRadius: 20, CrossSize: 20},
	}
}
