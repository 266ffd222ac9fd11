package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/platform/tui"
	"github.com/vovakirdan/touch-arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse click   - Touch the display
  Arrows/WASD   - Steer (snake)
  1-9           - Mark a cell, laid out like a keypad (tic-tac-toe)
  R             - Restart (after the run ends)
  Q/Ctrl+C      - Quit

Examples:
  arcade play snake
  arcade play tictactoe
  arcade play snake --seed 42 --log-level debug
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()
	warnIfSmall(cfg)
	setConfigPath(gameID, flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	verdict, err := tui.Run(game, cfg, tui.Options{
		LogLevel:     app.LogLevel,
		ConsoleLines: app.ConsoleLines,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	if verdict.Terminal() {
		fmt.Printf("%s: %s (%s)\n", game.Title(), verdict.Message, verdict.Outcome)
	}
}

// warnIfSmall reports a terminal that cannot show the whole display.
func warnIfSmall(cfg core.RuntimeConfig) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	needW, needH := cfg.Cols()*2+2, cfg.Rows()+4
	if w < needW || h < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the display needs %dx%d\n", w, h, needW, needH)
	}
}

// terminalSize returns the terminal size, or 80x24 when it is unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
