package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/touch-arcade/internal/platform/tui"
	"github.com/vovakirdan/touch-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, quit it to return to the menu; Tab shows the
results of the runs played in this session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Session results
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 20`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()
	history := tui.NewHistory(100)
	width, height := terminalSize()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(history, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if menuResult.Width > 0 {
			width, height = menuResult.Width, menuResult.Height
		}

		if menuResult.Quit {
			break
		}

		if menuResult.WantsResults {
			goBack, resErr := tui.RunResults(history, width, height)
			if resErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", resErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from results
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if _, err := tui.Run(game, cfg, tui.Options{
			LogLevel:     app.LogLevel,
			ConsoleLines: app.ConsoleLines,
			History:      history,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
