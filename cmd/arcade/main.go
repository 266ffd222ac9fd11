// arcade plays touch-panel games on a terminal display.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade sim <game>        - Run a game headless with random touches
//
// Global flags:
//
//	--fps <rate>          - Set redraw rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error
//	--app-config <path>   - YAML file with application settings
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/touch-arcade/internal/config"
	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/games/snake"
	"github.com/vovakirdan/touch-arcade/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagLogLevel  string
	flagAppConfig string

	// Settings resolved before every command
	app *config.AppConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Touch Arcade - Snake and Tic-Tac-Toe on a simulated touch panel",
	Long: `Touch Arcade runs small touch-panel games on a 240x320 display
simulated in your terminal. Click the display to touch it.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  sim      - Run a game headless with random touches

Settings come from --app-config (YAML) and ARCADE_* environment
variables; flags override both.

Examples:
  arcade list
  arcade play snake
  arcade play tictactoe --config ./my-tictactoe.yaml
  arcade sim snake --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagAppConfig, "app-config", "", "Path to application settings YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}

// loadSettings reads the application settings and applies explicit flags.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadApp(flagAppConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app = cfg
	return nil
}

// runtimeConfig returns the run configuration of the resolved settings.
func runtimeConfig() core.RuntimeConfig {
	return app.Runtime()
}

// setConfigPath points the game at a custom config file before it is built.
func setConfigPath(gameID, path string) {
	switch gameID {
	case "snake":
		snake.SetConfigPath(path)
	case "tictactoe":
		tictactoe.SetConfigPath(path)
	}
}
