package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/touch-arcade/internal/core"
	"github.com/vovakirdan/touch-arcade/internal/engine"
	"github.com/vovakirdan/touch-arcade/internal/logging"
	"github.com/vovakirdan/touch-arcade/internal/registry"
)

var (
	flagSimConfig  string
	flagSimTimeout time.Duration
	flagSimChance  float64
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with random touches",
	Long: `Run a game without a terminal UI. A simulated panel touches random
positions; the verdict and the final frame are printed when the run
ends or the timeout expires. Runs with the same --seed make the same
first moves, but task timing still decides the interleaving.

Examples:
  arcade sim snake --seed 42
  arcade sim tictactoe --chance 0.5 --log-level debug
  arcade sim snake --timeout 10s`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().DurationVar(&flagSimTimeout, "timeout", 30*time.Second, "Abort the run after this long")
	simCmd.Flags().Float64Var(&flagSimChance, "chance", 0.2, "Probability that a panel sample is a touch")
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if flagSimChance < 0 || flagSimChance > 1 {
		return fmt.Errorf("chance %v outside [0, 1]", flagSimChance)
	}

	setConfigPath(gameID, flagSimConfig)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := logging.New(os.Stderr, app.LogLevel, gameID)
	logger.Info("simulating", "seed", cfg.Seed, "timeout", flagSimTimeout)

	fb := core.NewFrameBuffer(cfg.DisplayW, cfg.DisplayH, cfg.Scale)
	clock := engine.NewSystemClock()
	env := engine.Env{
		Config:  cfg,
		Painter: fb,
		Touch:   engine.NewRandomTouch(cfg.Seed, cfg.DisplayW, cfg.DisplayH, flagSimChance),
		Clock:   clock,
		Logger:  logger,
	}

	prog, err := game.Build(env)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagSimTimeout)
	defer cancel()

	start := time.Now()
	verdict := engine.NewScheduler(clock, logger).Run(ctx, prog)

	fmt.Println(fb.Snapshot().String())
	fmt.Printf("%s: %s (%s) after %s\n", game.Title(), verdict.Message, verdict.Outcome,
		time.Since(start).Round(time.Millisecond))
	return nil
}
