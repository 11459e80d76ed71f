package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/okhmat/birb/internal/game"
)

var (
	flagTicks     int
	flagFlapEvery int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted game",
	Long: `Fold a scripted event sequence through the game core without a
terminal: a fixed number of clock ticks with a flap every N ticks. With a
fixed --seed the outcome is fully reproducible, which makes this useful
for schedule tuning and regression checks.

Examples:
  birb simulate --ticks 2000 --flap-every 15
  birb simulate --seed 42 --schedule ./my-level.csv`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum clock ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 15, "Flap once every N ticks (0 = never)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "birb-sim"})

	cfg, specs, seed, err := loadSetup()
	if err != nil {
		logger.Fatal("setup failed", "error", err)
	}

	logger.Info("starting run", "pipes", len(specs), "seed", seed,
		"ticks", flagTicks, "flap_every", flagFlapEvery)

	session := game.NewSession(cfg, specs, seed)

	events := make(chan game.Event)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	states := session.Run(ctx, events)

	go func() {
		defer close(events)
		for i := 1; i <= flagTicks; i++ {
			if flagFlapEvery > 0 && i%flagFlapEvery == 0 {
				events <- game.EventFlap
			}
			events <- game.EventTick
		}
	}()

	var last game.State
	for st := range states {
		last = st
		if st.Terminal() {
			cancel()
			break
		}
	}

	outcome := "ran out of ticks"
	switch {
	case last.Won:
		outcome = "win"
	case last.GameOver:
		outcome = "game over"
	}

	logger.Info("run finished",
		"outcome", outcome,
		"score", last.Score,
		"lives", last.Lives,
		"elapsed_ms", last.ElapsedMS,
		"samples", last.Path.Len(),
	)
}
