// birb is a terminal avoider game: a bird falls under gravity, you flap it
// through gaps in scrolling pipes, collisions cost lives, and the previous
// run's trajectory haunts the next one as a ghost.
//
// Usage:
//
//	birb play                - Play in the current terminal
//	birb simulate            - Run a headless scripted game
//	birb scores              - Show the run history leaderboard
//	birb serve               - Start an SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - PRNG seed for reproducible runs (0 = time-based)
//	--db <path>         - Runs database path (default: ~/.birb/runs.db)
//	--config <path>     - Custom game config YAML
//	--schedule <path>   - Custom pipe schedule CSV
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okhmat/birb/internal/config"
	"github.com/okhmat/birb/internal/game"
	"github.com/okhmat/birb/internal/schedule"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSchedule string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birb",
	Short: "birb - flap a bird through scrolling pipes in your terminal",
	Long: `birb is a terminal side-scrolling avoider. Gravity pulls the bird
down, flapping pushes it up, and a scripted schedule of pipes scrolls in
from the right. Hitting a pipe or the canvas bounds costs a life and
bounces the bird; passing pipes scores points. Reach the win score before
running out of lives. Your previous run replays as a ghost.

Examples:
  birb play
  birb play --schedule ./my-level.csv
  birb simulate --ticks 2000 --flap-every 15
  birb scores
  birb serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "PRNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.birb/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSchedule, "schedule", "", "Path to custom pipe schedule CSV")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSetup resolves the game config, schedule, and seed from the global
// flags, shared by the play and simulate commands.
func loadSetup() (game.Config, []game.PipeSpec, uint32, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return game.Config{}, nil, 0, err
	}

	specs := schedule.Default()
	if flagSchedule != "" {
		specs, err = schedule.Load(flagSchedule)
		if err != nil {
			return game.Config{}, nil, 0, err
		}
	}

	seed := uint32(flagSeed)
	if flagSeed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	return cfg.Game(), specs, seed, nil
}
