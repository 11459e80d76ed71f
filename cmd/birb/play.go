package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhmat/birb/internal/game"
	"github.com/okhmat/birb/internal/platform/tui"
	"github.com/okhmat/birb/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start an interactive run.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Examples:
  birb play
  birb play --seed 12345
  birb play --schedule ./my-level.csv
  birb play --config ./my-birb.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, specs, seed, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	session := game.NewSession(cfg, specs, seed)
	runErr := tui.Run(session, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
