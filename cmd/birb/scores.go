package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okhmat/birb/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history leaderboard",
	Long: `Display the top 10 recorded runs, best score first.

Examples:
  birb scores
  birb scores --db ./runs.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'birb play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-9s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-9s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range runs {
		result := "loss"
		if entry.Won {
			result = "win"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-8s  %7.1fs  %s\n",
			i+1, entry.Score, result, float64(entry.DurationMS)/1000, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d", best)
		if wins, err := store.WinCount(); err == nil && wins > 0 {
			fmt.Printf("  |  Wins: %d", wins)
		}
		fmt.Println()
	}
}
