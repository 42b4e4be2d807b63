package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <scene>",
	Short: "Show high scores for a scene",
	Long: `Display the top 10 high scores for the specified scene.

Examples:
  arcade scores breakout`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	sceneID := args[0]

	title := ""
	for _, info := range registry.List() {
		if info.ID == sceneID {
			title = info.Title
		}
	}
	if title == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available scenes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(sceneID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", sceneID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, entry.Preset, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(sceneID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.0f\n", stats.HighScore, stats.Rounds, stats.AvgScore)
	}
}
