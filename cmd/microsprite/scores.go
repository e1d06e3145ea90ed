package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microsprite/internal/registry"
	"github.com/vovakirdan/microsprite/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <app>",
	Short: "Show high scores for an app",
	Long: `Display the top 10 high scores for the specified app.

Examples:
  microsprite scores beans
  microsprite scores bounce`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	appID := args[0]

	// Check if app exists
	if !registry.Exists(appID) {
		fmt.Fprintf(os.Stderr, "Error: unknown app %q\n", appID)
		fmt.Fprintln(os.Stderr, "Run 'microsprite list' to see available apps.")
		os.Exit(1)
	}

	// Get app title
	app, err := registry.Create(appID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating app: %v\n", err)
		os.Exit(1)
	}
	title := app.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(appID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'microsprite play %s' to set the first high score!\n", appID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(appID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
