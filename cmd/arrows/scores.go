package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arrows/internal/levels"
	"github.com/vovakirdan/tui-arrows/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show recorded routes for a level",
	Long: `Display the top 10 routes for the specified level. Longer routes
rank higher.

Examples:
  arrows scores 02-boulder
  arrows scores 99-sandbox`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	level, err := levels.Find(flagLevelsDir, levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'arrows levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Longest Routes - %s\n", level.Name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No routes recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arrows play %s' to record the first one!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Moves, dateStr)
	}

	fmt.Println()
	best, err := store.BestMoves(levelID)
	if err == nil {
		fmt.Printf("Best: %d moves\n", best)
	}
}
