package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arrows/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the builtin levels plus any loaded with --levels.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	lvls, err := levels.All(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %-7s  %s\n", maxIDLen, "ID", "Name", "Board", "Arrows")
	fmt.Printf("  %-*s  %-20s  %-7s  %s\n", maxIDLen, "--", "----", "-----", "------")

	for _, l := range lvls {
		board := fmt.Sprintf("%dx%d", l.Rows(), l.Cols())
		fmt.Printf("  %-*s  %-20s  %-7s  %d\n", maxIDLen, l.ID, l.Name, board, l.Arrows)
	}

	fmt.Println()
	fmt.Println("Run 'arrows play <id>' to play a level.")
}
