// arrows is a terminal routing puzzle: place direction arrows on a grid
// and guide a token from the start to the goal.
//
// Usage:
//
//	arrows levels            - List available levels
//	arrows play <level>      - Play a level
//	arrows menu              - Pick a level interactively
//	arrows serve             - Start SSH server for remote play
//	arrows scores <level>    - Show recorded routes for a level
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.arrows/scores.db)
//	--levels <dir>   - Load extra level files from a directory
//	--rate <n>       - Run animation speed in moves per second (default: 5)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath    string
	flagLevelsDir string
	flagRunRate   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arrows",
	Short: "Arrows - a terminal routing puzzle",
	Long: `Arrows is a terminal puzzle where you place direction arrows on a
grid to route a token from the start to the goal. Cells can hold two
arrows; which one is followed toggles every time the token departs.

Available commands:
  levels   - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View recorded routes

Examples:
  arrows levels
  arrows play 02-boulder
  arrows menu
  arrows serve --ssh :2222
  arrows scores 02-boulder`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arrows/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().IntVar(&flagRunRate, "rate", 5, "Run animation speed (moves per second)")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
