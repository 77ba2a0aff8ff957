package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arrows/internal/levels"
	"github.com/vovakirdan/tui-arrows/internal/storage"
	"github.com/vovakirdan/tui-arrows/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  W/A/S/D    - Move the cursor
  Arrow keys - Toggle an arrow at the cursor
  G/Enter    - Run the token
  R          - Reset the board
  Esc        - Stop a run / leave the level
  Q/Ctrl+C   - Quit

Examples:
  arrows play 01-straightaway
  arrows play 02-boulder --rate 10
  arrows play my-level --levels ./levels`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := args[0]

	level, err := levels.Find(flagLevelsDir, levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'arrows levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: results will not be saved: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunGame(level, store, flagRunRate); err != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
		os.Exit(1)
	}
}
