// Package engine provides the core logic for the arrows routing puzzle.
// It models the board grid, the per-cell direction queues the player edits,
// and the deterministic token walk those queues drive.
// This package is UI-agnostic and deterministic.
package engine

// Dir represents an outgoing arrow direction from a cell.
type Dir uint8

const (
	Up Dir = iota
	Left
	Down
	Right
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for moving one step in this direction.
// Up decreases the row, Down increases it (screen coordinates).
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case Up:
		return Down
	case Left:
		return Right
	case Down:
		return Up
	case Right:
		return Left
	default:
		return d
	}
}

// Dirs lists all four directions in a fixed order.
func Dirs() [4]Dir {
	return [4]Dir{Up, Left, Down, Right}
}

// ParseDir converts a single-letter code (U, L, D, R) to a direction.
func ParseDir(r rune) (Dir, bool) {
	switch r {
	case 'U', 'u':
		return Up, true
	case 'L', 'l':
		return Left, true
	case 'D', 'd':
		return Down, true
	case 'R', 'r':
		return Right, true
	default:
		return Up, false
	}
}
