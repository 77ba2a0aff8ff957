package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrOutOfBounds reports a position outside the grid. It signals a
	// caller bug: the shell is expected to check Contains first.
	ErrOutOfBounds = errors.New("engine: position out of bounds")

	// ErrMissingStart reports a grid with no start cell.
	ErrMissingStart = errors.New("engine: grid has no start cell")
)

// Position identifies a cell by row and column.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(d Dir) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Landmark is a set of tags attached to a cell.
type Landmark uint8

const (
	Start Landmark = 1 << iota
	Goal
	Obstacle
)

// Has returns true if the landmark set contains all tags in l.
func (m Landmark) Has(l Landmark) bool {
	return m&l == l
}

// Grid is the immutable board layout: dimensions plus per-cell landmarks.
// Cells are stored in row-major order.
type Grid struct {
	rows  int
	cols  int
	cells []Landmark
	start Position
}

// NewGrid builds a grid from per-cell landmark rows. The input must be a
// non-empty rectangle containing a start cell; the first start found (in
// row-major order) becomes the token's origin.
func NewGrid(cells [][]Landmark) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.New("engine: grid must have at least one cell")
	}
	rows := len(cells)
	cols := len(cells[0])

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Landmark, rows*cols),
		start: Position{Row: -1, Col: -1},
	}

	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("engine: row %d has %d cells, want %d", r, len(row), cols)
		}
		for c, m := range row {
			g.cells[r*cols+c] = m
			if m.Has(Start) && g.start.Row < 0 {
				g.start = Position{Row: r, Col: c}
			}
		}
	}

	if g.start.Row < 0 {
		return nil, ErrMissingStart
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Contains returns true if the position is within the grid.
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the landmark set of the cell at p.
// Fails with ErrOutOfBounds if p is outside the grid.
func (g *Grid) At(p Position) (Landmark, error) {
	if !g.Contains(p) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return g.cells[p.Row*g.cols+p.Col], nil
}

// landmarkAt is the unchecked lookup for positions already known valid.
func (g *Grid) landmarkAt(p Position) Landmark {
	return g.cells[p.Row*g.cols+p.Col]
}

// Start returns the position of the start cell.
func (g *Grid) Start() Position {
	return g.start
}
