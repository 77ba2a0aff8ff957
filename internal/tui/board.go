package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arrows/internal/engine"
)

// Board rendering styles. The active arrow of a two-arrow cell is the
// one the token will follow next, so it gets the loud color.
var (
	activeArrowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	inactiveArrowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	startStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	goalStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	obstacleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	tokenStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

	cellBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	cursorBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("13"))
)

var arrowGlyphs = map[engine.Dir]string{
	engine.Up:    "▲",
	engine.Left:  "◀",
	engine.Down:  "▼",
	engine.Right: "▶",
}

// RenderBoard draws the whole board: one bordered box per cell, arrows on
// the edges they point across, landmarks and the token in the center.
// token is nil while no run is animating. The cursor cell gets a thick
// highlighted border.
func RenderBoard(s *engine.Session, cursor engine.Position, token *engine.Position) string {
	g := s.Grid()

	rows := make([]string, 0, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		cells := make([]string, 0, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			cells = append(cells, renderCell(s, engine.P(r, c), cursor, token))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCell draws a single cell as three content lines inside a border:
//
//	  ▲
//	◀ ◆ ▶
//	  ▼
func renderCell(s *engine.Session, p, cursor engine.Position, token *engine.Position) string {
	queue := s.QueueAt(p)

	arrow := func(d engine.Dir) string {
		for i, qd := range queue {
			if qd != d {
				continue
			}
			if i == 0 {
				return activeArrowStyle.Render(arrowGlyphs[d])
			}
			return inactiveArrowStyle.Render(arrowGlyphs[d])
		}
		return " "
	}

	top := "  " + arrow(engine.Up) + "  "
	mid := arrow(engine.Left) + " " + centerGlyph(s, p, token) + " " + arrow(engine.Right)
	bottom := "  " + arrow(engine.Down) + "  "
	content := top + "\n" + mid + "\n" + bottom

	if p == cursor {
		return cursorBorderStyle.Render(content)
	}
	return cellBorderStyle.Render(content)
}

// centerGlyph picks the cell's middle character: the token when it sits
// here, otherwise the landmark.
func centerGlyph(s *engine.Session, p engine.Position, token *engine.Position) string {
	if token != nil && *token == p {
		return tokenStyle.Render("◆")
	}

	lm, err := s.Grid().At(p)
	if err != nil {
		return " "
	}
	switch {
	case lm.Has(engine.Obstacle):
		return obstacleStyle.Render("█")
	case lm.Has(engine.Start) && lm.Has(engine.Goal):
		return goalStyle.Render("◎")
	case lm.Has(engine.Start):
		return startStyle.Render("S")
	case lm.Has(engine.Goal):
		return goalStyle.Render("▞")
	}
	return " "
}
