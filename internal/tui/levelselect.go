package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arrows/internal/levels"
)

var (
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels     []levels.Level
	cursor     int
	width      int
	height     int
	quitting   bool
	selected   *levels.Level // Set when the player picks a level
	openScores bool          // True if the player asked for the scoreboard
}

// NewMenuModel creates a level picker over the given levels.
func NewMenuModel(lvls []levels.Level, width, height int) MenuModel {
	return MenuModel{
		levels: lvls,
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k", "w":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j", "s":
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.levels) > 0 {
			selected := m.levels[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the level
		}

	case "tab":
		m.openScores = true
		return m, tea.Quit // Exit menu to show the scoreboard
	}

	return m, nil
}

// View renders the level list.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ARROWS"))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		line := fmt.Sprintf("%s  %dx%d, %d arrows", lvl.Name, lvl.Rows(), lvl.Cols(), lvl.Arrows)
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render("▸ " + line))
		} else {
			b.WriteString(menuItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render("enter play · tab scores · q quit"))
	return b.String()
}
