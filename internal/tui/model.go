package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arrows/internal/engine"
	"github.com/vovakirdan/tui-arrows/internal/levels"
	"github.com/vovakirdan/tui-arrows/internal/storage"
)

// DefaultRunRate is how many moves per second a run animates at.
const DefaultRunRate = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	outcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GameModel is the Bubble Tea model for playing one level: moving the
// cursor, toggling arrows, and animating runs.
type GameModel struct {
	level       levels.Level
	session     *engine.Session
	store       *storage.Store
	keys        GameKeyMap
	help        help.Model
	cursor      engine.Position
	running     bool
	runRate     int
	forecast    engine.Moves // Evaluate() of the current routing
	outcome     string       // Message from the last finished run
	runFailed   bool
	resultSaved bool
	width       int
	height      int
	quitting    bool
	goingBack   bool
}

// NewGameModel creates a model for the given level.
func NewGameModel(level levels.Level, store *storage.Store, runRate int) (GameModel, error) {
	session, err := level.NewSession()
	if err != nil {
		return GameModel{}, err
	}
	if runRate <= 0 {
		runRate = DefaultRunRate
	}

	h := help.New()
	h.ShowAll = false

	return GameModel{
		level:    level,
		session:  session,
		store:    store,
		keys:     DefaultGameKeyMap(),
		help:     h,
		cursor:   session.Grid().Start(),
		runRate:  runRate,
		forecast: session.Evaluate(),
	}, nil
}

// Init initializes the model. Edit mode does not tick.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.running {
			m.session.EndRun()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// A run owns the board until it ends; only cancel gets through.
	if m.running {
		if key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Go) {
			m.session.EndRun()
			m.running = false
			m.outcome = "run stopped"
			m.runFailed = true
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Go):
		m.session.BeginRun()
		m.running = true
		m.resultSaved = false
		m.outcome = ""
		return m, tickCmd(m.runRate)

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
		m.forecast = m.session.Evaluate()
		m.outcome = ""
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.goingBack = true
		return m, tea.Quit
	}

	if d, ok := m.keys.cursorDir(msg.String()); ok {
		next := m.cursor.Step(d)
		if m.session.Grid().Contains(next) {
			m.cursor = next
		}
		return m, nil
	}

	if d, ok := m.keys.arrowDir(msg.String()); ok {
		m.session.ToggleEdit(m.cursor, d)
		m.forecast = m.session.Evaluate()
		return m, nil
	}

	return m, nil
}

// handleTick advances an animating run by one move.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.running {
		return m, nil
	}

	if _, going := m.session.AdvanceRun(); going {
		return m, tickCmd(m.runRate)
	}

	if m.session.RunAtGoal() {
		moves := m.session.RunMoves()
		m.outcome = fmt.Sprintf("reached the goal in %d moves", moves)
		m.runFailed = false
		if m.store != nil && !m.resultSaved {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveResult(m.level.ID, moves)
			m.resultSaved = true
		}
	} else {
		m.outcome = "the token dead-ended"
		m.runFailed = true
	}

	m.session.EndRun()
	m.running = false
	return m, nil
}

// View renders the board, the HUD, and the help bar.
func (m GameModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  [%s]", m.level.Name, m.level.ID)))
	b.WriteString("\n")

	var token *engine.Position
	if m.running {
		pos := m.session.RunPosition()
		token = &pos
	}
	b.WriteString(RenderBoard(m.session, m.cursor, token))
	b.WriteString("\n")

	if m.running {
		b.WriteString(hudStyle.Render(fmt.Sprintf("moves: %d", m.session.RunMoves())))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc to stop the run"))
		return b.String()
	}

	b.WriteString(hudStyle.Render(fmt.Sprintf(
		"moves: %s    arrows: %d (%d used)",
		m.forecast, m.session.RemainingArrows(), m.session.UsedArrows(),
	)))
	b.WriteString("\n")

	if m.outcome != "" {
		style := outcomeStyle
		if m.runFailed {
			style = failStyle
		}
		b.WriteString(style.Render(m.outcome))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunGame starts the Bubble Tea program for one level and blocks until
// the player quits.
func RunGame(level levels.Level, store *storage.Store, runRate int) error {
	model, err := NewGameModel(level, store, runRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
