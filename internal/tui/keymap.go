package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-arrows/internal/engine"
)

// GameKeyMap defines the key bindings for the board editor. The cursor
// moves on wasd so the arrow keys stay free for placing arrows.
type GameKeyMap struct {
	CursorUp    key.Binding
	CursorLeft  key.Binding
	CursorDown  key.Binding
	CursorRight key.Binding
	ArrowUp     key.Binding
	ArrowLeft   key.Binding
	ArrowDown   key.Binding
	ArrowRight  key.Binding
	Go          key.Binding
	Reset       key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CursorUp, k.ArrowUp, k.Go, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CursorUp, k.CursorLeft, k.CursorDown, k.CursorRight},
		{k.ArrowUp, k.ArrowLeft, k.ArrowDown, k.ArrowRight},
		{k.Go, k.Reset, k.Cancel, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		CursorUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("wasd", "move cursor"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "cursor left"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cursor down"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "cursor right"),
		),
		ArrowUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("←↑↓→", "toggle arrow"),
		),
		ArrowLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "arrow left"),
		),
		ArrowDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "arrow down"),
		),
		ArrowRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "arrow right"),
		),
		Go: key.NewBinding(
			key.WithKeys("g", "enter"),
			key.WithHelp("g", "run"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop run"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// cursorDir maps a cursor-movement binding to its board direction, or
// false for keys that do not move the cursor.
func (k GameKeyMap) cursorDir(keyName string) (engine.Dir, bool) {
	switch keyName {
	case "w":
		return engine.Up, true
	case "a":
		return engine.Left, true
	case "s":
		return engine.Down, true
	case "d":
		return engine.Right, true
	}
	return 0, false
}

// arrowDir maps an arrow-key binding to the direction it toggles, or
// false for keys that do not place arrows.
func (k GameKeyMap) arrowDir(keyName string) (engine.Dir, bool) {
	switch keyName {
	case "up":
		return engine.Up, true
	case "left":
		return engine.Left, true
	case "down":
		return engine.Down, true
	case "right":
		return engine.Right, true
	}
	return 0, false
}
