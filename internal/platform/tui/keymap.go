package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the key bindings the game reacts to.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Close key.Binding
}

// DefaultKeyMap returns the arrow key bindings plus ctrl+c to close.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right, k.Close}}
}

// MapKey translates a key message into a game event. Keys without a
// binding become KeyOther, which the game ignores.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.Close):
		return core.CloseEvent{}
	case key.Matches(msg, k.Up):
		return core.KeyEvent{Key: core.KeyUp}
	case key.Matches(msg, k.Down):
		return core.KeyEvent{Key: core.KeyDown}
	case key.Matches(msg, k.Left):
		return core.KeyEvent{Key: core.KeyLeft}
	case key.Matches(msg, k.Right):
		return core.KeyEvent{Key: core.KeyRight}
	}
	return core.KeyEvent{Key: core.KeyOther}
}

// MapMouse translates a mouse message into a pointer event. Only motion and
// left button presses matter; everything else returns nil.
func MapMouse(msg tea.MouseMsg) core.Event {
	switch {
	case msg.Action == tea.MouseActionMotion:
		return core.PointerMoveEvent{X: msg.X, Y: msg.Y}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return core.PointerDownEvent{X: msg.X, Y: msg.Y}
	}
	return nil
}

// HelpLines renders the key map as plain text lines for the sidebar.
func HelpLines(k KeyMap) []string {
	h := help.New()
	h.Styles = help.Styles{}
	view := h.FullHelpView(k.FullHelp())

	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
