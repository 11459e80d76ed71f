package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okhmat/birb/internal/game"
)

// KeyMap holds the game key bindings. Centralizing them here keeps the
// mapping testable and the help line in one place.
type KeyMap struct {
	Flap    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Event translates a key message to a game event. The second result is
// false for unbound keys and for quit, which is not a game event.
func (k KeyMap) Event(msg tea.KeyMsg) (game.Event, bool) {
	switch {
	case key.Matches(msg, k.Flap):
		return game.EventFlap, true
	case key.Matches(msg, k.Pause):
		return game.EventPauseToggle, true
	case key.Matches(msg, k.Restart):
		return game.EventRestart, true
	default:
		return 0, false
	}
}

// IsQuit reports whether the key message requests leaving the game.
func (k KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}
