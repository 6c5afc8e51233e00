package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/launchland/internal/core"
)

// BoostHoldFrames is how long a single space press keeps the boost on.
// Terminals report key repeats but never key releases.
const BoostHoldFrames = 12

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Boost      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Boost, k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Boost, k.Pause, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Boost: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "boost gravity"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
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

// MapKey translates a key message to a simulation key.
// Screenshot and help are frontend-only and map to KeyNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyQuit
	case key.Matches(msg, k.Boost):
		return core.KeyBoost
	case key.Matches(msg, k.Pause):
		return core.KeyPause
	case key.Matches(msg, k.Restart):
		return core.KeyRestart
	}
	return core.KeyNone
}

// pointerMsg is a mouse event translated to screen space.
type pointerMsg struct {
	x, y    float64
	pressed bool
	ok      bool
}

// mapMouse translates a mouse event to a pointer update. Only the left
// button drives the pointer; the position is the center of the cell.
func mapMouse(msg tea.MouseMsg) pointerMsg {
	p := pointerMsg{
		x: float64(msg.X) + 0.5,
		y: float64(msg.Y) + 0.5,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return p
		}
		p.pressed, p.ok = true, true
	case tea.MouseActionMotion:
		// Cell motion mode reports motion only while a button is held
		if msg.Button != tea.MouseButtonLeft {
			return p
		}
		p.pressed, p.ok = true, true
	case tea.MouseActionRelease:
		p.pressed, p.ok = false, true
	}
	return p
}
