package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ferlinnnnn/flappy-Game/internal/core"
)

// KeyMap holds the key bindings. Declared with bubbles/key so each
// binding carries its help text.
type KeyMap struct {
	Flap        key.Binding
	Start       key.Binding
	Restart     key.Binding
	ToggleAudio key.Binding
	ToggleMusic key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "play"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		ToggleAudio: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "audio on/off"),
		),
		ToggleMusic: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "music on/off"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey updates an input frame from a key message. Returns true when
// the key was a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Flap):
		frame.Set(core.ActionFlap)
	case key.Matches(msg, k.Start):
		frame.Set(core.ActionStart)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	case key.Matches(msg, k.ToggleAudio):
		frame.Set(core.ActionToggleAudio)
	case key.Matches(msg, k.ToggleMusic):
		frame.Set(core.ActionToggleMusic)
	}
	return false
}
