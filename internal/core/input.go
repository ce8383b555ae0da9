package core

// Action is a semantic game action, abstracted from physical key
// presses and button clicks. The platform maps keys and mouse clicks to
// actions; the game consumes actions without knowing their source.
type Action int

const (
	ActionNone        Action = iota
	ActionFlap               // Space - flap upward while playing
	ActionStart              // P or Play button - start from the menu
	ActionRestart            // P or Play Again button - restart after game over
	ActionToggleAudio        // M - flip sound effects on/off
	ActionToggleMusic        // B - flip background music on/off
	ActionQuit               // Q, Ctrl+C or Quit button - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionToggleAudio:
		return "ToggleAudio"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
