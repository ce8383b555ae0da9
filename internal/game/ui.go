package game

import (
	"fmt"

	"github.com/Ferlinnnnn/flappy-Game/internal/core"
)

// Button describes a clickable UI element: where it sits, what it says
// and which logical action it triggers. The platform layer owns
// rendering, hover and hit-testing; the game only defines the set.
type Button struct {
	Bounds core.Rect
	Label  string
	Action core.Action
}

// Button layout shared by the menu and end screens.
const (
	buttonX      = 30
	buttonWidth  = 20
	buttonHeight = 3
	buttonPitch  = 5
)

// Buttons returns the button set for the given mode and audio flags.
// It is a pure function: the set is recomputed on demand instead of
// mutated in place, so toggling a flag can never leave a stale label.
func Buttons(mode Mode, audioEnabled, musicEnabled bool) []Button {
	audioLabel := fmt.Sprintf("Audio: %s", onOff(audioEnabled))
	musicLabel := fmt.Sprintf("Music: %s", onOff(musicEnabled))

	switch mode {
	case ModeMenu:
		return []Button{
			{Bounds: buttonBounds(15), Label: "Play Game", Action: core.ActionStart},
			{Bounds: buttonBounds(20), Label: "Quit Game", Action: core.ActionQuit},
			{Bounds: buttonBounds(25), Label: audioLabel, Action: core.ActionToggleAudio},
			{Bounds: buttonBounds(30), Label: musicLabel, Action: core.ActionToggleMusic},
		}
	case ModeEnd:
		return []Button{
			{Bounds: buttonBounds(20), Label: "Play Again", Action: core.ActionRestart},
			{Bounds: buttonBounds(25), Label: "Quit Game", Action: core.ActionQuit},
			{Bounds: buttonBounds(30), Label: audioLabel, Action: core.ActionToggleAudio},
			{Bounds: buttonBounds(35), Label: musicLabel, Action: core.ActionToggleMusic},
		}
	default:
		return nil
	}
}

// HitTest returns the action of the button containing (x, y), or
// ActionNone when the point misses every button.
func HitTest(buttons []Button, x, y int) core.Action {
	for _, b := range buttons {
		if b.Bounds.Contains(x, y) {
			return b.Action
		}
	}
	return core.ActionNone
}

func buttonBounds(y int) core.Rect {
	return core.NewRect(buttonX, y, buttonWidth, buttonHeight)
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
