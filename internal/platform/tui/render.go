package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ferlinnnnn/flappy-Game/internal/core"
	"github.com/Ferlinnnnn/flappy-Game/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to keep the ANSI
// escape count down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawButtons draws the button set onto the screen, highlighting the
// hovered one. Buttons go on top of whatever the game already rendered.
func DrawButtons(s *core.Screen, buttons []game.Button, hovered core.Action) {
	for _, b := range buttons {
		color := core.ColorWhite
		if hovered != core.ActionNone && b.Action == hovered {
			color = core.ColorYellow
		}

		s.DrawBox(b.Bounds, color)

		labelX := b.Bounds.X + (b.Bounds.W-len(b.Label))/2
		labelY := b.Bounds.Y + b.Bounds.H/2
		s.DrawText(labelX, labelY, b.Label, color)
	}
}
