package game

import (
	"fmt"

	"github.com/Ferlinnnnn/flappy-Game/internal/core"
)

// Visual characters.
const (
	playerChar   = '▶'
	obstacleChar = '█'
	floorChar    = '═'
)

// playerColumn is the screen column the player is drawn at; the world
// scrolls past it as the player's X advances.
const playerColumn = 5

// Render draws the current mode's screen into the buffer. Buttons are
// drawn by the platform layer, which owns hover and hit-testing.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.mode {
	case ModeMenu:
		g.renderMenu(dst)
	case ModePlaying:
		g.renderWorld(dst)
	case ModeEnd:
		g.renderEnd(dst)
	}
}

func (g *Game) renderWorld(dst *core.Screen) {
	fieldH := g.cfg.Field.Height

	for _, o := range g.obstacles {
		screenX := o.X - g.player.X + playerColumn
		if screenX < 0 || screenX >= dst.Width() {
			continue
		}
		gapTop := o.GapY - o.HalfSize()
		gapBottom := o.GapY + o.HalfSize()
		dst.DrawVLine(screenX, 0, gapTop, core.Cell{Rune: obstacleChar, Color: core.ColorGreen})
		dst.DrawVLine(screenX, gapBottom, fieldH-gapBottom, core.Cell{Rune: obstacleChar, Color: core.ColorGreen})
	}

	dst.SetCell(playerColumn, int(g.player.Y), core.Cell{Rune: playerChar, Color: core.ColorYellow})

	if fieldH-1 < dst.Height() {
		for x := 0; x < dst.Width(); x++ {
			dst.SetCell(x, fieldH-1, core.Cell{Rune: floorChar, Color: core.ColorGray})
		}
	}

	dst.DrawText(0, 0, "Press Space to Flap", core.ColorWhite)
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawText(0, 2, fmt.Sprintf("Audio: %s  Music: %s", onOff(g.audioEnabled), onOff(g.musicEnabled)), core.ColorGray)
}

func (g *Game) renderMenu(dst *core.Screen) {
	dst.DrawTextCentered(5, "Welcome to Flappy Dragon!", core.ColorYellow)
	dst.DrawTextCentered(7, "Click buttons or use keyboard shortcuts:", core.ColorWhite)
	dst.DrawTextCentered(8, "P - Play, Q - Quit, M - Audio, B - Music", core.ColorGray)
}

func (g *Game) renderEnd(dst *core.Screen) {
	dst.DrawTextCentered(5, "You are dead!", core.ColorRed)
	dst.DrawTextCentered(6, fmt.Sprintf("You earned %d points", g.score), core.ColorWhite)
	dst.DrawTextCentered(8, "Click buttons or use keyboard shortcuts:", core.ColorWhite)
	dst.DrawTextCentered(9, "P - Play Again, Q - Quit, M - Audio, B - Music", core.ColorGray)
}
