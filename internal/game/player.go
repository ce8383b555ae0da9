package game

import (
	"github.com/Ferlinnnnn/flappy-Game/internal/config"
	"github.com/Ferlinnnnn/flappy-Game/internal/core"
)

// Player is the controllable entity. X is the world scroll coordinate
// and only ever increases; Y grows downward and is unbounded above the
// field (falling past the field height ends the game).
type Player struct {
	X        int
	Y        float64
	Velocity float64
}

// NewPlayer creates a player at the given world position with zero velocity.
func NewPlayer(x, y int) Player {
	return Player{X: x, Y: float64(y)}
}

// GravityAndMove applies one physics step: velocity grows by gravity up
// to the terminal fall speed, position follows velocity, and the world
// scrolls forward by one column. Callers gate this behind the
// frame-time accumulator; it is not invoked every tick.
func (p *Player) GravityAndMove(phys config.Physics) {
	p.Velocity += phys.Gravity
	if p.Velocity > phys.MaxFallSpeed {
		p.Velocity = phys.MaxFallSpeed
	}
	p.Y += p.Velocity
	p.X++
	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap sets the velocity to the fixed upward impulse. It replaces the
// current velocity rather than adding to it, so mashing flap does not
// accumulate, and it is independent of the frame-time accumulator.
func (p *Player) Flap(phys config.Physics) {
	p.Velocity = phys.FlapImpulse
}

// Rect returns the player's one-cell collision box in world coordinates.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, int(p.Y), 1, 1)
}
