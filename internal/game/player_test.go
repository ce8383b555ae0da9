package game

import (
	"testing"

	"github.com/Ferlinnnnn/flappy-Game/internal/config"
)

func testPhysics() config.Physics {
	return config.Default().Physics
}

func TestFlapIsNonCumulative(t *testing.T) {
	phys := testPhysics()

	tests := []struct {
		name     string
		velocity float64
	}{
		{"falling fast", 2.0},
		{"falling slow", 0.1},
		{"at rest", 0.0},
		{"already rising", -1.5},
		{"rising faster than impulse", -5.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(5, 25)
			p.Velocity = tc.velocity
			p.Flap(phys)
			if p.Velocity != phys.FlapImpulse {
				t.Errorf("Flap() velocity = %v, expected %v regardless of prior velocity", p.Velocity, phys.FlapImpulse)
			}
		})
	}
}

func TestGravityAccumulatesAndCaps(t *testing.T) {
	phys := testPhysics()
	p := NewPlayer(5, 25)

	p.GravityAndMove(phys)
	if p.Velocity != phys.Gravity {
		t.Errorf("first step velocity = %v, expected %v", p.Velocity, phys.Gravity)
	}

	// Fall long enough to reach terminal velocity.
	for i := 0; i < 100; i++ {
		p.GravityAndMove(phys)
	}
	if p.Velocity != phys.MaxFallSpeed {
		t.Errorf("velocity = %v, expected capped at %v", p.Velocity, phys.MaxFallSpeed)
	}
}

func TestGravityAndMoveAdvancesPosition(t *testing.T) {
	phys := testPhysics()
	p := NewPlayer(5, 25)
	p.Velocity = 1.0

	p.GravityAndMove(phys)

	if p.X != 6 {
		t.Errorf("X = %d, expected 6 (one column per step)", p.X)
	}
	want := 25.0 + 1.0 + phys.Gravity
	if p.Y != want {
		t.Errorf("Y = %v, expected %v", p.Y, want)
	}
}

func TestPlayerCannotLeaveFieldTop(t *testing.T) {
	phys := testPhysics()
	p := NewPlayer(5, 0)
	p.Velocity = phys.FlapImpulse

	p.GravityAndMove(phys)

	if p.Y < 0 {
		t.Errorf("Y = %v, expected clamped at the top of the field", p.Y)
	}
}
