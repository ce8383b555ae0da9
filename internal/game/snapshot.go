package game

// Snapshot captures the simulation state for determinism tests.
type Snapshot struct {
	Mode      Mode
	Score     int
	PlayerX   int
	PlayerY   float64
	Velocity  float64
	Obstacles []Obstacle
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		Mode:      g.mode,
		Score:     g.score,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		Velocity:  g.player.Velocity,
		Obstacles: obstacles,
	}
}
