package game

// Evaluation is the outcome of testing the player against the obstacle
// set for one tick.
type Evaluation struct {
	// Hit is true when the player intersects any obstacle's solid region.
	Hit bool
	// PassedIndex is the index of the obstacle the player's X has moved
	// beyond, to be regenerated further ahead. -1 when none. When more
	// than one obstacle qualifies the highest index wins; the obstacle
	// spacing makes that case unreachable in normal play.
	PassedIndex int
}

// Evaluate tests the player against every obstacle. It is pure: the
// player and obstacle snapshots are not modified.
func Evaluate(p Player, obstacles []Obstacle, fieldHeight int) Evaluation {
	ev := Evaluation{PassedIndex: -1}
	rect := p.Rect()

	for i, o := range obstacles {
		if p.X > o.X {
			ev.PassedIndex = i
		}
		if rect.Intersects(o.TopRect()) || rect.Intersects(o.BottomRect(fieldHeight)) {
			ev.Hit = true
		}
	}

	return ev
}
