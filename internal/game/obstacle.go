package game

import (
	"math/rand"

	"github.com/Ferlinnnnn/flappy-Game/internal/config"
	"github.com/Ferlinnnnn/flappy-Game/internal/core"
)

// ObstacleWidth is the horizontal extent of an obstacle's solid slab.
const ObstacleWidth = 1

// Obstacle is a vertical wall with a passable gap. X is its world
// position, GapY the gap center and Size the gap height.
type Obstacle struct {
	X    int
	GapY int
	Size int
}

// HalfSize returns half the gap height, rounded down.
func (o Obstacle) HalfSize() int {
	return o.Size / 2
}

// TopRect returns the solid region above the gap in world coordinates.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, ObstacleWidth, o.GapY-o.HalfSize())
}

// BottomRect returns the solid region below the gap in world coordinates.
func (o Obstacle) BottomRect(fieldHeight int) core.Rect {
	bottom := o.GapY + o.HalfSize()
	return core.NewRect(o.X, bottom, ObstacleWidth, fieldHeight-bottom)
}

// Generator produces obstacles with score-scaled gap sizes and
// history-constrained gap placement. The single remembered gap center
// keeps consecutive obstacles within a playable vertical distance.
type Generator struct {
	rng         *rand.Rand
	fieldHeight int
	cfg         config.Obstacles

	lastGapY int
	hasLast  bool
}

// NewGenerator creates a generator drawing randomness from the given
// seeded source. Injecting the source keeps generation reproducible.
func NewGenerator(cfg config.Obstacles, fieldHeight int, rng *rand.Rand) *Generator {
	return &Generator{
		rng:         rng,
		fieldHeight: fieldHeight,
		cfg:         cfg,
	}
}

// Reset forgets the gap history. The next generated obstacle is
// unconstrained within the valid bounds.
func (g *Generator) Reset() {
	g.hasLast = false
}

// GapSize returns the gap height for the given score: the gap shrinks
// by one per point, floored at the minimum playable size.
func (g *Generator) GapSize(score int) int {
	return core.Max(g.cfg.MinGap, g.cfg.BaseGap-score)
}

// Generate creates an obstacle at world position x for the current
// score and records its gap center as the new history.
//
// The gap center is drawn uniformly from the valid range
// [half+margin, fieldHeight-half-margin]. With history present the
// range is further clamped to within two thirds of the field height of
// the previous center; if that clamp turns out inconsistent
// (min > max), the unclamped bounds apply instead.
func (g *Generator) Generate(x, score int) Obstacle {
	size := g.GapSize(score)
	half := size / 2

	minGapY := half + g.cfg.Margin
	maxGapY := g.fieldHeight - half - g.cfg.Margin
	if maxGapY < minGapY {
		maxGapY = minGapY // Degenerate field, keep the range well-formed
	}

	lo, hi := minGapY, maxGapY
	if g.hasLast {
		maxDiff := g.fieldHeight * 2 / 3
		lo = core.Max(minGapY, g.lastGapY-maxDiff)
		hi = core.Min(maxGapY, g.lastGapY+maxDiff)
		if lo > hi {
			lo, hi = minGapY, maxGapY
		}
	}

	gapY := lo
	if hi > lo {
		gapY = lo + g.rng.Intn(hi-lo+1)
	}

	g.lastGapY = gapY
	g.hasLast = true

	return Obstacle{X: x, GapY: gapY, Size: size}
}
