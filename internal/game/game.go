// Package game implements the simulation core: entity physics, the
// obstacle generator, the collision and progress evaluator, and the
// game-mode state machine that drives them each tick. It is pure Go
// with no terminal or audio dependencies; the platform layer feeds it
// input frames and elapsed time, and it reports sounds through an
// AudioSink.
package game

import (
	"math/rand"

	"github.com/Ferlinnnnn/flappy-Game/internal/config"
	"github.com/Ferlinnnnn/flappy-Game/internal/core"
)

// Mode is the current screen of the game state machine.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// playerStartX is the world column the player starts at; the vertical
// start is the middle of the field.
const playerStartX = 5

// Game owns the full simulation state and the mode state machine.
// Everything runs on the caller's goroutine; one Tick completes before
// the next begins and no locks are needed.
type Game struct {
	cfg config.GameConfig

	player    Player
	gen       *Generator
	obstacles []Obstacle
	score     int
	mode      Mode
	frameTime float64 // Accumulated ms since the last physics step

	audioEnabled bool
	musicEnabled bool
	audio        AudioSink
}

// New creates a game in menu mode. The seed makes obstacle generation
// reproducible; the sink receives audio events (nil means silent).
func New(cfg config.GameConfig, seed int64, sink AudioSink) *Game {
	if sink == nil {
		sink = NopAudio{}
	}

	g := &Game{
		cfg:          cfg,
		mode:         ModeMenu,
		audioEnabled: cfg.Audio.Effects,
		musicEnabled: cfg.Audio.Music,
		audio:        sink,
	}
	g.gen = NewGenerator(cfg.Obstacles, cfg.Field.Height, rand.New(rand.NewSource(seed)))
	g.resetWorld()
	return g
}

// resetWorld recreates the player, the obstacle set, the score and the
// gap history. Shared by start and restart.
func (g *Game) resetWorld() {
	g.player = NewPlayer(playerStartX, g.cfg.Field.Height/2)
	g.frameTime = 0
	g.score = 0
	g.gen.Reset()

	g.obstacles = g.obstacles[:0]
	x := g.cfg.Field.Width
	for i := 0; i < g.cfg.Obstacles.InitialCount; i++ {
		g.obstacles = append(g.obstacles, g.gen.Generate(x, 0))
		x += g.cfg.Obstacles.Interval
	}
}

// start handles both Menu->Playing and End->Playing: same reset, then
// background music if it is enabled.
func (g *Game) start() {
	g.resetWorld()
	g.mode = ModePlaying
	if g.musicEnabled {
		g.audio.SetMusic(true)
	}
}

// Tick advances the game by one tick. elapsedMS is the wall time since
// the previous tick; it feeds the frame-time accumulator that gates
// physics steps. Input actions apply to the current mode; the audio
// toggles work in any mode. Quit is handled by the platform layer.
func (g *Game) Tick(elapsedMS float64, in core.InputFrame) {
	if in.Has(core.ActionToggleAudio) {
		g.audioEnabled = !g.audioEnabled
	}
	if in.Has(core.ActionToggleMusic) {
		g.musicEnabled = !g.musicEnabled
		g.audio.SetMusic(g.musicEnabled)
	}

	switch g.mode {
	case ModeMenu:
		if in.Has(core.ActionStart) {
			g.start()
		}
	case ModePlaying:
		g.play(elapsedMS, in)
	case ModeEnd:
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			g.start()
		}
	}
}

// play runs one Playing-mode tick: accumulate time, conditionally step
// physics, apply flap, evaluate collisions and progress, update score
// and replace the passed obstacle, then check the floor.
func (g *Game) play(elapsedMS float64, in core.InputFrame) {
	g.frameTime += elapsedMS
	if g.frameTime > g.cfg.Field.FrameDurationMS {
		g.frameTime = 0
		g.player.GravityAndMove(g.cfg.Physics)
	}

	// Flap reacts immediately, outside the accumulator.
	if in.Has(core.ActionFlap) {
		g.player.Flap(g.cfg.Physics)
		g.playEffect(SoundFlap)
	}

	ev := Evaluate(g.player, g.obstacles, g.cfg.Field.Height)

	if ev.Hit {
		g.endGame(SoundHit)
	}

	if ev.PassedIndex >= 0 {
		g.score++
		maxX := g.obstacles[0].X
		for _, o := range g.obstacles {
			maxX = core.Max(maxX, o.X)
		}
		g.obstacles[ev.PassedIndex] = g.gen.Generate(maxX+g.cfg.Obstacles.Interval, g.score)
	}

	if g.player.Y > float64(g.cfg.Field.Height) {
		g.endGame(SoundGameOver)
	}
}

// endGame transitions Playing->End at most once per game, keeping the
// score, and emits the given sound.
func (g *Game) endGame(e SoundEffect) {
	if g.mode == ModeEnd {
		return
	}
	g.mode = ModeEnd
	g.playEffect(e)
}

// playEffect forwards an effect to the sink when effects are enabled.
func (g *Game) playEffect(e SoundEffect) {
	if g.audioEnabled {
		g.audio.PlayEffect(e)
	}
}

// Mode returns the current state-machine mode.
func (g *Game) Mode() Mode { return g.mode }

// Score returns the number of obstacles passed this game.
func (g *Game) Score() int { return g.score }

// Player returns a copy of the player state.
func (g *Game) Player() Player { return g.player }

// Obstacles returns the live obstacle set. Callers must not modify it.
func (g *Game) Obstacles() []Obstacle { return g.obstacles }

// AudioEnabled reports whether sound effects are on.
func (g *Game) AudioEnabled() bool { return g.audioEnabled }

// MusicEnabled reports whether background music is on.
func (g *Game) MusicEnabled() bool { return g.musicEnabled }

// FieldWidth returns the logical playfield width.
func (g *Game) FieldWidth() int { return g.cfg.Field.Width }

// FieldHeight returns the logical playfield height.
func (g *Game) FieldHeight() int { return g.cfg.Field.Height }

// Buttons returns the button descriptors for the current mode and flags.
func (g *Game) Buttons() []Button {
	return Buttons(g.mode, g.audioEnabled, g.musicEnabled)
}
