package game

// SoundEffect identifies a one-shot gameplay sound.
type SoundEffect int

const (
	SoundFlap SoundEffect = iota
	SoundHit
	SoundGameOver
)

// String returns a human-readable name for the effect.
func (e SoundEffect) String() string {
	switch e {
	case SoundFlap:
		return "flap"
	case SoundHit:
		return "hit"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// AudioSink receives fire-and-forget audio requests from the game.
// Implementations must never block the caller and must keep playback
// failures to themselves; nothing flows back into the simulation.
type AudioSink interface {
	// PlayEffect triggers a one-shot sound effect.
	PlayEffect(SoundEffect)
	// SetMusic starts or stops the background music. Redundant calls
	// are allowed and may be dropped.
	SetMusic(enabled bool)
}

// NopAudio discards all audio requests. Used in tests and wherever no
// audio backend is wired up.
type NopAudio struct{}

func (NopAudio) PlayEffect(SoundEffect) {}
func (NopAudio) SetMusic(bool)          {}
