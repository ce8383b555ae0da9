// Package audio plays synthesized sound effects and background music
// for the game. It implements game.AudioSink: the simulation fires
// requests into channels and never blocks or sees playback errors.
//
// Two workers run in the background: one drains the effect queue, one
// polls the music control channels on a bounded interval. When no
// audio backend is available both degrade to debug logging and the
// game plays on silently.
package audio

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Ferlinnnnn/flappy-Game/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	// effectQueueSize bounds the effect channel; a full queue drops the
	// effect rather than stalling the simulation.
	effectQueueSize = 16

	// musicPollInterval is how often the music worker checks its
	// control channels.
	musicPollInterval = 100 * time.Millisecond
)

// Player is the audio collaborator. Create with New, stop with Close.
type Player struct {
	effects  chan game.SoundEffect
	musicOn  chan struct{}
	musicOff chan struct{}
	done     chan struct{}

	mixer  *beep.Mixer
	silent bool // No backend: log instead of play
	logger *log.Logger
}

// New creates a Player and starts its workers. A failed speaker
// initialization is not an error: the player falls back to console
// logging, per the rule that audio failures never reach the game.
func New(logger *log.Logger) *Player {
	p := newPlayer(logger)

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, falling back to console", "error", err)
	} else {
		p.silent = false
		speaker.Play(p.mixer)
	}

	p.start()
	return p
}

// newPlayer builds a silent player with its channels; used directly in
// tests so they never touch the audio device.
func newPlayer(logger *log.Logger) *Player {
	return &Player{
		effects:  make(chan game.SoundEffect, effectQueueSize),
		musicOn:  make(chan struct{}, 1),
		musicOff: make(chan struct{}, 1),
		done:     make(chan struct{}),
		mixer:    &beep.Mixer{},
		silent:   true,
		logger:   logger,
	}
}

// start launches the two worker goroutines.
func (p *Player) start() {
	go p.effectLoop()
	go p.musicLoop()
}

// Close stops both workers. The speaker itself has no close; clearing
// happens implicitly at process exit.
func (p *Player) Close() {
	close(p.done)
}

// PlayEffect implements game.AudioSink. It never blocks: with the
// queue full the effect is dropped.
func (p *Player) PlayEffect(e game.SoundEffect) {
	select {
	case p.effects <- e:
	default:
	}
}

// SetMusic implements game.AudioSink. Non-blocking send on the
// matching control channel; a redundant toggle that finds the channel
// already signalled is dropped, which is fine since the worker applies
// the same state either way.
func (p *Player) SetMusic(enabled bool) {
	ch := p.musicOff
	if enabled {
		ch = p.musicOn
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}

// effectLoop drains the effect queue and hands each effect to the mixer.
func (p *Player) effectLoop() {
	for {
		select {
		case <-p.done:
			return
		case e := <-p.effects:
			p.playEffect(e)
		}
	}
}

func (p *Player) playEffect(e game.SoundEffect) {
	if p.silent {
		p.logger.Debug("effect", "sound", e.String())
		return
	}

	var s beep.Streamer
	switch e {
	case game.SoundFlap:
		s = flapChirp()
	case game.SoundHit:
		s = hitBuzz()
	case game.SoundGameOver:
		s = gameOverSweep()
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// musicLoop owns the background-music streamer exclusively. It polls
// the control channels on a bounded interval with non-blocking
// receives, so it tolerates absent messages and stays responsive to
// shutdown.
func (p *Player) musicLoop() {
	ticker := time.NewTicker(musicPollInterval)
	defer ticker.Stop()

	var music *beep.Ctrl

	for {
		select {
		case <-p.done:
			if music != nil {
				p.setPaused(music, true)
			}
			return
		case <-ticker.C:
		}

		select {
		case <-p.musicOn:
			switch {
			case p.silent:
				p.logger.Debug("music", "state", "start")
			case music == nil:
				music = &beep.Ctrl{Streamer: newMelody()}
				speaker.Lock()
				p.mixer.Add(music)
				speaker.Unlock()
			default:
				p.setPaused(music, false)
			}
		default:
		}

		select {
		case <-p.musicOff:
			if p.silent {
				p.logger.Debug("music", "state", "stop")
			} else if music != nil {
				p.setPaused(music, true)
			}
		default:
		}
	}
}

// setPaused flips a streamer's pause flag under the speaker lock.
func (p *Player) setPaused(c *beep.Ctrl, paused bool) {
	speaker.Lock()
	c.Paused = paused
	speaker.Unlock()
}
