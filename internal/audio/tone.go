package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep streams a sine tone whose frequency glides linearly from one
// value to another over its duration, with a linear fade-out so it
// ends without a click.
type sweep struct {
	from, to float64
	volume   float64
	phase    float64
	length   int
	position int
}

func newSweep(from, to float64, d time.Duration, volume float64) *sweep {
	return &sweep{
		from:   from,
		to:     to,
		volume: volume,
		length: sampleRate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	if s.position >= s.length {
		return 0, false
	}

	n := 0
	for i := range samples {
		if s.position >= s.length {
			break
		}
		progress := float64(s.position) / float64(s.length)
		freq := s.from + (s.to-s.from)*progress
		fade := 1.0 - progress

		v := math.Sin(s.phase) * s.volume * fade
		samples[i][0] = v
		samples[i][1] = v

		s.phase += 2 * math.Pi * freq / float64(sampleRate)
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		s.position++
		n++
	}
	return n, true
}

func (s *sweep) Err() error { return nil }

// buzz streams a square wave at a fixed frequency with a fade-out.
type buzz struct {
	freq     float64
	volume   float64
	phase    float64
	length   int
	position int
}

func newBuzz(freq float64, d time.Duration, volume float64) *buzz {
	return &buzz{
		freq:   freq,
		volume: volume,
		length: sampleRate.N(d),
	}
}

func (b *buzz) Stream(samples [][2]float64) (int, bool) {
	if b.position >= b.length {
		return 0, false
	}

	n := 0
	for i := range samples {
		if b.position >= b.length {
			break
		}
		fade := 1.0 - float64(b.position)/float64(b.length)

		v := -b.volume
		if math.Sin(b.phase) >= 0 {
			v = b.volume
		}
		v *= fade
		samples[i][0] = v
		samples[i][1] = v

		b.phase += 2 * math.Pi * b.freq / float64(sampleRate)
		if b.phase > 2*math.Pi {
			b.phase -= 2 * math.Pi
		}
		b.position++
		n++
	}
	return n, true
}

func (b *buzz) Err() error { return nil }

// note is one step of the background melody.
type note struct {
	freq     float64
	duration time.Duration
}

// melody cycles a note sequence forever; pausing and stopping are the
// owning Ctrl's job.
type melody struct {
	notes    []note
	idx      int
	phase    float64
	length   int
	position int
	volume   float64
}

// newMelody returns the looping background track: a slow four-note
// arpeggio, quiet enough to sit under the effects.
func newMelody() *melody {
	m := &melody{
		notes: []note{
			{261.63, 400 * time.Millisecond}, // C4
			{329.63, 400 * time.Millisecond}, // E4
			{392.00, 400 * time.Millisecond}, // G4
			{329.63, 400 * time.Millisecond}, // E4
		},
		volume: 0.12,
	}
	m.length = sampleRate.N(m.notes[0].duration)
	return m
}

func (m *melody) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if m.position >= m.length {
			m.idx = (m.idx + 1) % len(m.notes)
			m.length = sampleRate.N(m.notes[m.idx].duration)
			m.position = 0
			m.phase = 0
		}

		// Short attack/release envelope per note.
		env := 1.0
		attack := m.length / 10
		if m.position < attack {
			env = float64(m.position) / float64(attack)
		} else if rem := m.length - m.position; rem < attack {
			env = float64(rem) / float64(attack)
		}

		v := math.Sin(m.phase) * m.volume * env
		samples[i][0] = v
		samples[i][1] = v

		m.phase += 2 * math.Pi * m.notes[m.idx].freq / float64(sampleRate)
		if m.phase > 2*math.Pi {
			m.phase -= 2 * math.Pi
		}
		m.position++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// flapChirp is a quick upward glide.
func flapChirp() beep.Streamer {
	return newSweep(400, 800, 120*time.Millisecond, 0.3)
}

// hitBuzz is a short low square-wave burst.
func hitBuzz() beep.Streamer {
	return newBuzz(110, 180*time.Millisecond, 0.35)
}

// gameOverSweep is a long downward glide.
func gameOverSweep() beep.Streamer {
	return newSweep(600, 150, 500*time.Millisecond, 0.3)
}
