package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone whose frequency slides linearly
// from freq to endFreq.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
	rng           *rand.Rand
}

// NewOscillator creates a tone generator. endFreq equal to freq gives a flat
// tone.
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(wave))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		f := o.freq + (o.endFreq-o.freq)*t
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero volume is
// expressed as silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped oscillator with a short attack and a release covering the
// back half of the note.
func tone(freq, endFreq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, endFreq, d, wave, rate)
	return NewEnvelope(osc, d, 4*time.Millisecond, d/2, rate)
}

// staggered plays second after first with a gap of silence in between. The
// delay lives inside the stream, so nothing has to wait for it.
func staggered(first, second beep.Streamer, gap time.Duration, rate beep.SampleRate) beep.Streamer {
	return beep.Seq(first, beep.Silence(rate.N(gap)), second)
}

// Synthesize builds a fresh streamer for a cue at the configured volume.
// Returns nil for an unknown cue.
func Synthesize(c Cue, cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c {
	case CueJump:
		s = tone(330, 660, 90*time.Millisecond, WaveSquare, rate)
	case CueShoot:
		s = tone(880, 220, 120*time.Millisecond, WaveSaw, rate)
	case CueHit:
		s = beep.Mix(
			newVolume(tone(0, 0, 80*time.Millisecond, WaveNoise, rate), 0.6),
			newVolume(tone(160, 90, 80*time.Millisecond, WaveSquare, rate), 0.4),
		)
	case CueCollect:
		// Two-note chime, the second note delayed
		s = staggered(
			tone(987.77, 987.77, 70*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 1318.51, 160*time.Millisecond, WaveSquare, rate),
			30*time.Millisecond, rate,
		)
	case CueDeath:
		s = staggered(
			tone(440, 220, 200*time.Millisecond, WaveSaw, rate),
			tone(220, 55, 350*time.Millisecond, WaveSaw, rate),
			60*time.Millisecond, rate,
		)
	default:
		return nil
	}

	return newVolume(s, cfg.MasterVolume*cueVolume(c, cfg))
}

// cueVolume looks up a cue's relative volume, defaulting to full.
func cueVolume(c Cue, cfg config.AudioConfig) float64 {
	if v, ok := cfg.CueVolumes[c.String()]; ok {
		return v
	}
	return 1
}
