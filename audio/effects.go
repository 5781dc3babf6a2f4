package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave of fixed length
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite wave streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf, so 0 is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped oscillator voice
type tone struct {
	freq     float64
	wave     WaveType
	duration time.Duration
	attack   time.Duration
	release  time.Duration
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.freq, t.duration, t.wave, rate)
	return NewEnvelope(osc, t.duration, t.attack, t.release, rate)
}

// effect is a sequence of tones at a fixed gain
type effect struct {
	tones []tone
	gain  float64
}

var effectTable = map[core.SoundID]effect{
	component.SoundHurt: {
		tones: []tone{{freq: 220, wave: WaveSaw, duration: 80 * time.Millisecond, attack: 2 * time.Millisecond, release: 40 * time.Millisecond}},
		gain:  0.4,
	},
	component.SoundDeath: {
		tones: []tone{{wave: WaveNoise, duration: 250 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond}},
		gain:  0.35,
	},
	component.SoundBolt: {
		tones: []tone{{freq: 880, wave: WaveSquare, duration: 60 * time.Millisecond, attack: 1 * time.Millisecond, release: 30 * time.Millisecond}},
		gain:  0.2,
	},
	component.SoundArrow: {
		tones: []tone{{freq: 440, wave: WaveSaw, duration: 50 * time.Millisecond, attack: 1 * time.Millisecond, release: 30 * time.Millisecond}},
		gain:  0.25,
	},
	component.SoundSwitch: {
		tones: []tone{
			{freq: 659.25, wave: WaveSquare, duration: 60 * time.Millisecond, attack: 2 * time.Millisecond, release: 20 * time.Millisecond},
			{freq: 987.77, wave: WaveSquare, duration: 90 * time.Millisecond, attack: 2 * time.Millisecond, release: 60 * time.Millisecond},
		},
		gain: 0.3,
	},
	component.SoundPlayerHurt: {
		tones: []tone{{freq: 150, wave: WaveSquare, duration: 150 * time.Millisecond, attack: 2 * time.Millisecond, release: 100 * time.Millisecond}},
		gain:  0.45,
	},
}

// Synthesize builds the streamer for a sound effect id; unknown ids return nil
func Synthesize(id core.SoundID, rate beep.SampleRate, master float64) beep.Streamer {
	fx, ok := effectTable[id]
	if !ok {
		return nil
	}
	voices := make([]beep.Streamer, len(fx.tones))
	for i, t := range fx.tones {
		voices[i] = t.streamer(rate)
	}
	return newVolume(beep.Seq(voices...), fx.gain*master)
}

// Duration returns the total length of a sound effect
func Duration(id core.SoundID) time.Duration {
	var d time.Duration
	for _, t := range effectTable[id].tones {
		d += t.duration
	}
	return d
}
