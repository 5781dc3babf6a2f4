package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/status"
)

// drain streams s to the end and returns the sample count and peak amplitude
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestQueueDropsWhenFull(t *testing.T) {
	reg := status.NewRegistry()
	q := NewQueue(2, reg)

	q.QueueSoundEffect(component.SoundBolt)
	q.QueueSoundEffect(core.SoundNone)
	q.QueueSoundEffect(component.SoundHurt)
	q.QueueSoundEffect(component.SoundDeath)

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, int64(2), reg.Ints.Get("audio.queued").Load())
	assert.Equal(t, int64(1), reg.Ints.Get("audio.dropped").Load())

	var got []core.SoundID
	assert.Equal(t, 2, q.Drain(func(id core.SoundID) { got = append(got, id) }))
	assert.Equal(t, []core.SoundID{component.SoundBolt, component.SoundHurt}, got)
	assert.Equal(t, 0, q.Drain(func(core.SoundID) {}))
}

func TestEverySoundSynthesizes(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	for id := core.SoundID(1); id < component.SoundCount; id++ {
		s := Synthesize(id, rate, 1.0)
		require.NotNil(t, s, "sound %d", id)

		want := rate.N(Duration(id))
		total, peak := drain(s, want*2)
		assert.InDelta(t, want, total, 2, "sound %d length", id)
		assert.Greater(t, peak, 0.0, "sound %d is silent", id)
		assert.LessOrEqual(t, peak, 1.0)
	}
	assert.Nil(t, Synthesize(component.SoundCount, rate, 1.0))
}

func TestEnvelopeRamps(t *testing.T) {
	// One sample per millisecond
	rate := beep.SampleRate(1000)

	// A zero-frequency square holds at 1, so the output is the envelope gain
	src := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	require.Equal(t, 100, n)
	assert.Equal(t, 0.0, buf[0][0])
	assert.InDelta(t, 0.5, buf[5][0], 1e-9)
	assert.Equal(t, 1.0, buf[50][0])
	assert.InDelta(t, 0.5, buf[90][0], 1e-9)
}

func TestPumpFeedsMixerWithoutSpeaker(t *testing.T) {
	q := NewQueue(parameter.SoundQueueDepth, nil)
	p := NewPlayer(q)

	q.QueueSoundEffect(component.SoundSwitch)
	q.QueueSoundEffect(component.SoundBolt)

	assert.Equal(t, 2, p.Pump())
	assert.Equal(t, 2, p.Active())

	_, peak := drain(p.Mixer(), 1024)
	assert.Greater(t, peak, 0.0)

	p.Stop()
}
