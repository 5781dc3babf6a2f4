package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/logger"
	"github.com/lixenwraith/actcore/parameter"
)

// Player synthesizes queued sound effects into a mixer played by the speaker
// Without Start the mixer is still fed, so it can be streamed directly
type Player struct {
	queue  *Queue
	rate   beep.SampleRate
	master float64

	mu      sync.Mutex
	mixer   *beep.Mixer
	started bool

	log *logrus.Entry
}

func NewPlayer(queue *Queue) *Player {
	return &Player{
		queue:  queue,
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		master: 1.0,
		mixer:  &beep.Mixer{},
		log:    logger.Component("audio"),
	}
}

// Start opens the speaker and begins playback of the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.started = true
	p.log.WithField("rate", int(p.rate)).Info("Audio started")
	return nil
}

// Pump moves every queued request into the mixer; call once per frame after the logic step
func (p *Player) Pump() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.queue.Drain(func(id core.SoundID) {
		s := Synthesize(id, p.rate, p.master)
		if s == nil {
			p.log.WithField("id", id).Debug("Unknown sound effect")
			return
		}
		if p.started {
			speaker.Lock()
			p.mixer.Add(s)
			speaker.Unlock()
			return
		}
		p.mixer.Add(s)
	})
}

// Mixer exposes the output mix
func (p *Player) Mixer() beep.Streamer { return p.mixer }

// Active is the number of effects still sounding
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Stop halts playback and releases the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}
