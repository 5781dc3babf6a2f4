package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/status"
)

// Queue is the bounded fire-and-forget sound request queue written by the frame loop
// A full queue drops the request and counts it; the frame never blocks on audio
type Queue struct {
	ch chan core.SoundID

	statQueued  *atomic.Int64
	statDropped *atomic.Int64
}

func NewQueue(depth int, reg *status.Registry) *Queue {
	if depth < 1 {
		depth = 1
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Queue{
		ch:          make(chan core.SoundID, depth),
		statQueued:  reg.Ints.Get("audio.queued"),
		statDropped: reg.Ints.Get("audio.dropped"),
	}
}

// QueueSoundEffect implements the engine sound queue
func (q *Queue) QueueSoundEffect(id core.SoundID) {
	if id == core.SoundNone {
		return
	}
	select {
	case q.ch <- id:
		q.statQueued.Add(1)
	default:
		q.statDropped.Add(1)
	}
}

// Drain hands every pending request to fn without blocking
func (q *Queue) Drain(fn func(core.SoundID)) int {
	n := 0
	for {
		select {
		case id := <-q.ch:
			fn(id)
			n++
		default:
			return n
		}
	}
}

func (q *Queue) Len() int { return len(q.ch) }
