package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/actcore/parameter"
)

// FrameClock paces the logic loop at a fixed rate, standing in for the display's vertical blank
// Deadlines advance by a fixed interval for drift correction; falling more than two frames behind resyncs
type FrameClock struct {
	interval time.Duration
	deadline time.Time
	started  bool

	// Late counts frames whose deadline had already passed when Wait was called
	late atomic.Int64
}

// NewFrameClock creates a clock for rate frames per second, clamped to the supported range
func NewFrameClock(rate int) *FrameClock {
	if rate < parameter.MinFrameRate {
		rate = parameter.MinFrameRate
	}
	if rate > parameter.MaxFrameRate {
		rate = parameter.MaxFrameRate
	}
	return &FrameClock{interval: time.Second / time.Duration(rate)}
}

func (c *FrameClock) Interval() time.Duration { return c.interval }
func (c *FrameClock) Late() int64             { return c.late.Load() }

// Wait blocks until the next frame deadline or until ctx is done
func (c *FrameClock) Wait(ctx context.Context) error {
	now := time.Now()
	if !c.started {
		c.started = true
		c.deadline = now
	}
	c.deadline = c.deadline.Add(c.interval)

	maxBehind := c.interval * 2
	if now.Sub(c.deadline) > maxBehind {
		c.deadline = now.Add(c.interval)
	}

	d := c.deadline.Sub(now)
	if d <= 0 {
		c.late.Add(1)
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
