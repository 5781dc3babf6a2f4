package behavior

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/vmath"
)

const (
	archerInterval = iota
	archerCountdown
)

// Archer stands still and looses an arrow toward the player every interval
// Param selects the interval level, clamped to the last level; a player out of range skips the volley
type Archer struct{}

func archerIntervalFor(param uint8) int16 {
	level := int(param)
	if level >= parameter.ArcherIntervalLevels {
		level = parameter.ArcherIntervalLevels - 1
	}
	return int16(parameter.ArcherBaseInterval + level*parameter.ArcherIntervalStep)
}

func (Archer) Init(a engine.Actor, param uint8) {
	interval := archerIntervalFor(param)
	a.SetScratch(archerInterval, interval)
	a.SetScratch(archerCountdown, interval)
}

func (Archer) Process(a engine.Actor) engine.Result {
	n := a.Scratch(archerCountdown) - 1
	if n > 0 {
		a.SetScratch(archerCountdown, n)
		return engine.Continue
	}
	a.SetScratch(archerCountdown, a.Scratch(archerInterval))

	x, y := a.PixelPosition()
	px, py := a.PlayerPosition()
	if vmath.DistanceApprox(px-x, py-y) > parameter.ArcherRange {
		return engine.Continue
	}
	if _, ok := a.Spawn(x, y, component.TypeArrow, uint8(toward(px-x, py-y))); ok {
		a.QueueSound(component.SoundArrow)
	}
	return engine.Continue
}

func (Archer) Draw(a engine.Actor, sink engine.SpriteSink) { a.DrawFrame(sink) }
