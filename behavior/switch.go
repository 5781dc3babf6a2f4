package behavior

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/logger"
	"github.com/lixenwraith/actcore/sprite"
)

const (
	switchOn = iota
	switchPressed
)

// Switch is an indestructible floor trigger flipped by each new strike on its hurtbox
// Holding a hitbox on it does not retrigger; contact must lapse first
type Switch struct{}

func (Switch) Init(a engine.Actor, param uint8) {
	on := param != 0
	a.SetScratch(switchOn, boolWord(on))
	a.SetFrame(switchFrame(on))
}

func (Switch) Process(a engine.Actor) engine.Result {
	struck := a.Contact().Has(component.ContactHurt)
	wasStruck := a.Scratch(switchPressed) != 0
	a.SetScratch(switchPressed, boolWord(struck))
	if !struck || wasStruck {
		return engine.Continue
	}

	on := a.Scratch(switchOn) == 0
	a.SetScratch(switchOn, boolWord(on))
	a.SetFrame(switchFrame(on))
	a.QueueSound(component.Data(component.TypeSwitch).HurtSound)

	logger.Component("behavior").WithField("on", on).Info("Switch toggled")
	a.Hooks().SwitchToggled(a.Slot(), on)
	return engine.Continue
}

func (Switch) Draw(a engine.Actor, sink engine.SpriteSink) { a.DrawFrame(sink) }

func switchFrame(on bool) sprite.FrameID {
	if on {
		return sprite.FrameSwitchOn
	}
	return sprite.FrameSwitchOff
}

func boolWord(b bool) int16 {
	if b {
		return 1
	}
	return 0
}
