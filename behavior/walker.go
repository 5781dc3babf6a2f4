package behavior

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
)

// Walker patrols horizontally and turns around at walls
// Param 0 starts walking left, anything else right
type Walker struct{}

func (Walker) Init(a engine.Actor, param uint8) {
	if param == 0 {
		a.SetVelocity(-parameter.WalkerSpeed, 0)
	} else {
		a.SetVelocity(parameter.WalkerSpeed, 0)
	}
	x, y := a.PixelPosition()
	a.Spawn(x, y, component.TypeShadow, 0)
}

func (Walker) Process(a engine.Actor) engine.Result {
	state := a.MoveAndCollide()
	switch {
	case state.Has(component.CollideLeft):
		a.SetVelocity(parameter.WalkerSpeed, 0)
	case state.Has(component.CollideRight):
		a.SetVelocity(-parameter.WalkerSpeed, 0)
	}
	return engine.Continue
}

func (Walker) Draw(a engine.Actor, sink engine.SpriteSink) { a.DrawFrame(sink) }
