package behavior

import (
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/vmath"
)

// shadowDrop is the vertical offset below the owner's center
const shadowDrop = 4

// Shadow tracks its owner through a handle and disappears once the owner is gone
type Shadow struct{}

func (Shadow) Init(a engine.Actor, _ uint8) {
	if x, y, ok := a.PositionOf(a.Owner()); ok {
		a.SetPosition(x, y+shadowDrop)
	}
}

func (Shadow) Process(a engine.Actor) engine.Result {
	ox, oy, ok := a.PositionOf(a.Owner())
	if !ok {
		return engine.Remove
	}
	// Terrain never blocks a shadow: velocity is exactly the gap to the target
	x, y := a.Position()
	a.SetVelocity(vmath.FromInt(ox)-x, vmath.FromInt(oy+shadowDrop)-y)
	a.Integrate()
	return engine.Continue
}

func (Shadow) Draw(a engine.Actor, sink engine.SpriteSink) { a.DrawFrame(sink) }
