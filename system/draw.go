package system

import (
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
)

// DrawSystem submits every survivor to the sprite sink in stable z order
// It runs after reap so removed slots never reach the renderer
type DrawSystem struct{}

func NewDrawSystem() engine.System { return DrawSystem{} }

func (DrawSystem) Name() string  { return "draw" }
func (DrawSystem) Priority() int { return parameter.PriorityDraw }

func (DrawSystem) Update(w *engine.World) { w.DrawAll() }

// Register adds the standard post-dispatch phases to world
func Register(world *engine.World) {
	world.AddSystem(NewCombatSystem(world))
	world.AddSystem(NewReapSystem())
	world.AddSystem(NewDrawSystem())
}
