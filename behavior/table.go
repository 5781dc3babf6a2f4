// Package behavior holds the closed set of per-type behaviors dispatched by the engine
package behavior

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
)

// Table returns the complete type -> behavior mapping
func Table() engine.BehaviorTable {
	return engine.BehaviorTable{
		component.TypePlayer: Player{},
		component.TypeBolt:   Projectile{Speed: parameter.BoltSpeed},
		component.TypeWalker: Walker{},
		component.TypeArcher: Archer{},
		component.TypeArrow:  Projectile{Speed: parameter.ArrowSpeed},
		component.TypeSpark:  Spark{},
		component.TypeShadow: Shadow{},
		component.TypeSwitch: Switch{},
	}
}
