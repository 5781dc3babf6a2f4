package behavior

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/vmath"
)

const projectileLife = 0

// Projectile flies straight in the direction given by its spawn parameter
// It is removed on any terrain contact, when its hitbox lands, or when its lifetime runs out
type Projectile struct {
	Speed vmath.Fixed
}

func (p Projectile) Init(a engine.Actor, param uint8) {
	a.SetVelocity(directionOf(param).Velocity(p.Speed))
	a.SetScratch(projectileLife, parameter.ProjectileLifetime)
}

func (p Projectile) Process(a engine.Actor) engine.Result {
	if a.Contact().Has(component.ContactHit) {
		return engine.Remove
	}
	if a.MoveAndCollide().Has(component.CollideAny) {
		return engine.Remove
	}
	life := a.Scratch(projectileLife) - 1
	a.SetScratch(projectileLife, life)
	if life <= 0 {
		return engine.Remove
	}
	return engine.Continue
}

func (Projectile) Draw(a engine.Actor, sink engine.SpriteSink) { a.DrawFrame(sink) }
