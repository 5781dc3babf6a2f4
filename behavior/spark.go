package behavior

import (
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/vmath"
)

const sparkLife = 0

// Spark is a short-lived death particle drifting in a random direction and slowing by drag
// Param is the lifetime in frames, clamped to [1, SparkMaxLifetime]
type Spark struct{}

func (Spark) Init(a engine.Actor, param uint8) {
	life := int16(param)
	if life < 1 {
		life = 1
	}
	if life > parameter.SparkMaxLifetime {
		life = parameter.SparkMaxLifetime
	}
	a.SetScratch(sparkLife, life)

	rng := a.Rand()
	a.SetVelocity(rng.Range(parameter.SparkDrift), rng.Range(parameter.SparkDrift))
}

func (Spark) Process(a engine.Actor) engine.Result {
	a.MoveAndCollide()
	vx, vy := a.Velocity()
	a.SetVelocity(vmath.Mul(vx, parameter.SparkDrag), vmath.Mul(vy, parameter.SparkDrag))

	life := a.Scratch(sparkLife) - 1
	a.SetScratch(sparkLife, life)
	if life <= 0 {
		return engine.Remove
	}
	return engine.Continue
}

func (Spark) Draw(a engine.Actor, sink engine.SpriteSink) { a.DrawFrame(sink) }
