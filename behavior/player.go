package behavior

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/sprite"
	"github.com/lixenwraith/actcore/vmath"
)

// Player scratch layout
const (
	playerFacing = iota
	playerAttack
	playerCooldown
)

var attackFrames = [...]sprite.FrameID{
	DirRight: sprite.FramePlayerAttackRight,
	DirLeft:  sprite.FramePlayerAttackLeft,
	DirDown:  sprite.FramePlayerAttackDown,
	DirUp:    sprite.FramePlayerAttackUp,
}

// Player is steered by the d-pad, swings a directional attack and fires bolts
// While an attack frame is shown its hitbox is live for the combat phase
type Player struct{}

func (Player) Init(a engine.Actor, _ uint8) {
	a.SetScratch(playerFacing, int16(DirDown))
	a.SetFrame(sprite.FramePlayerIdle)
}

func (Player) Process(a engine.Actor) engine.Result {
	if a.Health() == 0 {
		a.SetVelocity(0, 0)
		a.SetFrame(sprite.FramePlayerIdle)
		return engine.Continue
	}

	buttons := a.Input()
	facing := Direction(a.Scratch(playerFacing))

	var vx, vy vmath.Fixed
	switch {
	case buttons.Has(engine.ButtonLeft):
		vx, facing = -parameter.PlayerSpeed, DirLeft
	case buttons.Has(engine.ButtonRight):
		vx, facing = parameter.PlayerSpeed, DirRight
	}
	switch {
	case buttons.Has(engine.ButtonUp):
		vy = -parameter.PlayerSpeed
		if vx == 0 {
			facing = DirUp
		}
	case buttons.Has(engine.ButtonDown):
		vy = parameter.PlayerSpeed
		if vx == 0 {
			facing = DirDown
		}
	}

	if cd := a.Scratch(playerCooldown); cd > 0 {
		a.SetScratch(playerCooldown, cd-1)
	}

	attack := a.Scratch(playerAttack)
	switch {
	case attack > 0:
		// Committed to the swing: facing and frame stay, feet planted
		attack--
		a.SetScratch(playerAttack, attack)
		vx, vy = 0, 0
		if attack == 0 {
			a.SetFrame(sprite.FramePlayerIdle)
		}
	case buttons.Has(engine.ButtonAttack):
		a.SetScratch(playerAttack, parameter.PlayerAttackFrames)
		a.SetScratch(playerFacing, int16(facing))
		a.SetFrame(attackFrames[facing])
		vx, vy = 0, 0
	default:
		a.SetScratch(playerFacing, int16(facing))
		a.SetFrame(sprite.FramePlayerIdle)
	}

	if buttons.Has(engine.ButtonFire) && a.Scratch(playerCooldown) == 0 {
		x, y := a.PixelPosition()
		if _, ok := a.Spawn(x, y, component.TypeBolt, uint8(facing)); ok {
			a.SetScratch(playerCooldown, parameter.PlayerFireCooldown)
			a.QueueSound(component.SoundBolt)
		}
	}

	a.SetVelocity(vx, vy)
	a.MoveAndCollide()
	return engine.Continue
}

// Draw blinks while invincible
func (Player) Draw(a engine.Actor, sink engine.SpriteSink) {
	if a.Invincible() && a.FrameCount()&1 == 1 {
		return
	}
	a.DrawFrame(sink)
}
