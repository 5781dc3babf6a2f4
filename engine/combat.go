package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/physics"
	"github.com/lixenwraith/actcore/vmath"
)

// HitOutcome reports what ApplyHit did to the target
type HitOutcome uint8

const (
	// HitBlocked means the target was still invincible
	HitBlocked HitOutcome = iota
	// HitAbsorbed means the target is indestructible; contact registered, no damage
	HitAbsorbed
	HitDamaged
	HitKilled
)

func (o HitOutcome) String() string {
	switch o {
	case HitBlocked:
		return "blocked"
	case HitAbsorbed:
		return "absorbed"
	case HitDamaged:
		return "damaged"
	case HitKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// BeginCombat ticks every invincibility counter down and clears last frame's contact flags
func (w *World) BeginCombat() {
	for _, slot := range w.order[:w.active] {
		if w.invincible[slot] > 0 {
			w.invincible[slot]--
		}
		w.contact[slot] = 0
	}
}

// CombatBoxes resolves the frame-relative hitbox and hurtbox of slot against its current pixel position
func (w *World) CombatBoxes(slot core.Slot) (hit, hurt core.Rect) {
	hit, hurt = w.boxes.Boxes(w.frame[slot])
	x, y := w.kin[slot].Pixel()
	return hit.Offset(x, y), hurt.Offset(x, y)
}

// ApplyHit resolves one hitbox/hurtbox overlap of attacker onto target
// This is the only path that writes health or invincibility of a slot other than the one being processed
func (w *World) ApplyHit(attacker, target core.Slot) HitOutcome {
	w.contact[attacker] |= component.ContactHit
	w.contact[target] |= component.ContactHurt

	if w.invincible[target] > 0 {
		w.statBlocked.Add(1)
		return HitBlocked
	}

	d := component.Data(w.typ[target])
	w.invincible[target] = w.invincibilityFrames

	if w.health[target] == parameter.HealthIndestructible {
		return HitAbsorbed
	}

	damage := w.attack[attacker]
	if damage >= w.health[target] {
		damage = w.health[target]
	}
	w.health[target] -= damage
	w.statHits.Add(1)

	w.log.WithFields(logrus.Fields{
		"attacker": w.typ[attacker].String(),
		"target":   w.typ[target].String(),
		"damage":   damage,
		"health":   w.health[target],
	}).Debug("Hit")

	if damage > 0 {
		if d.HurtSound != core.SoundNone {
			w.sounds.QueueSoundEffect(d.HurtSound)
		}
		w.hooks.EntityHurt(target, damage)
	}

	if w.health[target] == 0 {
		w.statKills.Add(1)
		return HitKilled
	}
	return HitDamaged
}

// SetVelocity overrides the velocity of slot, for the embedding game's scripted movement
func (w *World) SetVelocity(slot core.Slot, vx, vy vmath.Fixed) {
	physics.SetImpulse(&w.kin[slot], vx, vy)
}
