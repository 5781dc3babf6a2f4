package system

import (
	"sync/atomic"

	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/physics"
)

// CombatSystem tests every live hitbox against every opposing hurtbox and applies the hits
type CombatSystem struct {
	// Telemetry
	statActive *atomic.Bool
}

// NewCombatSystem creates a combat phase reporting into the world's registry
func NewCombatSystem(world *engine.World) engine.System {
	return &CombatSystem{
		statActive: world.Status().Bools.Get("combat.active"),
	}
}

// Name returns system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

// Update resolves overlaps in table order; boxes are re-resolved from current positions each frame
func (s *CombatSystem) Update(w *engine.World) {
	w.BeginCombat()

	landed := false
	slots := w.ActiveSlots()
	for _, attacker := range slots {
		team := w.Team(attacker)
		if team == component.TeamNeutral || w.Attack(attacker) == 0 {
			continue
		}
		if w.Removing(attacker) || w.Health(attacker) == 0 {
			continue
		}
		hit, _ := w.CombatBoxes(attacker)
		if hit.Empty() {
			continue
		}

		for _, target := range slots {
			if target == attacker || !team.Opposes(w.Team(target)) {
				continue
			}
			_, hurt := w.CombatBoxes(target)
			if hurt.Empty() || !physics.Overlap(hit, hurt) {
				continue
			}
			w.ApplyHit(attacker, target)
			landed = true
		}
	}

	s.statActive.Store(landed)
}
