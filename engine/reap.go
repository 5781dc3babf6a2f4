package engine

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/parameter"
)

// ReapStats summarizes one reap pass
type ReapStats struct {
	Removed int
	Killed  int
}

// Reap reclaims every non-player slot whose health is 0 or whose behavior requested removal
// Killed entities run their death behavior after the slot is reclaimed
// One pass, O(active): a swap brings the last entry into the current index, so the index only advances on survivors
func (w *World) Reap() ReapStats {
	var stats ReapStats
	enemiesBefore := w.enemies

	for i := 1; i < w.active; {
		slot := w.order[i]
		killed := w.health[slot] == 0
		if !killed && !w.remove[slot] {
			i++
			continue
		}

		t := w.typ[slot]
		x, y := w.kin[slot].Pixel()
		w.despawn(slot)
		stats.Removed++

		if killed {
			stats.Killed++
			w.deathEffects(t, x, y)
		}
	}

	if w.health[core.PlayerSlot] == 0 && !w.playerDead {
		w.playerDead = true
		w.log.Info("Player died")
		w.hooks.PlayerDied()
	}

	if enemiesBefore > 0 && w.enemies == 0 {
		w.log.Info("Room cleared")
		w.hooks.RoomCleared()
	}

	w.statActive.Store(int64(w.active))
	w.statEnemies.Store(int64(w.enemies))
	return stats
}

func (w *World) deathEffects(t component.EntityType, x, y int) {
	d := component.Data(t)
	if d.DeathSound != core.SoundNone {
		w.sounds.QueueSoundEffect(d.DeathSound)
	}
	if d.Death != component.DeathBurst {
		return
	}
	for i := 0; i < parameter.DeathSparkCount; i++ {
		if _, err := w.spawn(x, y, component.TypeSpark, parameter.SparkLifetime, core.NilHandle); err != nil {
			return
		}
	}
}

// PlayerDead reports whether the player death has been observed and not yet restored
func (w *World) PlayerDead() bool { return w.playerDead }
