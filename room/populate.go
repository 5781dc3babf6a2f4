package room

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/logger"
)

// Rejection records a spawn-list entry that did not make it into the table
type Rejection struct {
	Index int
	Spec  EntitySpec
	Err   error
}

// PopulateReport summarizes one room population
type PopulateReport struct {
	Spawned  int
	Rejected []Rejection
}

// Populate swaps world onto inst: every non-player entity is cleared, the tile map replaced,
// the player placed at the entry point and the spawn list spawned in order
// A rejected spawn is reported and skipped; the rest of the list still spawns
func Populate(w *engine.World, inst *Instance) (PopulateReport, error) {
	var report PopulateReport
	def := inst.Definition()

	w.Clear()
	if err := w.SetTiles(inst); err != nil {
		return report, err
	}
	w.PlacePlayer(def.Player.X, def.Player.Y)

	log := logger.Component("room").WithField("room", def.Name)
	for i, spec := range def.Entities {
		t, err := component.ParseEntityType(spec.Type)
		if err == nil {
			_, err = w.Spawn(spec.X, spec.Y, t, spec.Param)
		}
		if err != nil {
			report.Rejected = append(report.Rejected, Rejection{Index: i, Spec: spec, Err: err})
			log.WithFields(logrus.Fields{
				"index": i,
				"type":  spec.Type,
			}).WithError(err).Warn("Room spawn rejected")
			continue
		}
		report.Spawned++
	}

	log.WithFields(logrus.Fields{
		"spawned":  report.Spawned,
		"rejected": len(report.Rejected),
		"enemies":  w.EnemyCount(),
	}).Info("Room populated")
	return report, nil
}
