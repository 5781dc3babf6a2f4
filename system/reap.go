package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/logger"
	"github.com/lixenwraith/actcore/parameter"
)

// ReapSystem reclaims dead and finished entities after combat has settled health for the frame
type ReapSystem struct {
	log *logrus.Entry
}

func NewReapSystem() engine.System {
	return &ReapSystem{log: logger.Component("reap")}
}

func (s *ReapSystem) Name() string  { return "reap" }
func (s *ReapSystem) Priority() int { return parameter.PriorityReap }

func (s *ReapSystem) Update(w *engine.World) {
	stats := w.Reap()
	if stats.Removed == 0 {
		return
	}
	s.log.WithFields(logrus.Fields{
		"removed": stats.Removed,
		"killed":  stats.Killed,
		"active":  w.ActiveCount(),
	}).Debug("Reaped")
}
