package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/logger"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/room"
)

// hurtFlashFrames is how long the HUD marks a player hit
const hurtFlashFrames = 16

// game owns the room progression around the world
// Hooks fire inside World.Frame, so anything that rebuilds the table is deferred to afterFrame
type game struct {
	engine.NopHooks

	lib   *room.Library
	world *engine.World
	inst  *room.Instance
	log   *logrus.Entry

	restart   bool
	hurtFlash int
	rooms     int
}

func newGame(lib *room.Library) *game {
	return &game{lib: lib, log: logger.Component("game")}
}

func (g *game) EntityHurt(slot core.Slot, damage uint16) {
	if slot == core.PlayerSlot {
		g.hurtFlash = hurtFlashFrames
	}
}

func (g *game) PlayerDied() {
	g.restart = true
}

func (g *game) RoomCleared() {
	if g.inst.HasDoors() {
		g.inst.OpenDoors()
		g.log.Debug("Doors opened")
	}
}

func (g *game) SwitchToggled(_ core.Slot, on bool) {
	open := g.inst.ToggleDoors()
	g.log.WithFields(logrus.Fields{"switch": on, "doors_open": open}).Debug("Doors toggled")
}

// load instantiates a room without touching the world, for building the world around it
func (g *game) load(name string) error {
	inst, err := g.lib.Instance(name)
	if err != nil {
		return err
	}
	g.inst = inst
	return nil
}

// enter swaps the world onto a fresh instance of the named room
func (g *game) enter(name string) error {
	if err := g.load(name); err != nil {
		return err
	}
	report, err := room.Populate(g.world, g.inst)
	if err != nil {
		return errors.Wrapf(err, "populate %s", name)
	}
	g.rooms++
	g.log.WithFields(logrus.Fields{
		"room":     name,
		"spawned":  report.Spawned,
		"rejected": len(report.Rejected),
	}).Info("Entered room")
	return nil
}

// afterFrame applies progression decided during the frame: restart on death, transition through open doors
func (g *game) afterFrame() error {
	if g.hurtFlash > 0 {
		g.hurtFlash--
	}

	if g.restart {
		g.restart = false
		g.world.RestorePlayer(engine.PlayerState{})
		return g.enter(g.inst.Definition().Name)
	}

	next := g.inst.Definition().Next
	if next == "" || !g.inst.DoorsOpen() {
		return nil
	}
	x, y := g.world.PixelPosition(core.PlayerSlot)
	if g.inst.TileAtPixel(x, y) != room.TileDoor {
		return nil
	}

	carry := g.world.PlayerState()
	if err := g.enter(next); err != nil {
		return err
	}
	g.world.RestorePlayer(carry)
	return nil
}

// camera centers the player, clamped to the room edges
func (g *game) camera() (x, y int) {
	px, py := g.world.PixelPosition(core.PlayerSlot)
	tw, th := g.inst.Size()
	return cameraAxis(px, tw<<parameter.TileShift, parameter.ScreenWidth),
		cameraAxis(py, th<<parameter.TileShift, parameter.ScreenHeight)
}

func cameraAxis(p, roomSize, screen int) int {
	if roomSize <= screen {
		return 0
	}
	c := p - screen/2
	if c < 0 {
		return 0
	}
	if c > roomSize-screen {
		return roomSize - screen
	}
	return c
}

func (g *game) hud() string {
	hp := fmt.Sprintf("HP %d", g.world.Health(core.PlayerSlot))
	if g.hurtFlash > 0 && g.hurtFlash&2 != 0 {
		hp = "HP --"
	}
	doors := "shut"
	if g.inst.DoorsOpen() {
		doors = "open"
	}
	return fmt.Sprintf("%s  room %s  enemies %d  doors %s  frame %d",
		hp, g.inst.Definition().Name, g.world.EnemyCount(), doors, g.world.FrameCount())
}
