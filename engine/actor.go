package engine

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/physics"
	"github.com/lixenwraith/actcore/sprite"
	"github.com/lixenwraith/actcore/vmath"
)

// Actor is a behavior's view of the world, bound to one slot
// Mutators touch only the bound slot; reads of other entities go through handles
type Actor struct {
	w    *World
	slot core.Slot
}

func (a Actor) Slot() core.Slot            { return a.slot }
func (a Actor) Handle() core.Handle        { return a.w.HandleOf(a.slot) }
func (a Actor) Type() component.EntityType { return a.w.typ[a.slot] }
func (a Actor) FrameCount() uint64         { return a.w.frameCount }

// --- Kinematics ---

func (a Actor) Position() (x, y vmath.Fixed) { return a.w.kin[a.slot].X, a.w.kin[a.slot].Y }
func (a Actor) PixelPosition() (x, y int)    { return a.w.kin[a.slot].Pixel() }

// SetPosition places the entity on a pixel, clearing the sub-pixel
func (a Actor) SetPosition(x, y int) { physics.SetPixel(&a.w.kin[a.slot], x, y) }

func (a Actor) Velocity() (vx, vy vmath.Fixed) { return a.w.kin[a.slot].VelX, a.w.kin[a.slot].VelY }

func (a Actor) SetVelocity(vx, vy vmath.Fixed) { physics.SetImpulse(&a.w.kin[a.slot], vx, vy) }

// MoveAndCollide runs the tile resolver for this entity and records the resulting movement state
func (a Actor) MoveAndCollide() component.MovementState {
	state, clamped := physics.MoveAndCollide(&a.w.kin[a.slot], a.w.box[a.slot], a.w.tiles)
	if clamped {
		a.w.statClamped.Add(1)
	}
	a.w.movement[a.slot] = state
	return state
}

// Integrate moves without tile checks, for effects and projectiles that ignore walls
func (a Actor) Integrate() (x, y int) { return physics.Integrate(&a.w.kin[a.slot]) }

// Movement is the state left by the last MoveAndCollide
func (a Actor) Movement() component.MovementState { return a.w.movement[a.slot] }

// --- Per-slot state ---

// Scratch returns behavior-private word i, 0 when i is out of range
func (a Actor) Scratch(i int) int16 {
	if i < 0 || i >= parameter.ScratchWords {
		return 0
	}
	return a.w.scratch[a.slot][i]
}

func (a Actor) SetScratch(i int, v int16) {
	if i < 0 || i >= parameter.ScratchWords {
		return
	}
	a.w.scratch[a.slot][i] = v
}

func (a Actor) Frame() sprite.FrameID     { return a.w.frame[a.slot] }
func (a Actor) SetFrame(f sprite.FrameID) { a.w.frame[a.slot] = f }

func (a Actor) ZPriority() int8     { return a.w.z[a.slot] }
func (a Actor) SetZPriority(z int8) { a.w.z[a.slot] = z }

func (a Actor) Health() uint16             { return a.w.health[a.slot] }
func (a Actor) Invincible() bool           { return a.w.invincible[a.slot] > 0 }
func (a Actor) Contact() component.Contact { return a.w.contact[a.slot] }
func (a Actor) Owner() core.Handle         { return a.w.owner[a.slot] }

// --- Interaction with the rest of the world ---

// Spawn creates a child entity owned by this one; failures are absorbed into telemetry
func (a Actor) Spawn(x, y int, t component.EntityType, param uint8) (core.Handle, bool) {
	h, err := a.w.spawn(x, y, t, param, a.Handle())
	return h, err == nil
}

// PlayerPosition returns the player's pixel position
func (a Actor) PlayerPosition() (x, y int) { return a.w.kin[core.PlayerSlot].Pixel() }

// PositionOf returns the pixel position of the entity h refers to, false when h is stale
func (a Actor) PositionOf(h core.Handle) (x, y int, ok bool) {
	if !a.w.Valid(h) {
		return 0, 0, false
	}
	x, y = a.w.kin[h.Slot].Pixel()
	return x, y, true
}

func (a Actor) Input() Buttons { return a.w.input.Buttons() }

func (a Actor) QueueSound(id core.SoundID) {
	if id == core.SoundNone {
		return
	}
	a.w.sounds.QueueSoundEffect(id)
}

func (a Actor) Rand() *vmath.FastRand { return a.w.rng }
func (a Actor) Hooks() Hooks          { return a.w.hooks }

// DrawFrame emits the current frame at the entity's screen position
func (a Actor) DrawFrame(sink SpriteSink) {
	x, y := a.w.kin[a.slot].Pixel()
	sink.DrawSprite(a.slot, a.w.frame[a.slot], x-a.w.cameraX, y-a.w.cameraY)
}

// --- Player placement across rooms ---

// PlayerState is the part of the player carried between rooms
type PlayerState struct {
	Health uint16
}

// PlacePlayer moves the player to pixel (x, y) and stops it
func (w *World) PlacePlayer(x, y int) {
	k := &w.kin[core.PlayerSlot]
	physics.SetPixel(k, x, y)
	physics.SetImpulse(k, 0, 0)
	w.movement[core.PlayerSlot] = 0
}

func (w *World) PlayerState() PlayerState {
	return PlayerState{Health: w.health[core.PlayerSlot]}
}

// RestorePlayer resets the player row and reapplies carried state
func (w *World) RestorePlayer(s PlayerState) {
	x, y := w.kin[core.PlayerSlot].Pixel()
	w.resetSlot(core.PlayerSlot, component.TypePlayer, x, y)
	w.behaviors[component.TypePlayer].Init(Actor{w: w, slot: core.PlayerSlot}, 0)
	if s.Health > 0 {
		w.health[core.PlayerSlot] = s.Health
	}
	w.playerDead = false
}
