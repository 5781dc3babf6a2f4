package engine

import (
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/physics"
	"github.com/lixenwraith/actcore/sprite"
)

// SpriteSink receives one call per visible entity, in draw order
type SpriteSink interface {
	DrawSprite(slot core.Slot, frame sprite.FrameID, screenX, screenY int)
}

// SoundQueue accepts fire-and-forget sound effect requests
type SoundQueue interface {
	QueueSoundEffect(id core.SoundID)
}

// FrameBoxes supplies frame-relative combat rectangles for a visual frame
type FrameBoxes interface {
	Boxes(frame sprite.FrameID) (hit, hurt core.Rect)
}

// Buttons is the player's held input for the current frame
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonAttack
	ButtonFire
)

func (b Buttons) Has(mask Buttons) bool { return b&mask != 0 }

// PlayerInput is sampled by the player behavior once per frame
type PlayerInput interface {
	Buttons() Buttons
}

// Hooks receives gameplay notifications that belong to subsystems outside the core
type Hooks interface {
	// EntityHurt fires after damage lands, for hurt animation and screen effects
	EntityHurt(slot core.Slot, damage uint16)
	// PlayerDied fires once when player health reaches zero
	PlayerDied()
	// RoomCleared fires when the last enemy of the room is reaped
	RoomCleared()
	// SwitchToggled fires when a switch entity changes state
	SwitchToggled(slot core.Slot, on bool)
}

// NopHooks ignores every notification; embed it to implement a subset
type NopHooks struct{}

func (NopHooks) EntityHurt(core.Slot, uint16)  {}
func (NopHooks) PlayerDied()                   {}
func (NopHooks) RoomCleared()                  {}
func (NopHooks) SwitchToggled(core.Slot, bool) {}

// Collaborators bundles the boundary contracts the core calls into
// Only Tiles is required
type Collaborators struct {
	Tiles   physics.TileMap
	Frames  FrameBoxes
	Sprites SpriteSink
	Sounds  SoundQueue
	Input   PlayerInput
	Hooks   Hooks
}

type nopSink struct{}

func (nopSink) DrawSprite(core.Slot, sprite.FrameID, int, int) {}

type nopSounds struct{}

func (nopSounds) QueueSoundEffect(core.SoundID) {}

type noInput struct{}

func (noInput) Buttons() Buttons { return 0 }

func (c *Collaborators) withDefaults() {
	if c.Frames == nil {
		c.Frames = sprite.DefaultCatalog()
	}
	if c.Sprites == nil {
		c.Sprites = nopSink{}
	}
	if c.Sounds == nil {
		c.Sounds = nopSounds{}
	}
	if c.Input == nil {
		c.Input = noInput{}
	}
	if c.Hooks == nil {
		c.Hooks = NopHooks{}
	}
}
