package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/actcore/component"
)

// Sentinel errors; callers match with errors.Is
var (
	// ErrTableFull is returned by Spawn when every slot is active; the request is dropped
	ErrTableFull = errors.New("entity table full")

	// ErrUnknownType is returned by Spawn for a type outside the closed set
	ErrUnknownType = component.ErrUnknownType

	// ErrPlayerType is returned when a second player is requested; slot 0 is the only player
	ErrPlayerType = errors.New("player type cannot be spawned")

	// ErrPlayerSlot is returned when the generic despawn path is asked to remove the player
	ErrPlayerSlot = errors.New("player slot cannot be despawned")

	// ErrNotActive is returned for slots outside the active range
	ErrNotActive = errors.New("slot not active")

	// ErrStaleHandle is returned when a handle's generation no longer matches its slot
	ErrStaleHandle = errors.New("stale entity handle")

	// ErrMissingBehavior is returned by New when the behavior table has a hole
	ErrMissingBehavior = errors.New("behavior table missing entry")

	// ErrNoTileMap is returned by New without a tile-property source
	ErrNoTileMap = errors.New("tile map required")
)
