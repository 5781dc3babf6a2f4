package core

import "fmt"

// Slot is an index into the fixed-capacity entity table
// Slot 0 is always the player
type Slot uint8

// PlayerSlot is the reserved player row
const PlayerSlot Slot = 0

// Handle is a generation-checked reference to a slot
// A handle stays valid only while its slot holds the same entity; despawn bumps the generation
type Handle struct {
	Slot       Slot
	Generation uint16
}

// NilHandle refers to nothing; generation 0 is never issued to a live entity
var NilHandle = Handle{}

// IsNil reports whether the handle was never assigned
func (h Handle) IsNil() bool { return h.Generation == 0 }

func (h Handle) String() string {
	if h.IsNil() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.Slot, h.Generation)
}
