package parameter

// Entity table limits
const (
	// EntityCapacity is the fixed number of slots, player included
	EntityCapacity = 32

	// ScratchWords is the number of private behavior words per slot
	ScratchWords = 4

	// HealthIndestructible marks an entity that ignores all damage
	HealthIndestructible = 0xFFFF
)

// Frame timing
const (
	// DefaultFrameRate matches an NTSC display
	DefaultFrameRate = 60

	// MinFrameRate and MaxFrameRate bound the configurable rate
	MinFrameRate = 1
	MaxFrameRate = 240
)
