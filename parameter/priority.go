package parameter

// System execution priorities (lower runs first)
// Behavior dispatch always runs before every system
const (
	PriorityCombat = 10
	PriorityReap   = 20 // After combat, so kills land the same frame
	PriorityDraw   = 30 // After reap, removed entities never draw
)

// Z-priority determines draw order, lower draws first (underneath)
const (
	ZShadow     int8 = -16
	ZFloor      int8 = 0
	ZActor      int8 = 16
	ZProjectile int8 = 24
	ZPlayer     int8 = 32
	ZEffect     int8 = 48
)
