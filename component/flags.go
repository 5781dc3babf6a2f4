package component

// MovementState records which sides hit terrain during the last MoveAndCollide
// Rewritten in full on every call
type MovementState uint8

const (
	CollideLeft MovementState = 1 << iota
	CollideRight
	CollideUp
	CollideDown

	CollideHorizontal = CollideLeft | CollideRight
	CollideVertical   = CollideUp | CollideDown
	CollideAny        = CollideHorizontal | CollideVertical
)

// Has reports whether any bit of mask is set
func (m MovementState) Has(mask MovementState) bool { return m&mask != 0 }

// Contact records combat overlaps from the last combat phase; only combat writes it
type Contact uint8

const (
	// ContactHit means this slot's hitbox landed on an opposing hurtbox
	ContactHit Contact = 1 << iota
	// ContactHurt means this slot's hurtbox was struck, whether or not damage applied
	ContactHurt
)

func (c Contact) Has(mask Contact) bool { return c&mask != 0 }

// Team decides which hitboxes test which hurtboxes
type Team uint8

const (
	TeamNeutral Team = iota
	TeamPlayer
	TeamEnemy
)

// Opposes reports whether an attacker on team t can strike a target on team other
func (t Team) Opposes(other Team) bool {
	return t != TeamNeutral && other != TeamNeutral && t != other
}

// DeathBehavior runs once when an entity is reaped with zero health
type DeathBehavior uint8

const (
	DeathNone DeathBehavior = iota
	// DeathBurst spawns sparks at the death position and queues the death sound
	DeathBurst
)
