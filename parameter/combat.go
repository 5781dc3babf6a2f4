package parameter

// Invincibility
const (
	// InvincibilityFrames is the default damage cooldown after a hit
	InvincibilityFrames = 32

	// MaxInvincibilityFrames bounds the configurable cooldown (counter is a byte)
	MaxInvincibilityFrames = 255
)

// Player attack timing (frames)
const (
	PlayerAttackFrames   = 12
	PlayerFireCooldown   = 20
	ProjectileLifetime   = 90
	ArcherBaseInterval   = 60
	ArcherIntervalStep   = 30
	ArcherIntervalLevels = 4
)

// ArcherRange is the distance in pixels beyond which an archer holds its fire
const ArcherRange = 96

// Death burst
const (
	// DeathSparkCount is the number of sparks spawned by a killed entity
	DeathSparkCount = 3

	// SparkLifetime is the spark lifetime passed as spawn parameter
	SparkLifetime = 20

	// SparkMaxLifetime clamps the spark parameter
	SparkMaxLifetime = 60
)
