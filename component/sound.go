package component

import "github.com/lixenwraith/actcore/core"

// Sound effect ids understood by the audio subsystem
const (
	SoundHurt core.SoundID = iota + 1
	SoundDeath
	SoundBolt
	SoundArrow
	SoundSwitch
	SoundPlayerHurt

	SoundCount
)
