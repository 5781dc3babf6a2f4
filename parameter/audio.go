package parameter

import "time"

// Sound queue
const (
	// SoundQueueDepth is the default number of effects accepted per drain
	SoundQueueDepth = 8

	// AudioSampleRate is the synthesis sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer size
	AudioBufferDuration = 50 * time.Millisecond
)
