package core

// SoundID identifies a sound effect in the audio subsystem's table
type SoundID uint8

// SoundNone is never queued
const SoundNone SoundID = 0
