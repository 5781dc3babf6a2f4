// Package sprite holds the per-frame data the animation pipeline would otherwise bake into ROM:
// a display glyph plus the combat rectangles attached to each visual frame.
package sprite

import "github.com/lixenwraith/actcore/core"

// FrameID selects a visual frame; combat boxes follow the frame, not the entity type
type FrameID uint8

const (
	FrameNone FrameID = iota
	FramePlayerIdle
	FramePlayerAttackRight
	FramePlayerAttackLeft
	FramePlayerAttackDown
	FramePlayerAttackUp
	FrameBolt
	FrameWalker
	FrameArcher
	FrameArrow
	FrameSpark
	FrameShadow
	FrameSwitchOff
	FrameSwitchOn

	FrameCount
)

// Frame is one catalog entry; rectangles are relative to the entity position
type Frame struct {
	Glyph   rune
	Hitbox  core.Rect
	Hurtbox core.Rect
}
