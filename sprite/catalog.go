package sprite

import "github.com/lixenwraith/actcore/core"

// Catalog maps every FrameID to its frame data
type Catalog [FrameCount]Frame

var defaultCatalog = Catalog{
	FrameNone:       {Glyph: ' '},
	FramePlayerIdle: {Glyph: '@', Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8}},
	FramePlayerAttackRight: {
		Glyph:   '@',
		Hitbox:  core.Rect{X: 4, Y: -3, W: 10, H: 6},
		Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8},
	},
	FramePlayerAttackLeft: {
		Glyph:   '@',
		Hitbox:  core.Rect{X: -14, Y: -3, W: 10, H: 6},
		Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8},
	},
	FramePlayerAttackDown: {
		Glyph:   '@',
		Hitbox:  core.Rect{X: -3, Y: 4, W: 6, H: 10},
		Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8},
	},
	FramePlayerAttackUp: {
		Glyph:   '@',
		Hitbox:  core.Rect{X: -3, Y: -14, W: 6, H: 10},
		Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8},
	},
	FrameBolt: {Glyph: '*', Hitbox: core.Rect{X: -2, Y: -2, W: 4, H: 4}},
	FrameWalker: {
		Glyph:   'w',
		Hitbox:  core.Rect{X: -3, Y: -3, W: 6, H: 6},
		Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8},
	},
	FrameArcher:    {Glyph: 'A', Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8}},
	FrameArrow:     {Glyph: '-', Hitbox: core.Rect{X: -2, Y: -1, W: 4, H: 2}},
	FrameSpark:     {Glyph: '+'},
	FrameShadow:    {Glyph: '_'},
	FrameSwitchOff: {Glyph: 'o', Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8}},
	FrameSwitchOn:  {Glyph: 'O', Hurtbox: core.Rect{X: -4, Y: -4, W: 8, H: 8}},
}

// DefaultCatalog returns a copy of the built-in frame table
func DefaultCatalog() *Catalog {
	c := defaultCatalog
	return &c
}

// Boxes returns the frame-relative hitbox and hurtbox; unknown frames have neither
func (c *Catalog) Boxes(f FrameID) (hit, hurt core.Rect) {
	if f >= FrameCount {
		return core.Rect{}, core.Rect{}
	}
	return c[f].Hitbox, c[f].Hurtbox
}

// Glyph returns the display rune for a frame
func (c *Catalog) Glyph(f FrameID) rune {
	if f >= FrameCount {
		return '?'
	}
	return c[f].Glyph
}
