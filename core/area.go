package core

// Rect is an axis-aligned rectangle, X/Y top-left inclusive, W/H exclusive extent
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle covers no pixels
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Offset translates a frame-relative rectangle to absolute coordinates
func (r Rect) Offset(x, y int) Rect {
	return Rect{X: r.X + x, Y: r.Y + y, W: r.W, H: r.H}
}

// Contains checks if point is within rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// HalfBox is a terrain hitbox centered on the entity position
// The box spans [x-HalfW, x+HalfW) horizontally and [y-HalfH, y+HalfH) vertically
type HalfBox struct {
	HalfW, HalfH int
}
