package physics

import "github.com/lixenwraith/actcore/core"

// Overlap tests two absolute rectangles for intersection; empty rectangles never overlap
func Overlap(a, b core.Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
