package physics

import (
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/vmath"
)

// TileMap answers tile-property queries in tile coordinates
// Implementations must report coordinates outside the map as solid
type TileMap interface {
	IsSolid(tx, ty int) bool
}

// tileOf converts a pixel coordinate to a tile coordinate, flooring negatives
func tileOf(px int) int { return px >> parameter.TileShift }

// MoveAndCollide moves k by its velocity against tiles, X axis first, then Y
// Each axis probes the leading edge of box at the prospective position; on a solid tile the
// position snaps so the edge rests on the tile boundary and the matching flag is set
// The returned state replaces any previous state; clamped reports a velocity cap
func MoveAndCollide(k *core.Kinetic, box core.HalfBox, tiles TileMap) (state component.MovementState, clamped bool) {
	clamped = CapDisplacement(k)

	if k.VelX != 0 {
		state |= moveX(k, box, tiles)
	}
	if k.VelY != 0 {
		state |= moveY(k, box, tiles)
	}
	return state, clamped
}

func moveX(k *core.Kinetic, box core.HalfBox, tiles TileMap) component.MovementState {
	next := k.X + k.VelX
	px := next.Int()
	py := k.Y.Int()

	top := tileOf(py - box.HalfH)
	bottom := tileOf(py + box.HalfH - 1)
	if box.HalfH == 0 {
		bottom = top
	}

	if k.VelX > 0 {
		edge := px + box.HalfW - 1
		if box.HalfW == 0 {
			edge = px
		}
		tx := tileOf(edge)
		if columnSolid(tiles, tx, top, bottom) {
			snap := tx<<parameter.TileShift - box.HalfW
			if box.HalfW == 0 {
				snap--
			}
			// Compared in pixels so a flush stop still clears the sub-pixel; an embedded box holds
			if snap >= k.X.Int() {
				k.X = vmath.FromInt(snap)
			}
			return component.CollideRight
		}
	} else {
		edge := px - box.HalfW
		tx := tileOf(edge)
		if columnSolid(tiles, tx, top, bottom) {
			snap := (tx+1)<<parameter.TileShift + box.HalfW
			if snap <= k.X.Int() {
				k.X = vmath.FromInt(snap)
			}
			return component.CollideLeft
		}
	}

	k.X = next
	return 0
}

func moveY(k *core.Kinetic, box core.HalfBox, tiles TileMap) component.MovementState {
	next := k.Y + k.VelY
	px := k.X.Int()
	py := next.Int()

	left := tileOf(px - box.HalfW)
	right := tileOf(px + box.HalfW - 1)
	if box.HalfW == 0 {
		right = left
	}

	if k.VelY > 0 {
		edge := py + box.HalfH - 1
		if box.HalfH == 0 {
			edge = py
		}
		ty := tileOf(edge)
		if rowSolid(tiles, ty, left, right) {
			snap := ty<<parameter.TileShift - box.HalfH
			if box.HalfH == 0 {
				snap--
			}
			if snap >= k.Y.Int() {
				k.Y = vmath.FromInt(snap)
			}
			return component.CollideDown
		}
	} else {
		edge := py - box.HalfH
		ty := tileOf(edge)
		if rowSolid(tiles, ty, left, right) {
			snap := (ty+1)<<parameter.TileShift + box.HalfH
			if snap <= k.Y.Int() {
				k.Y = vmath.FromInt(snap)
			}
			return component.CollideUp
		}
	}

	k.Y = next
	return 0
}

func columnSolid(tiles TileMap, tx, top, bottom int) bool {
	for ty := top; ty <= bottom; ty++ {
		if tiles.IsSolid(tx, ty) {
			return true
		}
	}
	return false
}

func rowSolid(tiles TileMap, ty, left, right int) bool {
	for tx := left; tx <= right; tx++ {
		if tiles.IsSolid(tx, ty) {
			return true
		}
	}
	return false
}
