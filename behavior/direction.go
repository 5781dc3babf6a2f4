package behavior

import (
	"github.com/lixenwraith/actcore/vmath"
)

// Direction is the four-way facing shared by the player, projectiles and spawn parameters
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
	DirDown
	DirUp
)

// directionOf maps a spawn parameter to a direction; out-of-range values face right
func directionOf(param uint8) Direction {
	if param > uint8(DirUp) {
		return DirRight
	}
	return Direction(param)
}

// Velocity scales the unit vector of d by speed
func (d Direction) Velocity(speed vmath.Fixed) (vx, vy vmath.Fixed) {
	switch d {
	case DirLeft:
		return -speed, 0
	case DirDown:
		return 0, speed
	case DirUp:
		return 0, -speed
	default:
		return speed, 0
	}
}

// toward picks the dominant axis from (dx, dy); ties favor horizontal
func toward(dx, dy int) Direction {
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	if adx >= ady {
		if dx < 0 {
			return DirLeft
		}
		return DirRight
	}
	if dy < 0 {
		return DirUp
	}
	return DirDown
}
