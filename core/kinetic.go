package core

import "github.com/lixenwraith/actcore/vmath"

// Kinetic holds sub-pixel position and per-frame velocity, both Q23.8
type Kinetic struct {
	// X and Y pixel components are the on-screen location; the low byte accumulates fractional movement
	X, Y vmath.Fixed
	// VelX and VelY are displacement per frame
	VelX, VelY vmath.Fixed
}

// Pixel returns the integer pixel position
func (k *Kinetic) Pixel() (x, y int) {
	return k.X.Int(), k.Y.Int()
}
