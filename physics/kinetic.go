package physics

import (
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/vmath"
)

// Integrate performs unconstrained integration: p = p + v, returns the new pixel position
func Integrate(k *core.Kinetic) (x, y int) {
	k.X += k.VelX
	k.Y += k.VelY
	return k.X.Int(), k.Y.Int()
}

// SetImpulse overrides velocity (hard redirect/stun)
func SetImpulse(k *core.Kinetic, vx, vy vmath.Fixed) {
	k.VelX = vx
	k.VelY = vy
}

// CapDisplacement limits each velocity axis to the maximum per-frame displacement
// Returns true if either axis was clamped
func CapDisplacement(k *core.Kinetic) bool {
	var cx, cy bool
	k.VelX, cx = vmath.ClampMagnitude(k.VelX, parameter.MaxDisplacement)
	k.VelY, cy = vmath.ClampMagnitude(k.VelY, parameter.MaxDisplacement)
	return cx || cy
}

// SetPixel places the kinetic on a pixel with the sub-pixel cleared
func SetPixel(k *core.Kinetic, x, y int) {
	k.X = vmath.FromInt(x)
	k.Y = vmath.FromInt(y)
}
