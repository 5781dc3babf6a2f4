package vmath

import "math"

// Q23.8 fixed point: the low byte is the sub-pixel, the rest is the signed pixel
const (
	Shift = 8
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

// Fixed is a signed Q23.8 fixed-point value
// Integer extraction uses arithmetic right shift, so negative values floor toward -inf
type Fixed int32

// --- Conversion ---

func FromInt(i int) Fixed       { return Fixed(int32(i) << Shift) }
func FromFloat(f float64) Fixed { return Fixed(math.Floor(f * Scale)) }

// FromParts builds a value from a pixel and a sub-pixel byte
func FromParts(pixel int, sub uint8) Fixed {
	return FromInt(pixel) | Fixed(sub)
}

// Int returns the pixel component, floored
func (f Fixed) Int() int { return int(int32(f) >> Shift) }

// Frac returns the sub-pixel component in [0, Scale)
func (f Fixed) Frac() uint8 { return uint8(int32(f) & Mask) }

// --- Arithmetic ---

// Mul multiplies two Q23.8 values, truncating with arithmetic shift
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> Shift)
}

// ClampMagnitude limits |x| to max, returns true if clamped
func ClampMagnitude(x, max Fixed) (Fixed, bool) {
	if x > max {
		return max, true
	}
	if x < -max {
		return -max, true
	}
	return x, false
}

// DistanceApprox uses alpha max plus beta min (error ~4%), integer pixels
func DistanceApprox(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}
	// dist = max + 0.375*min
	return dx + (dy >> 2) + (dy >> 3)
}
