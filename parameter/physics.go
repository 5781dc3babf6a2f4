package parameter

import "github.com/lixenwraith/actcore/vmath"

// Tile geometry
const (
	// TileShift converts pixels to tiles by arithmetic shift
	TileShift = 3
	TileSize  = 1 << TileShift
)

// MaxDisplacementPixels is the largest per-axis move a single frame may take without skipping a tile
const MaxDisplacementPixels = TileSize - 1

// Pre-computed Q23.8 movement constants
var (
	MaxDisplacement = vmath.FromInt(MaxDisplacementPixels)

	PlayerSpeed = vmath.FromFloat(1.5)
	BoltSpeed   = vmath.FromInt(3)
	ArrowSpeed  = vmath.FromInt(2)
	WalkerSpeed = vmath.FromInt(1)
	SparkDrift  = vmath.FromFloat(0.75)

	// SparkDrag scales spark velocity every frame
	SparkDrag = vmath.FromFloat(0.875)
)
