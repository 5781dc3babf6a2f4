package parameter

// Room limits
const (
	// MaxRoomTiles bounds room width and height
	MaxRoomTiles = 64

	// ScreenWidth and ScreenHeight are the visible playfield in pixels
	ScreenWidth  = 256
	ScreenHeight = 224
)
