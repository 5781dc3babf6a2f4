package room

// Tile is the terrain kind of one grid cell
type Tile uint8

const (
	TileFloor Tile = iota
	TileWall
	TileDoor
)

func tileOfGlyph(g byte) (Tile, bool) {
	switch g {
	case '.', ' ':
		return TileFloor, true
	case '#':
		return TileWall, true
	case 'D':
		return TileDoor, true
	default:
		return 0, false
	}
}
