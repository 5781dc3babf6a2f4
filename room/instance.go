package room

import (
	"github.com/lixenwraith/actcore/parameter"
)

// Instance is one visit to a room: its own tile grid and door state
// It implements physics.TileMap; tiles outside the grid are solid, doors are solid until opened
type Instance struct {
	def       *Definition
	tiles     [][]Tile
	width     int
	height    int
	doorsOpen bool
}

func newInstance(def *Definition) *Instance {
	w, h := def.Size()
	inst := &Instance{
		def:    def,
		tiles:  make([][]Tile, h),
		width:  w,
		height: h,
	}
	for y, row := range def.Tiles {
		inst.tiles[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			t, _ := tileOfGlyph(row[x])
			inst.tiles[y][x] = t
		}
	}
	return inst
}

// IsSolid answers the resolver's tile query
func (r *Instance) IsSolid(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= r.width || ty >= r.height {
		return true
	}
	switch r.tiles[ty][tx] {
	case TileWall:
		return true
	case TileDoor:
		return !r.doorsOpen
	default:
		return false
	}
}

// Tile returns the tile kind at (tx, ty); outside the grid reads as wall
func (r *Instance) Tile(tx, ty int) Tile {
	if tx < 0 || ty < 0 || tx >= r.width || ty >= r.height {
		return TileWall
	}
	return r.tiles[ty][tx]
}

// TileAtPixel returns the tile under pixel (x, y)
func (r *Instance) TileAtPixel(x, y int) Tile {
	return r.Tile(x>>parameter.TileShift, y>>parameter.TileShift)
}

func (r *Instance) Size() (w, h int)        { return r.width, r.height }
func (r *Instance) Definition() *Definition { return r.def }
func (r *Instance) DoorsOpen() bool         { return r.doorsOpen }

func (r *Instance) OpenDoors() { r.doorsOpen = true }

// ToggleDoors flips the door state and returns the new state
func (r *Instance) ToggleDoors() bool {
	r.doorsOpen = !r.doorsOpen
	return r.doorsOpen
}

// HasDoors reports whether any door tile exists
func (r *Instance) HasDoors() bool {
	for _, row := range r.tiles {
		for _, t := range row {
			if t == TileDoor {
				return true
			}
		}
	}
	return false
}
