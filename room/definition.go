// Package room loads room files and turns them into tile maps and spawn lists
package room

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/parameter"
)

var (
	ErrEmptyRoom      = errors.New("room has no tiles")
	ErrRaggedRows     = errors.New("room rows differ in width")
	ErrRoomTooLarge   = errors.New("room exceeds maximum size")
	ErrUnknownGlyph   = errors.New("unknown tile glyph")
	ErrOutsideRoom    = errors.New("position outside room")
	ErrNotSpawnable   = errors.New("entity type cannot be placed in a room")
	ErrRoomNotFound   = errors.New("room not found")
	ErrInvalidLibrary = errors.New("room directory is not usable")
)

// Point is a pixel position
type Point struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

// EntitySpec is one entry of a room's ordered spawn list
type EntitySpec struct {
	X     int    `mapstructure:"x"`
	Y     int    `mapstructure:"y"`
	Type  string `mapstructure:"type"`
	Param uint8  `mapstructure:"param"`
}

// Definition is a room as authored: tile rows, player entry point and spawn list
type Definition struct {
	Name     string       `mapstructure:"name"`
	Next     string       `mapstructure:"next"`
	Tiles    []string     `mapstructure:"tiles"`
	Player   Point        `mapstructure:"player"`
	Entities []EntitySpec `mapstructure:"entities"`
}

// Size returns the room size in tiles
func (d *Definition) Size() (w, h int) {
	if len(d.Tiles) == 0 {
		return 0, 0
	}
	return len(d.Tiles[0]), len(d.Tiles)
}

// Validate checks the grid shape, glyphs, entity types and that every position lies inside the room
func (d *Definition) Validate() error {
	if len(d.Tiles) == 0 || len(d.Tiles[0]) == 0 {
		return errors.Wrapf(ErrEmptyRoom, "room %q", d.Name)
	}
	w, h := d.Size()
	if w > parameter.MaxRoomTiles || h > parameter.MaxRoomTiles {
		return errors.Wrapf(ErrRoomTooLarge, "room %q is %dx%d, max %d", d.Name, w, h, parameter.MaxRoomTiles)
	}
	for y, row := range d.Tiles {
		if len(row) != w {
			return errors.Wrapf(ErrRaggedRows, "room %q row %d has width %d, want %d", d.Name, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			if _, ok := tileOfGlyph(row[x]); !ok {
				return errors.Wrapf(ErrUnknownGlyph, "room %q glyph %q at (%d,%d)", d.Name, row[x], x, y)
			}
		}
	}

	if !d.inside(d.Player.X, d.Player.Y) {
		return errors.Wrapf(ErrOutsideRoom, "room %q player at (%d,%d)", d.Name, d.Player.X, d.Player.Y)
	}
	for i, e := range d.Entities {
		t, err := component.ParseEntityType(e.Type)
		if err != nil {
			return errors.Wrapf(err, "room %q entity %d", d.Name, i)
		}
		if t == component.TypePlayer {
			return errors.Wrapf(ErrNotSpawnable, "room %q entity %d: %s", d.Name, i, t)
		}
		if !d.inside(e.X, e.Y) {
			return errors.Wrapf(ErrOutsideRoom, "room %q entity %d at (%d,%d)", d.Name, i, e.X, e.Y)
		}
	}
	return nil
}

func (d *Definition) inside(px, py int) bool {
	w, h := d.Size()
	return px >= 0 && py >= 0 && px < w<<parameter.TileShift && py < h<<parameter.TileShift
}

// normalize trims authoring noise: trailing carriage returns and a lowercase type name
func (d *Definition) normalize() {
	for i, row := range d.Tiles {
		d.Tiles[i] = strings.TrimRight(row, "\r")
	}
	for i := range d.Entities {
		d.Entities[i].Type = strings.ToLower(strings.TrimSpace(d.Entities[i].Type))
	}
}
