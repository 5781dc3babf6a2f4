package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/room"
	"github.com/lixenwraith/actcore/sprite"
)

// hudRows is the status line height above the playfield
const hudRows = 1

var (
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleDoor    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	spriteStyles = map[sprite.FrameID]tcell.Style{
		sprite.FramePlayerIdle:        tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		sprite.FramePlayerAttackRight: tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true),
		sprite.FramePlayerAttackLeft:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true),
		sprite.FramePlayerAttackDown:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true),
		sprite.FramePlayerAttackUp:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true),
		sprite.FrameBolt:              tcell.StyleDefault.Foreground(tcell.ColorAqua),
		sprite.FrameWalker:            tcell.StyleDefault.Foreground(tcell.ColorRed),
		sprite.FrameArcher:            tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		sprite.FrameArrow:             tcell.StyleDefault.Foreground(tcell.ColorSilver),
		sprite.FrameSpark:             tcell.StyleDefault.Foreground(tcell.ColorOrange),
		sprite.FrameShadow:            tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray),
		sprite.FrameSwitchOff:         tcell.StyleDefault.Foreground(tcell.ColorGreen),
		sprite.FrameSwitchOn:          tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	}
)

// Terminal draws the room and sprites onto a tcell screen, one cell per tile
// Screen pixel coordinates are scaled down by the tile size
type Terminal struct {
	screen  tcell.Screen
	catalog *sprite.Catalog
}

func NewTerminal(screen tcell.Screen, catalog *sprite.Catalog) *Terminal {
	if catalog == nil {
		catalog = sprite.DefaultCatalog()
	}
	return &Terminal{screen: screen, catalog: catalog}
}

// CellOf maps a screen pixel to a terminal cell
func CellOf(x, y int) (col, row int) {
	return x >> parameter.TileShift, (y >> parameter.TileShift) + hudRows
}

// DrawSprite implements the engine sprite sink
func (t *Terminal) DrawSprite(_ core.Slot, frame sprite.FrameID, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := CellOf(x, y)
	w, h := t.screen.Size()
	if col >= w || row >= h {
		return
	}
	style, ok := spriteStyles[frame]
	if !ok {
		style = styleDefault
	}
	t.screen.SetContent(col, row, t.catalog.Glyph(frame), nil, style)
}

// DrawRoom paints the tile grid, shifted by the camera in pixels
func (t *Terminal) DrawRoom(inst *room.Instance, cameraX, cameraY int) {
	rw, rh := inst.Size()
	offX, offY := cameraX>>parameter.TileShift, cameraY>>parameter.TileShift
	for ty := 0; ty < rh; ty++ {
		for tx := 0; tx < rw; tx++ {
			col, row := tx-offX, ty-offY+hudRows
			if col < 0 || row < hudRows {
				continue
			}
			glyph, style := ' ', styleFloor
			switch inst.Tile(tx, ty) {
			case room.TileWall:
				glyph, style = '#', styleWall
			case room.TileDoor:
				glyph, style = '+', styleDoor
				if inst.DoorsOpen() {
					glyph = '\''
				}
			default:
				glyph = '.'
			}
			t.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

// DrawHUD writes the status line
func (t *Terminal) DrawHUD(text string) {
	w, _ := t.screen.Size()
	col := 0
	for _, r := range text {
		if col >= w {
			break
		}
		t.screen.SetContent(col, 0, r, nil, styleHUD)
		col++
	}
}

// Clear blanks the screen for the next frame
func (t *Terminal) Clear() { t.screen.Clear() }

// Show flushes the frame to the terminal
func (t *Terminal) Show() { t.screen.Show() }
