package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/actcore/engine"
)

// Terminals report key presses but not releases, so a press is held for a few frames
// Auto-repeat from a held key refreshes the hold before it lapses
const (
	holdMove   = 8
	holdAction = 2
)

var buttonBits = [...]engine.Buttons{
	engine.ButtonLeft,
	engine.ButtonRight,
	engine.ButtonUp,
	engine.ButtonDown,
	engine.ButtonAttack,
	engine.ButtonFire,
}

// Keyboard turns tcell key events into the player's held buttons
// Events arrive on the polling goroutine; the frame loop calls Buttons and Tick
type Keyboard struct {
	mu   sync.Mutex
	hold [len(buttonBits)]int
}

func NewKeyboard() *Keyboard { return &Keyboard{} }

// HandleEvent records a key event and reports whether the user asked to quit
func (k *Keyboard) HandleEvent(ev tcell.Event) (quit bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		k.press(engine.ButtonLeft, holdMove)
	case tcell.KeyRight:
		k.press(engine.ButtonRight, holdMove)
	case tcell.KeyUp:
		k.press(engine.ButtonUp, holdMove)
	case tcell.KeyDown:
		k.press(engine.ButtonDown, holdMove)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return true
		case 'a', 'h':
			k.press(engine.ButtonLeft, holdMove)
		case 'd', 'l':
			k.press(engine.ButtonRight, holdMove)
		case 'w', 'k':
			k.press(engine.ButtonUp, holdMove)
		case 's', 'j':
			k.press(engine.ButtonDown, holdMove)
		case ' ', 'x':
			k.press(engine.ButtonAttack, holdAction)
		case 'z', 'f':
			k.press(engine.ButtonFire, holdAction)
		}
	}
	return false
}

func (k *Keyboard) press(b engine.Buttons, frames int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i, bit := range buttonBits {
		if bit == b {
			k.hold[i] = frames
			continue
		}
		// Opposite direction cancels
		if opposite(b, bit) {
			k.hold[i] = 0
		}
	}
}

func opposite(a, b engine.Buttons) bool {
	switch a {
	case engine.ButtonLeft:
		return b == engine.ButtonRight
	case engine.ButtonRight:
		return b == engine.ButtonLeft
	case engine.ButtonUp:
		return b == engine.ButtonDown
	case engine.ButtonDown:
		return b == engine.ButtonUp
	}
	return false
}

// Buttons implements the engine player input
func (k *Keyboard) Buttons() engine.Buttons {
	k.mu.Lock()
	defer k.mu.Unlock()

	var b engine.Buttons
	for i, bit := range buttonBits {
		if k.hold[i] > 0 {
			b |= bit
		}
	}
	return b
}

// Tick ages every held button by one frame
func (k *Keyboard) Tick() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i := range k.hold {
		if k.hold[i] > 0 {
			k.hold[i]--
		}
	}
}
