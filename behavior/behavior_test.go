package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/sprite"
	"github.com/lixenwraith/actcore/vmath"
)

// grid is a test tile map; '#' is solid and everything outside is solid
type grid []string

func (g grid) IsSolid(tx, ty int) bool {
	if ty < 0 || ty >= len(g) || tx < 0 || tx >= len(g[ty]) {
		return true
	}
	return g[ty][tx] == '#'
}

// 20x12 tiles, 160x96 pixels
var hall = grid{
	"####################",
	"#..................#",
	"#..................#",
	"#..................#",
	"#..................#",
	"#..................#",
	"#..................#",
	"#..................#",
	"#..................#",
	"#..................#",
	"#..................#",
	"####################",
}

type heldButtons engine.Buttons

func (b *heldButtons) Buttons() engine.Buttons { return engine.Buttons(*b) }

type switchHooks struct {
	engine.NopHooks
	toggles []bool
}

func (h *switchHooks) SwitchToggled(_ core.Slot, on bool) { h.toggles = append(h.toggles, on) }

type soundLog []core.SoundID

func (s *soundLog) QueueSoundEffect(id core.SoundID) { *s = append(*s, id) }

func newWorld(t *testing.T, c engine.Collaborators) *engine.World {
	t.Helper()
	if c.Tiles == nil {
		c.Tiles = hall
	}
	w, err := engine.New(Table(), c, engine.Options{Seed: 99})
	require.NoError(t, err)
	w.PlacePlayer(80, 48)
	return w
}

func countType(w *engine.World, t component.EntityType) int {
	n := 0
	for _, s := range w.ActiveSlots() {
		if w.Type(s) == t {
			n++
		}
	}
	return n
}

func findType(w *engine.World, t component.EntityType) (core.Slot, bool) {
	for _, s := range w.ActiveSlots() {
		if w.Type(s) == t {
			return s, true
		}
	}
	return 0, false
}

func step(w *engine.World, frames int) {
	for i := 0; i < frames; i++ {
		w.Frame()
		w.Reap()
	}
}

func TestTableCoversEveryType(t *testing.T) {
	table := Table()
	for i, b := range table {
		assert.NotNil(t, b, "type %s has no behavior", component.EntityType(i))
	}
}

func TestDirectionHelpers(t *testing.T) {
	assert.Equal(t, DirRight, directionOf(9))
	assert.Equal(t, DirUp, directionOf(3))
	assert.Equal(t, DirLeft, toward(-10, 3))
	assert.Equal(t, DirDown, toward(2, 5))
	assert.Equal(t, DirRight, toward(4, -4))

	vx, vy := DirUp.Velocity(vmath.FromInt(2))
	assert.Equal(t, vmath.Fixed(0), vx)
	assert.Equal(t, -vmath.FromInt(2), vy)
}

func TestWalkerReversesAtWalls(t *testing.T) {
	w := newWorld(t, engine.Collaborators{})
	h, err := w.Spawn(140, 20, component.TypeWalker, 1)
	require.NoError(t, err)

	// Right wall begins at pixel 152
	step(w, 20)
	vx, _ := w.Velocity(h.Slot)
	assert.Equal(t, -parameter.WalkerSpeed, vx)
	x, _ := w.PixelPosition(h.Slot)
	assert.Less(t, x, 152-3)
}

func TestWalkerBringsShadowThatOutlivesNothing(t *testing.T) {
	w := newWorld(t, engine.Collaborators{})
	h, err := w.Spawn(40, 40, component.TypeWalker, 0)
	require.NoError(t, err)
	require.Equal(t, 1, countType(w, component.TypeShadow))

	step(w, 3)
	shadow, ok := findType(w, component.TypeShadow)
	require.True(t, ok)
	wx, wy := w.PixelPosition(h.Slot)
	sx, sy := w.PixelPosition(shadow)
	assert.InDelta(t, wx, sx, 1)
	assert.InDelta(t, wy+shadowDrop, sy, 1)

	require.NoError(t, w.DespawnHandle(h))
	step(w, 1)
	assert.Equal(t, 0, countType(w, component.TypeShadow))
}

func TestProjectileRemovedAtWall(t *testing.T) {
	w := newWorld(t, engine.Collaborators{})
	h, err := w.Spawn(20, 40, component.TypeBolt, uint8(DirLeft))
	require.NoError(t, err)

	step(w, 10)
	assert.False(t, w.Valid(h))
}

func TestProjectileRemovedAfterHit(t *testing.T) {
	w := newWorld(t, engine.Collaborators{})
	bolt, _ := w.Spawn(80, 20, component.TypeBolt, uint8(DirRight))
	walker, _ := w.Spawn(80, 20, component.TypeWalker, 0)

	w.ApplyHit(bolt.Slot, walker.Slot)
	step(w, 1)
	assert.False(t, w.Valid(bolt))
	assert.True(t, w.Valid(walker))
}

func TestSparkLifetimeClamped(t *testing.T) {
	w := newWorld(t, engine.Collaborators{})
	short, _ := w.Spawn(40, 40, component.TypeSpark, 0)
	long, _ := w.Spawn(40, 40, component.TypeSpark, 255)

	step(w, 1)
	assert.False(t, w.Valid(short), "zero lifetime is raised to one frame")

	step(w, parameter.SparkMaxLifetime-2)
	assert.True(t, w.Valid(long))
	step(w, 1)
	assert.False(t, w.Valid(long))
}

func TestSparkSlowsByDrag(t *testing.T) {
	w := newWorld(t, engine.Collaborators{})
	h, err := w.Spawn(80, 40, component.TypeSpark, 30)
	require.NoError(t, err)
	vx, vy := w.Velocity(h.Slot)

	step(w, 1)
	gx, gy := w.Velocity(h.Slot)
	assert.Equal(t, vmath.Mul(vx, parameter.SparkDrag), gx)
	assert.Equal(t, vmath.Mul(vy, parameter.SparkDrag), gy)
}

func TestArcherFiresTowardPlayer(t *testing.T) {
	sounds := &soundLog{}
	w := newWorld(t, engine.Collaborators{Sounds: sounds})
	_, err := w.Spawn(120, 48, component.TypeArcher, 0)
	require.NoError(t, err)

	step(w, parameter.ArcherBaseInterval-1)
	assert.Equal(t, 0, countType(w, component.TypeArrow))

	step(w, 1)
	arrow, ok := findType(w, component.TypeArrow)
	require.True(t, ok)
	vx, vy := w.Velocity(arrow)
	assert.Equal(t, -parameter.ArrowSpeed, vx)
	assert.Equal(t, vmath.Fixed(0), vy)
	assert.Contains(t, *sounds, component.SoundArrow)
}

func TestArcherHoldsFireOutOfRange(t *testing.T) {
	w := newWorld(t, engine.Collaborators{})
	w.PlacePlayer(12, 12)
	_, err := w.Spawn(148, 84, component.TypeArcher, 0)
	require.NoError(t, err)
	require.Greater(t, vmath.DistanceApprox(148-12, 84-12), parameter.ArcherRange)

	step(w, 2*parameter.ArcherBaseInterval)
	assert.Equal(t, 0, countType(w, component.TypeArrow))

	// Closing in resumes the volley on the next interval
	w.PlacePlayer(120, 84)
	step(w, parameter.ArcherBaseInterval)
	assert.Equal(t, 1, countType(w, component.TypeArrow))
}

func TestArcherIntervalClamped(t *testing.T) {
	assert.Equal(t, int16(parameter.ArcherBaseInterval), archerIntervalFor(0))
	maxInterval := int16(parameter.ArcherBaseInterval + (parameter.ArcherIntervalLevels-1)*parameter.ArcherIntervalStep)
	assert.Equal(t, maxInterval, archerIntervalFor(200))
}

func TestPlayerMovesAndFires(t *testing.T) {
	var input heldButtons
	w := newWorld(t, engine.Collaborators{Input: &input})

	input = heldButtons(engine.ButtonRight | engine.ButtonFire)
	step(w, 2)

	x, _ := w.PixelPosition(core.PlayerSlot)
	assert.Equal(t, 83, x)
	assert.Equal(t, 1, countType(w, component.TypeBolt), "cooldown limits fire rate")

	bolt, _ := findType(w, component.TypeBolt)
	vx, _ := w.Velocity(bolt)
	assert.Equal(t, parameter.BoltSpeed, vx)
}

func TestPlayerAttackShowsDirectionalFrame(t *testing.T) {
	var input heldButtons
	w := newWorld(t, engine.Collaborators{Input: &input})

	input = heldButtons(engine.ButtonUp)
	step(w, 1)
	input = heldButtons(engine.ButtonAttack)
	step(w, 1)
	assert.Equal(t, sprite.FramePlayerAttackUp, w.FrameOf(core.PlayerSlot))

	input = 0
	step(w, parameter.PlayerAttackFrames)
	assert.Equal(t, sprite.FramePlayerIdle, w.FrameOf(core.PlayerSlot))
}

func TestSwitchTogglesOnRisingContact(t *testing.T) {
	hooks := &switchHooks{}
	w := newWorld(t, engine.Collaborators{Hooks: hooks})
	sw, err := w.Spawn(40, 40, component.TypeSwitch, 0)
	require.NoError(t, err)

	w.ApplyHit(core.PlayerSlot, sw.Slot)
	w.Frame()
	assert.Equal(t, []bool{true}, hooks.toggles)
	assert.Equal(t, sprite.FrameSwitchOn, w.FrameOf(sw.Slot))

	// Sustained contact does not retrigger
	w.ApplyHit(core.PlayerSlot, sw.Slot)
	w.Frame()
	assert.Len(t, hooks.toggles, 1)

	w.BeginCombat()
	w.Frame()
	w.ApplyHit(core.PlayerSlot, sw.Slot)
	w.Frame()
	assert.Equal(t, []bool{true, false}, hooks.toggles)
	assert.Equal(t, uint16(parameter.HealthIndestructible), w.Health(sw.Slot))
}
