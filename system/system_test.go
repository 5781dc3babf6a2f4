package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/actcore/behavior"
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/sprite"
	"github.com/lixenwraith/actcore/vmath"
)

// open is a 32x32 tile room with a solid border beyond its edges
type open struct{}

func (open) IsSolid(tx, ty int) bool { return tx < 0 || ty < 0 || tx >= 32 || ty >= 32 }

type drawCall struct {
	slot  core.Slot
	frame sprite.FrameID
}

type recordingSink struct {
	calls []drawCall
}

func (r *recordingSink) DrawSprite(slot core.Slot, frame sprite.FrameID, _, _ int) {
	r.calls = append(r.calls, drawCall{slot, frame})
}

type recordingSounds []core.SoundID

func (s *recordingSounds) QueueSoundEffect(id core.SoundID) { *s = append(*s, id) }

type recordingHooks struct {
	engine.NopHooks
	hurt    []uint16
	cleared int
}

func (h *recordingHooks) EntityHurt(_ core.Slot, damage uint16) { h.hurt = append(h.hurt, damage) }
func (h *recordingHooks) RoomCleared()                          { h.cleared++ }

type held engine.Buttons

func (b *held) Buttons() engine.Buttons { return engine.Buttons(*b) }

func newWorld(t *testing.T, c engine.Collaborators, opts engine.Options) *engine.World {
	t.Helper()
	c.Tiles = open{}
	w, err := engine.New(behavior.Table(), c, opts)
	require.NoError(t, err)
	Register(w)
	w.PlacePlayer(80, 48)
	return w
}

func TestRegisterOrdersPhases(t *testing.T) {
	w := newWorld(t, engine.Collaborators{}, engine.Options{})

	var names []string
	for _, s := range w.Systems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"combat", "reap", "draw"}, names)
}

func TestProjectileTravelsUnobstructed(t *testing.T) {
	w := newWorld(t, engine.Collaborators{}, engine.Options{})

	h, err := w.Spawn(100, 100, component.TypeBolt, 0)
	require.NoError(t, err)
	w.SetVelocity(h.Slot, vmath.FromInt(2), 0)

	for i := 0; i < 5; i++ {
		w.Frame()
	}

	require.True(t, w.Valid(h))
	x, y := w.PixelPosition(h.Slot)
	assert.Equal(t, 110, x)
	assert.Equal(t, 100, y)
}

func TestContactDamageThenInvincibility(t *testing.T) {
	hooks := &recordingHooks{}
	sounds := &recordingSounds{}
	w := newWorld(t, engine.Collaborators{Hooks: hooks, Sounds: sounds}, engine.Options{InvincibilityFrames: 40})

	_, err := w.Spawn(80, 48, component.TypeWalker, 0)
	require.NoError(t, err)

	w.Frame()
	maxHealth := component.Data(component.TypePlayer).MaxHealth
	walkerAttack := component.Data(component.TypeWalker).Attack
	assert.Equal(t, maxHealth-walkerAttack, w.Health(core.PlayerSlot))
	assert.Equal(t, uint8(40), w.Invincibility(core.PlayerSlot))
	assert.True(t, w.Contact(core.PlayerSlot).Has(component.ContactHurt))
	assert.Equal(t, []uint16{walkerAttack}, hooks.hurt)
	assert.Contains(t, *sounds, component.SoundPlayerHurt)

	// Still overlapping inside the window: blocked
	w.Frame()
	assert.Equal(t, maxHealth-walkerAttack, w.Health(core.PlayerSlot))
	assert.Equal(t, uint8(39), w.Invincibility(core.PlayerSlot))
	assert.True(t, w.Contact(core.PlayerSlot).Has(component.ContactHurt))
	assert.Len(t, hooks.hurt, 1)
	assert.Equal(t, int64(1), w.Status().Ints.Get("combat.blocked").Load())
}

func TestKillBurstsAndClearsRoom(t *testing.T) {
	hooks := &recordingHooks{}
	sounds := &recordingSounds{}
	input := held(engine.ButtonRight | engine.ButtonAttack)
	w := newWorld(t, engine.Collaborators{Hooks: hooks, Sounds: sounds, Input: &input}, engine.Options{InvincibilityFrames: 1})

	walker, err := w.Spawn(90, 48, component.TypeWalker, 0)
	require.NoError(t, err)
	require.Equal(t, 1, w.EnemyCount())

	w.Frame()
	assert.Equal(t, sprite.FramePlayerAttackRight, w.FrameOf(core.PlayerSlot))
	assert.True(t, w.Valid(walker))

	w.Frame()
	assert.False(t, w.Valid(walker), "killed and reaped within the same frame")
	assert.Equal(t, 0, w.EnemyCount())
	assert.Equal(t, 1, hooks.cleared)
	assert.Contains(t, *sounds, component.SoundDeath)
	assert.Equal(t, int64(1), w.Status().Ints.Get("combat.kills").Load())

	sparks := 0
	for _, s := range w.ActiveSlots() {
		if w.Type(s) == component.TypeSpark {
			sparks++
		}
	}
	assert.Equal(t, 3, sparks)

	input = 0
	for i := 0; i < 30; i++ {
		w.Frame()
	}
	assert.Equal(t, 1, w.ActiveCount(), "sparks expire and the orphaned shadow goes with its owner")
	assert.Equal(t, 1, hooks.cleared)
}

func TestDrawSubmitsInZOrder(t *testing.T) {
	sink := &recordingSink{}
	w := newWorld(t, engine.Collaborators{Sprites: sink}, engine.Options{})

	walker, _ := w.Spawn(40, 40, component.TypeWalker, 0)
	sw, _ := w.Spawn(20, 20, component.TypeSwitch, 0)

	w.Frame()

	require.Len(t, sink.calls, 4)
	assert.Equal(t, sprite.FrameShadow, sink.calls[0].frame)
	assert.Equal(t, sw.Slot, sink.calls[1].slot)
	assert.Equal(t, walker.Slot, sink.calls[2].slot)
	assert.Equal(t, core.PlayerSlot, sink.calls[3].slot)
}
