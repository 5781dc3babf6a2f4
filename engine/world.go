package engine

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/logger"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/physics"
	"github.com/lixenwraith/actcore/sprite"
	"github.com/lixenwraith/actcore/status"
	"github.com/lixenwraith/actcore/vmath"
)

const capacity = parameter.EntityCapacity

// Options tune the world at construction
type Options struct {
	// InvincibilityFrames is the damage cooldown applied on every hit; 0 selects the default
	InvincibilityFrames uint8
	// Seed feeds the world rng shared by behaviors
	Seed uint64
	// Status receives telemetry; nil creates a private registry
	Status *status.Registry
}

// World is the fixed-capacity entity table, stored as one array per field
// order[:active] is the active prefix of a slot permutation; pos is its inverse
// No allocation happens after New
type World struct {
	typ        [capacity]component.EntityType
	kin        [capacity]core.Kinetic
	box        [capacity]core.HalfBox
	frame      [capacity]sprite.FrameID
	health     [capacity]uint16
	attack     [capacity]uint16
	team       [capacity]component.Team
	enemy      [capacity]bool
	movement   [capacity]component.MovementState
	contact    [capacity]component.Contact
	invincible [capacity]uint8
	z          [capacity]int8
	scratch    [capacity][parameter.ScratchWords]int16
	owner      [capacity]core.Handle
	remove     [capacity]bool
	gen        [capacity]uint16

	order   [capacity]core.Slot
	pos     [capacity]uint8
	active  int
	enemies int

	drawBuf [capacity]core.Slot

	behaviors BehaviorTable
	tiles     physics.TileMap
	boxes     FrameBoxes
	sprites   SpriteSink
	sounds    SoundQueue
	input     PlayerInput
	hooks     Hooks

	invincibilityFrames uint8
	rng                 *vmath.FastRand
	frameCount          uint64
	cameraX, cameraY    int
	playerDead          bool

	systems []System

	status        *status.Registry
	statFrames    *atomic.Int64
	statActive    *atomic.Int64
	statEnemies   *atomic.Int64
	statSpawned   *atomic.Int64
	statRejected  *atomic.Int64
	statDespawned *atomic.Int64
	statClamped   *atomic.Int64
	statHits      *atomic.Int64
	statBlocked   *atomic.Int64
	statKills     *atomic.Int64

	log *logrus.Entry
}

// New builds a world with the player in slot 0 at the origin
func New(table BehaviorTable, c Collaborators, opts Options) (*World, error) {
	for t, b := range table {
		if b == nil {
			return nil, errors.Wrapf(ErrMissingBehavior, "type %s", component.EntityType(t))
		}
	}
	if c.Tiles == nil {
		return nil, ErrNoTileMap
	}
	c.withDefaults()

	if opts.InvincibilityFrames == 0 {
		opts.InvincibilityFrames = parameter.InvincibilityFrames
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	w := &World{
		behaviors:           table,
		tiles:               c.Tiles,
		boxes:               c.Frames,
		sprites:             c.Sprites,
		sounds:              c.Sounds,
		input:               c.Input,
		hooks:               c.Hooks,
		invincibilityFrames: opts.InvincibilityFrames,
		rng:                 vmath.NewFastRand(opts.Seed),
		status:              opts.Status,
		log:                 logger.Component("engine"),
	}

	w.statFrames = w.status.Ints.Get("engine.frames")
	w.statActive = w.status.Ints.Get("entity.active")
	w.statEnemies = w.status.Ints.Get("entity.enemies")
	w.statSpawned = w.status.Ints.Get("entity.spawned")
	w.statRejected = w.status.Ints.Get("entity.rejected")
	w.statDespawned = w.status.Ints.Get("entity.despawned")
	w.statClamped = w.status.Ints.Get("physics.clamped")
	w.statHits = w.status.Ints.Get("combat.hits")
	w.statBlocked = w.status.Ints.Get("combat.blocked")
	w.statKills = w.status.Ints.Get("combat.kills")

	for i := range w.order {
		w.order[i] = core.Slot(i)
		w.pos[i] = uint8(i)
		w.gen[i] = 1
	}

	w.active = 1
	w.resetSlot(core.PlayerSlot, component.TypePlayer, 0, 0)
	w.behaviors[component.TypePlayer].Init(Actor{w: w, slot: core.PlayerSlot}, 0)
	w.statActive.Store(1)

	return w, nil
}

// resetSlot copies the static row for t into slot and clears all per-entity state
func (w *World) resetSlot(slot core.Slot, t component.EntityType, x, y int) {
	d := component.Data(t)

	w.typ[slot] = t
	w.kin[slot] = core.Kinetic{X: vmath.FromInt(x), Y: vmath.FromInt(y)}
	w.box[slot] = d.TileBox
	w.frame[slot] = d.Frame
	w.health[slot] = d.MaxHealth
	w.attack[slot] = d.Attack
	w.team[slot] = d.Team
	w.enemy[slot] = d.IsEnemy
	w.movement[slot] = 0
	w.contact[slot] = 0
	w.invincible[slot] = 0
	w.z[slot] = d.ZPriority
	w.scratch[slot] = [parameter.ScratchWords]int16{}
	w.owner[slot] = core.NilHandle
	w.remove[slot] = false
}

// Spawn allocates the first free slot for an entity of type t at pixel (x, y)
// Fails without mutation when the table is full or t is not spawnable
func (w *World) Spawn(x, y int, t component.EntityType, param uint8) (core.Handle, error) {
	return w.spawn(x, y, t, param, core.NilHandle)
}

func (w *World) spawn(x, y int, t component.EntityType, param uint8, owner core.Handle) (core.Handle, error) {
	if !t.Valid() {
		w.statRejected.Add(1)
		w.log.WithField("type", uint8(t)).Warn("Spawn rejected: unknown type")
		return core.NilHandle, errors.Wrapf(ErrUnknownType, "type id %d", uint8(t))
	}
	if t == component.TypePlayer {
		w.statRejected.Add(1)
		w.log.Warn("Spawn rejected: player type")
		return core.NilHandle, ErrPlayerType
	}
	if w.active >= capacity {
		w.statRejected.Add(1)
		w.log.WithFields(logrus.Fields{
			"type": t.String(),
			"x":    x,
			"y":    y,
		}).Warn("Spawn rejected: table full")
		return core.NilHandle, errors.Wrapf(ErrTableFull, "spawn %s", t)
	}

	slot := w.order[w.active]
	w.active++

	w.resetSlot(slot, t, x, y)
	w.owner[slot] = owner
	if w.enemy[slot] {
		w.enemies++
	}
	w.statSpawned.Add(1)

	w.behaviors[t].Init(Actor{w: w, slot: slot}, param)

	return w.HandleOf(slot), nil
}

// Despawn reclaims an active non-player slot by swapping it with the last active entry
func (w *World) Despawn(slot core.Slot) error {
	if slot == core.PlayerSlot {
		return ErrPlayerSlot
	}
	if !w.isActive(slot) {
		return errors.Wrapf(ErrNotActive, "slot %d", slot)
	}
	w.despawn(slot)
	return nil
}

// DespawnHandle reclaims the entity a handle refers to, if it is still the same entity
func (w *World) DespawnHandle(h core.Handle) error {
	if !w.Valid(h) {
		return errors.Wrapf(ErrStaleHandle, "%s", h)
	}
	return w.Despawn(h.Slot)
}

func (w *World) despawn(slot core.Slot) {
	p := w.pos[slot]
	last := w.active - 1
	other := w.order[last]

	w.order[p] = other
	w.pos[other] = p
	w.order[last] = slot
	w.pos[slot] = uint8(last)
	w.active--

	w.gen[slot]++
	if w.gen[slot] == 0 {
		w.gen[slot] = 1
	}
	w.remove[slot] = false
	if w.enemy[slot] {
		w.enemy[slot] = false
		w.enemies--
	}
	w.statDespawned.Add(1)

	w.log.WithFields(logrus.Fields{
		"slot": slot,
		"type": w.typ[slot].String(),
	}).Debug("Despawned")
}

// Clear reclaims every non-player slot without death effects, used on room change
func (w *World) Clear() {
	for w.active > 1 {
		w.despawn(w.order[w.active-1])
	}
	w.statActive.Store(int64(w.active))
	w.statEnemies.Store(0)
}

// AddSystem registers a phase and keeps systems sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Frame runs one logic frame: player, then every other active entity, then systems in priority order
// Entities spawned during dispatch are first processed next frame
func (w *World) Frame() {
	w.frameCount++

	w.process(core.PlayerSlot)

	n := w.active
	for i := 1; i < n; i++ {
		w.process(w.order[i])
	}

	for _, s := range w.systems {
		s.Update(w)
	}

	w.statFrames.Add(1)
	w.statActive.Store(int64(w.active))
	w.statEnemies.Store(int64(w.enemies))
}

func (w *World) process(slot core.Slot) {
	if w.behaviors[w.typ[slot]].Process(Actor{w: w, slot: slot}) != Remove {
		return
	}
	if slot == core.PlayerSlot {
		w.log.Warn("Player behavior requested removal, ignored")
		return
	}
	w.remove[slot] = true
}

// --- Queries ---

func (w *World) isActive(slot core.Slot) bool {
	return int(slot) < capacity && int(w.pos[slot]) < w.active
}

// IsActive reports whether slot is in the active range
func (w *World) IsActive(slot core.Slot) bool { return w.isActive(slot) }

// ActiveCount is the number of live entities, player included
func (w *World) ActiveCount() int { return w.active }

// EnemyCount is the number of live enemy-flagged entities
func (w *World) EnemyCount() int { return w.enemies }

// ActiveSlots returns the active prefix in table order; the view is invalidated by spawn or despawn
func (w *World) ActiveSlots() []core.Slot { return w.order[:w.active] }

// FrameCount is the number of frames run so far
func (w *World) FrameCount() uint64 { return w.frameCount }

// HandleOf returns the current handle for slot
func (w *World) HandleOf(slot core.Slot) core.Handle {
	return core.Handle{Slot: slot, Generation: w.gen[slot]}
}

// Valid reports whether h still refers to a live entity
func (w *World) Valid(h core.Handle) bool {
	return !h.IsNil() && w.isActive(h.Slot) && w.gen[h.Slot] == h.Generation
}

func (w *World) Type(slot core.Slot) component.EntityType   { return w.typ[slot] }
func (w *World) Position(slot core.Slot) (x, y vmath.Fixed) { return w.kin[slot].X, w.kin[slot].Y }
func (w *World) PixelPosition(slot core.Slot) (x, y int)    { return w.kin[slot].Pixel() }
func (w *World) Velocity(slot core.Slot) (vx, vy vmath.Fixed) {
	return w.kin[slot].VelX, w.kin[slot].VelY
}
func (w *World) Health(slot core.Slot) uint16                    { return w.health[slot] }
func (w *World) Attack(slot core.Slot) uint16                    { return w.attack[slot] }
func (w *World) Team(slot core.Slot) component.Team              { return w.team[slot] }
func (w *World) IsEnemy(slot core.Slot) bool                     { return w.enemy[slot] }
func (w *World) Invincibility(slot core.Slot) uint8              { return w.invincible[slot] }
func (w *World) Movement(slot core.Slot) component.MovementState { return w.movement[slot] }
func (w *World) Contact(slot core.Slot) component.Contact        { return w.contact[slot] }
func (w *World) ZPriority(slot core.Slot) int8                   { return w.z[slot] }
func (w *World) FrameOf(slot core.Slot) sprite.FrameID           { return w.frame[slot] }
func (w *World) Removing(slot core.Slot) bool                    { return w.remove[slot] }

// Status returns the telemetry registry
func (w *World) Status() *status.Registry { return w.status }

// SetCamera sets the screen origin in pixels
func (w *World) SetCamera(x, y int) {
	w.cameraX, w.cameraY = x, y
}

// SetTiles replaces the tile map, used when the room changes
func (w *World) SetTiles(tiles physics.TileMap) error {
	if tiles == nil {
		return ErrNoTileMap
	}
	w.tiles = tiles
	return nil
}
