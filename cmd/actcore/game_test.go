package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/actcore/behavior"
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/room"
)

const roomA = `
name: a
next: b
player: {x: 12, y: 12}
tiles: ["#####", "#...D", "#####"]
`

const roomB = `
name: b
player: {x: 20, y: 12}
tiles: ["####", "#..#", "####"]
entities:
  - {x: 12, y: 12, type: walker, param: 1}
`

func newTestGame(t *testing.T) *game {
	t.Helper()
	lib, err := room.NewLibrary(t.TempDir())
	require.NoError(t, err)
	for _, src := range []string{roomA, roomB} {
		def, err := room.Parse(strings.NewReader(src), "yaml")
		require.NoError(t, err)
		require.NoError(t, lib.Add(def))
	}

	g := newGame(lib)
	require.NoError(t, g.load("a"))
	w, err := engine.New(behavior.Table(), engine.Collaborators{Tiles: g.inst, Hooks: g}, engine.Options{})
	require.NoError(t, err)
	g.world = w
	require.NoError(t, g.enter("a"))
	return g
}

func TestDoorTransitionCarriesHealth(t *testing.T) {
	g := newTestGame(t)

	h, err := g.world.Spawn(12, 12, component.TypeWalker, 0)
	require.NoError(t, err)
	g.world.ApplyHit(h.Slot, core.PlayerSlot)
	hurt := g.world.Health(core.PlayerSlot)
	require.Less(t, hurt, component.Data(component.TypePlayer).MaxHealth)

	// Closed doors keep the player in place
	g.world.PlacePlayer(36, 12)
	require.NoError(t, g.afterFrame())
	assert.Equal(t, "a", g.inst.Definition().Name)

	g.RoomCleared()
	require.True(t, g.inst.DoorsOpen())
	require.NoError(t, g.afterFrame())

	assert.Equal(t, "b", g.inst.Definition().Name)
	assert.Equal(t, hurt, g.world.Health(core.PlayerSlot))
	x, y := g.world.PixelPosition(core.PlayerSlot)
	assert.Equal(t, 20, x)
	assert.Equal(t, 12, y)
	assert.Equal(t, 1, g.world.EnemyCount())
	assert.Equal(t, 2, g.rooms)
}

func TestDeathRestartsRoom(t *testing.T) {
	g := newTestGame(t)
	g.world.PlacePlayer(28, 12)

	g.PlayerDied()
	require.NoError(t, g.afterFrame())

	assert.False(t, g.restart)
	assert.Equal(t, "a", g.inst.Definition().Name)
	assert.Equal(t, component.Data(component.TypePlayer).MaxHealth, g.world.Health(core.PlayerSlot))
	x, _ := g.world.PixelPosition(core.PlayerSlot)
	assert.Equal(t, 12, x)
}

func TestSwitchTogglesDoors(t *testing.T) {
	g := newTestGame(t)
	g.SwitchToggled(1, true)
	assert.True(t, g.inst.DoorsOpen())
	g.SwitchToggled(1, false)
	assert.False(t, g.inst.DoorsOpen())
}

func TestCameraAxis(t *testing.T) {
	assert.Equal(t, 0, cameraAxis(100, 200, 256))
	assert.Equal(t, 0, cameraAxis(50, 512, 256))
	assert.Equal(t, 72, cameraAxis(200, 512, 256))
	assert.Equal(t, 256, cameraAxis(500, 512, 256))
}

func TestHUDReportsRoom(t *testing.T) {
	g := newTestGame(t)
	hud := g.hud()
	assert.Contains(t, hud, "HP 12")
	assert.Contains(t, hud, "room a")
	assert.Contains(t, hud, "doors shut")
}

func TestStartReportsConfigFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	assert.Equal(t, 1, start([]string{"--config", missing}))
}

func TestOpenLogCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actcore.log")
	out, closeLog, err := openLog(path)
	require.NoError(t, err)

	_, err = out.Write([]byte("line\n"))
	require.NoError(t, err)
	closeLog()

	_, err = out.Write([]byte("after close\n"))
	assert.Error(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))

	discard, closeNothing, err := openLog("")
	require.NoError(t, err)
	closeNothing()
	_, err = discard.Write([]byte("dropped"))
	assert.NoError(t, err)
}
