package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/actcore/behavior"
	"github.com/lixenwraith/actcore/component"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/logger"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/status"
	"github.com/lixenwraith/actcore/system"
)

var (
	frames   = pflag.Int("frames", 100000, "frames to simulate")
	mode     = pflag.String("profile", "", "profile mode: cpu|mem, empty disables")
	dir      = pflag.String("profile-dir", ".", "profile output directory")
	seed     = pflag.Uint64("seed", 1, "world random seed")
	logLevel = pflag.String("log-level", "warn", "log level")
)

// arena is a walled room with an open floor, in tiles
type arena struct {
	w, h int
}

func (a arena) IsSolid(tx, ty int) bool {
	return tx <= 0 || ty <= 0 || tx >= a.w-1 || ty >= a.h-1
}

func main() {
	pflag.Parse()
	logger.Init(*logLevel, "text", os.Stderr)

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*dir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(*dir), profile.NoShutdownHook).Stop()
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *mode)
		os.Exit(2)
	}

	reg := status.NewRegistry()
	tiles := arena{w: parameter.MaxRoomTiles, h: parameter.MaxRoomTiles / 2}
	world, err := engine.New(behavior.Table(), engine.Collaborators{Tiles: tiles}, engine.Options{
		Seed:   *seed,
		Status: reg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "world: %v\n", err)
		os.Exit(1)
	}
	system.Register(world)

	midX := tiles.w << (parameter.TileShift - 1)
	midY := tiles.h << (parameter.TileShift - 1)
	world.PlacePlayer(midX, midY)
	n := populate(world, tiles)

	start := time.Now()
	restarts := 0
	for i := 0; i < *frames; i++ {
		world.Frame()
		if world.PlayerDead() {
			world.RestorePlayer(engine.PlayerState{})
			restarts++
		}
		if world.EnemyCount() == 0 {
			n = populate(world, tiles)
		}
	}
	elapsed := time.Since(start)

	perFrame := time.Duration(0)
	if *frames > 0 {
		perFrame = elapsed / time.Duration(*frames)
	}
	fmt.Printf("frames     %d\n", *frames)
	fmt.Printf("spawned    %d\n", n)
	fmt.Printf("restarts   %d\n", restarts)
	fmt.Printf("elapsed    %v\n", elapsed)
	fmt.Printf("per frame  %v\n", perFrame)
	for k, v := range reg.Snapshot() {
		logger.Log.WithField("value", v).Debug(k)
	}
}

// populate fills the table with walkers and archers on a grid until a spawn is rejected
func populate(w *engine.World, a arena) int {
	spawned := 0
	types := [...]component.EntityType{component.TypeWalker, component.TypeArcher}
	for i := 0; ; i++ {
		x := (2 + (i*5)%(a.w-4)) << parameter.TileShift
		y := (2 + (i/((a.w-4)/5))*3%(a.h-4)) << parameter.TileShift
		if _, err := w.Spawn(x, y, types[i%len(types)], uint8(i%4)); err != nil {
			return spawned
		}
		spawned++
	}
}
