package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sort"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/actcore/audio"
	"github.com/lixenwraith/actcore/behavior"
	"github.com/lixenwraith/actcore/config"
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/engine"
	"github.com/lixenwraith/actcore/logger"
	"github.com/lixenwraith/actcore/render"
	"github.com/lixenwraith/actcore/room"
	"github.com/lixenwraith/actcore/sprite"
	"github.com/lixenwraith/actcore/status"
	"github.com/lixenwraith/actcore/system"
)

func main() {
	os.Exit(start(os.Args[1:]))
}

// start returns the process exit code so every deferred cleanup runs before os.Exit
func start(args []string) int {
	fs := pflag.NewFlagSet("actcore", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(args)

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return 1
	}

	logOut, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Log: %v\n", err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Log.Level, cfg.Log.Format, logOut)

	reg := status.NewRegistry()
	if err := run(cfg, reg); err != nil {
		logger.Log.WithError(err).Error("Exited with error")
		fmt.Fprintf(os.Stderr, "actcore: %v\n", err)
		return 1
	}
	printStats(os.Stdout, reg)
	return 0
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}

func run(cfg *config.Config, reg *status.Registry) (err error) {
	lib, err := room.NewLibrary(cfg.Room.Dir)
	if err != nil {
		return err
	}
	g := newGame(lib)
	if err := g.load(cfg.Room.Start); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Restore the terminal even if the loop panics; the panic becomes the returned error
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			err = errors.Errorf("crashed: %v\nStack Trace:\n%s", r, debug.Stack())
		}
	}()
	screen.HideCursor()

	catalog := sprite.DefaultCatalog()
	term := render.NewTerminal(screen, catalog)
	keys := render.NewKeyboard()
	sounds := audio.NewQueue(cfg.Audio.QueueDepth, reg)

	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.NewPlayer(sounds)
		if err := player.Start(); err != nil {
			logger.Log.WithError(err).Warn("Audio start failed, continuing without audio")
			player = nil
		} else {
			defer player.Stop()
		}
	}

	world, err := engine.New(behavior.Table(), engine.Collaborators{
		Tiles:   g.inst,
		Frames:  catalog,
		Sprites: term,
		Sounds:  sounds,
		Input:   keys,
		Hooks:   g,
	}, engine.Options{
		InvincibilityFrames: uint8(cfg.Combat.InvincibilityFrames),
		Seed:                cfg.Seed,
		Status:              reg,
	})
	if err != nil {
		return err
	}
	system.Register(world)
	g.world = world
	if err := g.enter(cfg.Room.Start); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if keys.HandleEvent(ev) {
				cancel()
				return
			}
		}
	}()

	clock := engine.NewFrameClock(cfg.Frame.Rate)
	logger.Log.WithField("rate", cfg.Frame.Rate).Info("Loop started")

	for {
		if err := clock.Wait(ctx); err != nil {
			break
		}

		camX, camY := g.camera()
		world.SetCamera(camX, camY)

		term.Clear()
		term.DrawRoom(g.inst, camX, camY)
		world.Frame()
		term.DrawHUD(g.hud())
		term.Show()
		keys.Tick()

		if player != nil {
			player.Pump()
		} else {
			sounds.Drain(func(core.SoundID) {})
		}

		if err := g.afterFrame(); err != nil {
			return err
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"frames": world.FrameCount(),
		"late":   clock.Late(),
		"rooms":  g.rooms,
	}).Info("Loop stopped")
	return nil
}

func printStats(w io.Writer, reg *status.Registry) {
	snap := reg.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%-20s %d\n", k, snap[k])
	}
}
