// Package config resolves runtime settings from flags, environment, an optional file and defaults
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/actcore/parameter"
)

// EnvPrefix scopes environment overrides, e.g. ACTCORE_FRAME_RATE
const EnvPrefix = "ACTCORE"

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives log output while the terminal owns stdout; empty discards it
	File   string `mapstructure:"file"`
}

type FrameConfig struct {
	// Rate is frames per second
	Rate int `mapstructure:"rate"`
}

type CombatConfig struct {
	InvincibilityFrames int `mapstructure:"invincibility_frames"`
}

type AudioConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	QueueDepth int  `mapstructure:"queue_depth"`
}

type RoomConfig struct {
	Dir   string `mapstructure:"dir"`
	Start string `mapstructure:"start"`
}

// Config is the resolved runtime configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Frame  FrameConfig  `mapstructure:"frame"`
	Combat CombatConfig `mapstructure:"combat"`
	Audio  AudioConfig  `mapstructure:"audio"`
	Room   RoomConfig   `mapstructure:"room"`
	Seed   uint64       `mapstructure:"seed"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"room-dir":  "room.dir",
	"room":      "room.start",
	"log-level": "log.level",
	"log-file":  "log.file",
	"rate":      "frame.rate",
	"seed":      "seed",
}

// RegisterFlags adds the shared command-line flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("room-dir", "rooms", "directory holding room files")
	fs.String("room", "start", "room to start in")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-file", "actcore.log", "log file path, empty to discard")
	fs.Int("rate", parameter.DefaultFrameRate, "logic frames per second")
	fs.Bool("no-audio", false, "disable sound output")
	fs.Uint64("seed", 1, "world random seed")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "actcore.log")
	v.SetDefault("frame.rate", parameter.DefaultFrameRate)
	v.SetDefault("combat.invincibility_frames", parameter.InvincibilityFrames)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.queue_depth", parameter.SoundQueueDepth)
	v.SetDefault("room.dir", "rooms")
	v.SetDefault("room.start", "start")
	v.SetDefault("seed", 1)
}

// Load resolves configuration; fs may be nil, otherwise it must have been parsed after RegisterFlags
// Priority: changed flags, environment, config file, defaults
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "read config %s", f.Value.String())
			}
		}
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
		if noAudio, err := fs.GetBool("no-audio"); err == nil && noAudio {
			v.Set("audio.enabled", false)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.normalize()
	return &cfg, nil
}

// normalize clamps numeric settings into their supported ranges
func (c *Config) normalize() {
	c.Frame.Rate = clamp(c.Frame.Rate, parameter.MinFrameRate, parameter.MaxFrameRate)
	c.Combat.InvincibilityFrames = clamp(c.Combat.InvincibilityFrames, 1, parameter.MaxInvincibilityFrames)
	if c.Audio.QueueDepth < 1 {
		c.Audio.QueueDepth = parameter.SoundQueueDepth
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Room.Start == "" {
		c.Room.Start = "start"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
