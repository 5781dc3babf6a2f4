package component

import (
	"github.com/lixenwraith/actcore/core"
	"github.com/lixenwraith/actcore/parameter"
	"github.com/lixenwraith/actcore/sprite"
)

// EntityData is the read-only per-type row copied into a slot at spawn
type EntityData struct {
	Name       string
	MaxHealth  uint16
	Attack     uint16
	TileBox    core.HalfBox
	Frame      sprite.FrameID
	ZPriority  int8
	Team       Team
	IsEnemy    bool
	Death      DeathBehavior
	HurtSound  core.SoundID
	DeathSound core.SoundID
}

// Indestructible reports whether the type carries the health sentinel
func (d *EntityData) Indestructible() bool {
	return d.MaxHealth == parameter.HealthIndestructible
}

var entityData = [TypeCount]EntityData{
	TypePlayer: {
		Name:      "player",
		MaxHealth: 12,
		Attack:    2,
		TileBox:   core.HalfBox{HalfW: 4, HalfH: 4},
		Frame:     sprite.FramePlayerIdle,
		ZPriority: parameter.ZPlayer,
		Team:      TeamPlayer,
		HurtSound: SoundPlayerHurt,
	},
	TypeBolt: {
		Name:      "bolt",
		MaxHealth: 1,
		Attack:    1,
		TileBox:   core.HalfBox{HalfW: 2, HalfH: 2},
		Frame:     sprite.FrameBolt,
		ZPriority: parameter.ZProjectile,
		Team:      TeamPlayer,
	},
	TypeWalker: {
		Name:       "walker",
		MaxHealth:  4,
		Attack:     1,
		TileBox:    core.HalfBox{HalfW: 3, HalfH: 3},
		Frame:      sprite.FrameWalker,
		ZPriority:  parameter.ZActor,
		Team:       TeamEnemy,
		IsEnemy:    true,
		Death:      DeathBurst,
		HurtSound:  SoundHurt,
		DeathSound: SoundDeath,
	},
	TypeArcher: {
		Name:       "archer",
		MaxHealth:  3,
		Attack:     0,
		TileBox:    core.HalfBox{HalfW: 4, HalfH: 4},
		Frame:      sprite.FrameArcher,
		ZPriority:  parameter.ZActor,
		Team:       TeamEnemy,
		IsEnemy:    true,
		Death:      DeathBurst,
		HurtSound:  SoundHurt,
		DeathSound: SoundDeath,
	},
	TypeArrow: {
		Name:      "arrow",
		MaxHealth: 1,
		Attack:    2,
		TileBox:   core.HalfBox{HalfW: 2, HalfH: 1},
		Frame:     sprite.FrameArrow,
		ZPriority: parameter.ZProjectile,
		Team:      TeamEnemy,
	},
	TypeSpark: {
		Name:      "spark",
		MaxHealth: 1,
		TileBox:   core.HalfBox{HalfW: 1, HalfH: 1},
		Frame:     sprite.FrameSpark,
		ZPriority: parameter.ZEffect,
		Team:      TeamNeutral,
	},
	TypeShadow: {
		Name:      "shadow",
		MaxHealth: 1,
		Frame:     sprite.FrameShadow,
		ZPriority: parameter.ZShadow,
		Team:      TeamNeutral,
	},
	TypeSwitch: {
		Name:      "switch",
		MaxHealth: parameter.HealthIndestructible,
		TileBox:   core.HalfBox{HalfW: 4, HalfH: 4},
		Frame:     sprite.FrameSwitchOff,
		ZPriority: parameter.ZFloor,
		Team:      TeamEnemy,
		HurtSound: SoundSwitch,
	},
}

// Data returns the static row for t; callers validate t first
func Data(t EntityType) *EntityData {
	return &entityData[t]
}
