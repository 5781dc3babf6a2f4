package component

import (
	"strings"

	"github.com/pkg/errors"
)

// EntityType is the closed set of entity kinds; every value has a static data row and a behavior
type EntityType uint8

const (
	TypePlayer EntityType = iota
	TypeBolt
	TypeWalker
	TypeArcher
	TypeArrow
	TypeSpark
	TypeShadow
	TypeSwitch

	TypeCount
)

// ErrUnknownType is returned for type ids and names outside the closed set
var ErrUnknownType = errors.New("unknown entity type")

var typeNames = [TypeCount]string{
	TypePlayer: "player",
	TypeBolt:   "bolt",
	TypeWalker: "walker",
	TypeArcher: "archer",
	TypeArrow:  "arrow",
	TypeSpark:  "spark",
	TypeShadow: "shadow",
	TypeSwitch: "switch",
}

// Valid reports whether t is inside the closed set
func (t EntityType) Valid() bool { return t < TypeCount }

func (t EntityType) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return typeNames[t]
}

// ParseEntityType resolves a room-file type name
func ParseEntityType(name string) (EntityType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range typeNames {
		if s == n {
			return EntityType(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownType, "%q", name)
}
