package engine

import "github.com/lixenwraith/actcore/component"

// Result is returned by Process to keep or remove the entity
type Result uint8

const (
	Continue Result = iota
	// Remove marks the slot for reclamation at the end of the frame
	Remove
)

// Behavior is the per-type (init, process, draw) triple
// Every method receives an Actor bound to the slot being processed and may mutate only that slot
type Behavior interface {
	Init(a Actor, param uint8)
	Process(a Actor) Result
	Draw(a Actor, sink SpriteSink)
}

// BehaviorTable is the closed type -> behavior mapping, fixed at compile time
type BehaviorTable [component.TypeCount]Behavior
