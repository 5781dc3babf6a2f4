// Package status holds process telemetry: counters the engine bumps when it absorbs a failure
// (rejected spawn, clamped velocity, dropped sound) so those stay observable without changing behavior.
package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during init; frame loops write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// Snapshot copies every integer metric, keyed by name
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}
