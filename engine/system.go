package engine

// System is a per-frame phase that runs after behavior dispatch
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(w *World)
}
