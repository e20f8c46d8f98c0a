package engine

import "time"

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// Resolve returns the live object for h, or nil.
	Resolve(h Handle) *GameObject
	// ScheduleRemoval removes the object after delay. Fire-and-forget.
	ScheduleRemoval(h Handle, delay time.Duration)
	// Defer runs fn at the start of the next tick.
	Defer(fn func())
}
