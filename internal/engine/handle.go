package engine

import "fmt"

// Handle is a stable reference to a GameObject inside a Scene.
// Index points into the scene arena; Generation must match the slot's current
// generation for the handle to resolve. Removing an object bumps the slot's
// generation, so every handle held elsewhere turns stale instead of silently
// pointing at whatever is spawned into the recycled slot.
//
// The zero Handle never resolves.
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether the handle was never assigned.
func (h Handle) IsZero() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "handle(none)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.Index, h.Generation)
}
