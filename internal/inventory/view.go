package inventory

import (
	"sync"
	"sync/atomic"

	"explore3d/internal/assets"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Deferrer runs work at the start of the next tick.
type Deferrer interface {
	Defer(fn func())
}

// SlotView is what the HUD draws for one stash slot.
type SlotView struct {
	CellID   uuid.UUID
	ItemID   string
	Path     string
	Image    *assets.Image
	Occupied bool
	Loading  bool

	generation uint64
}

// StashView mirrors a Stash for display and loads slot images.
//
// It is the Registry's SlotBinder: Bind places the item and schedules the
// visual apply for the next tick; Unbind clears the vacated slot at once.
// Images load only while the view is active. A finished load is dropped if
// the view was closed meanwhile or its slot now holds something else;
// reopening the view restarts loads for occupied slots still missing a
// picture.
//
// Bind and Unbind may run on any goroutine. Loads are only started from
// Apply and SetActive, which belong to the tick thread like the loader.
type StashView struct {
	stash  *Stash
	loader *assets.Loader
	tasks  Deferrer

	applyPending atomic.Bool

	mu     sync.Mutex
	active bool
	slots  []SlotView
	log    logrus.FieldLogger
}

func NewStashView(stash *Stash, loader *assets.Loader, tasks Deferrer, log logrus.FieldLogger) *StashView {
	if log == nil {
		log = logrus.StandardLogger()
	}
	v := &StashView{
		stash:  stash,
		loader: loader,
		tasks:  tasks,
		log:    log.WithField("component", "stash_view"),
	}
	v.Apply()
	return v
}

func (v *StashView) Stash() *Stash {
	return v.stash
}

func (v *StashView) Bind(item Item) error {
	if err := v.stash.Bind(item); err != nil {
		return err
	}
	v.requestApply()
	return nil
}

func (v *StashView) Unbind(id string) bool {
	if !v.stash.Unbind(id) {
		return false
	}
	v.clearVacated()
	return true
}

func (v *StashView) requestApply() {
	if v.tasks == nil {
		v.Apply()
		return
	}
	if !v.applyPending.CompareAndSwap(false, true) {
		return
	}
	v.tasks.Defer(func() {
		v.applyPending.Store(false)
		v.Apply()
	})
}

// ApplyPending reports whether a deferred apply is queued.
func (v *StashView) ApplyPending() bool {
	return v.applyPending.Load()
}

// Apply copies the stash into the view and starts loads for slots whose
// content changed.
func (v *StashView) Apply() {
	cells := v.stash.Cells()

	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.slots) != len(cells) {
		v.slots = make([]SlotView, len(cells))
	}
	for i, c := range cells {
		slot := &v.slots[i]
		if slot.CellID == c.ID && slot.generation == c.Generation {
			continue
		}
		*slot = SlotView{
			CellID:     c.ID,
			ItemID:     c.Item.ID,
			Path:       c.Item.DisplayAssetPath,
			Occupied:   c.Occupied,
			generation: c.Generation,
		}
		if slot.Occupied && v.active {
			v.load(i)
		}
	}
}

// clearVacated empties slots whose cell was freed. Newly occupied cells are
// left for the deferred Apply so no load starts off the tick thread.
func (v *StashView) clearVacated() {
	cells := v.stash.Cells()

	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.slots) != len(cells) {
		return
	}
	for i, c := range cells {
		slot := &v.slots[i]
		if c.Occupied || (slot.CellID == c.ID && slot.generation == c.Generation) {
			continue
		}
		v.slots[i] = SlotView{CellID: c.ID, generation: c.Generation}
	}
}

// SetActive opens or closes the view.
func (v *StashView) SetActive(active bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.active == active {
		return
	}
	v.active = active
	if !active {
		return
	}
	for i := range v.slots {
		s := &v.slots[i]
		if s.Occupied && s.Image == nil && !s.Loading {
			v.load(i)
		}
	}
}

func (v *StashView) Active() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

// load starts the image load for slot i. Callers hold v.mu; the callback
// runs later from Loader.Poll and takes the lock itself.
func (v *StashView) load(i int) {
	if v.loader == nil {
		return
	}
	slot := &v.slots[i]
	slot.Loading = true
	cellID, gen, path := slot.CellID, slot.generation, slot.Path

	v.loader.LoadAsync(path, func(img *assets.Image, err error) {
		v.mu.Lock()
		defer v.mu.Unlock()
		if i >= len(v.slots) {
			return
		}
		s := &v.slots[i]
		if s.CellID != cellID || s.generation != gen {
			v.log.WithField("path", path).Debug("Discarding image for a slot that changed")
			return
		}
		s.Loading = false
		if !v.active {
			v.log.WithField("path", path).Debug("Discarding image, view closed")
			return
		}
		if err != nil {
			// Loader already logged it
			return
		}
		s.Image = img
	})
}

// Slots returns a copy of the view's slots in row-major order.
func (v *StashView) Slots() []SlotView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]SlotView(nil), v.slots...)
}

func (v *StashView) Width() int {
	return v.stash.Width
}

func (v *StashView) Height() int {
	return v.stash.Height
}
