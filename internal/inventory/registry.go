// Package inventory holds the items the player carries and the grid they
// are shown in.
package inventory

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultAssetPath is the slot image used when an item names none.
const DefaultAssetPath = "Image/key"

type Item struct {
	ID               string
	DisplayAssetPath string
}

// SlotBinder places items into a visual grid. Bind failures never undo the
// logical add.
type SlotBinder interface {
	Bind(item Item) error
	Unbind(id string) bool
}

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
)

func (k ChangeKind) String() string {
	if k == Added {
		return "added"
	}
	return "removed"
}

// Change describes one successful mutation. Size is the count afterwards.
type Change struct {
	Kind ChangeKind
	Item Item
	Size int
}

// Registry is the set of collected item IDs, in insertion order, plus the
// shared "a destroy item was consumed" flag. Every method is safe for
// concurrent use, also with a StashView bound; observers run outside the
// lock.
type Registry struct {
	mu       sync.Mutex
	order    []Item
	index    map[string]int
	consumed bool
	binder   SlotBinder
	watchers []func(Change)
	log      logrus.FieldLogger
}

func NewRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Registry{
		index: make(map[string]int),
		log:   log.WithField("component", "inventory"),
	}
}

// BindSlots attaches a visual grid. Items already held are not replayed.
func (r *Registry) BindSlots(b SlotBinder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.binder = b
}

// Watch registers fn to be told about every successful Add and Remove.
func (r *Registry) Watch(fn func(Change)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers = append(r.watchers, fn)
}

// Add inserts id with the default slot image.
func (r *Registry) Add(id string) bool {
	return r.AddItem(Item{ID: id})
}

// AddItem inserts item unless its ID is already held. It reports whether the
// set changed.
func (r *Registry) AddItem(item Item) bool {
	if item.DisplayAssetPath == "" {
		item.DisplayAssetPath = DefaultAssetPath
	}

	r.mu.Lock()
	if _, ok := r.index[item.ID]; ok {
		r.mu.Unlock()
		r.log.WithField("item", item.ID).Debug("Item already in inventory")
		return false
	}
	r.index[item.ID] = len(r.order)
	r.order = append(r.order, item)
	if r.binder != nil {
		if err := r.binder.Bind(item); err != nil {
			r.log.WithField("item", item.ID).WithError(err).Warn("Item added without a slot")
		}
	}
	change := Change{Kind: Added, Item: item, Size: len(r.order)}
	watchers := r.watchers
	r.mu.Unlock()

	r.log.WithField("item", item.ID).Info("Added to inventory")
	notify(watchers, change)
	return true
}

// Has reports whether id is held.
func (r *Registry) Has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.index[id]
	return ok
}

// Remove drops id. It reports whether id was held.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	change, ok := r.removeLocked(id)
	watchers := r.watchers
	r.mu.Unlock()

	if ok {
		r.log.WithField("item", id).Info("Removed from inventory")
		notify(watchers, change)
	}
	return ok
}

// Consume removes id and raises the shared consumed flag in one step. It
// fails, changing nothing, when id is not held.
func (r *Registry) Consume(id string) bool {
	r.mu.Lock()
	change, ok := r.removeLocked(id)
	if ok {
		r.consumed = true
	}
	watchers := r.watchers
	r.mu.Unlock()

	if ok {
		r.log.WithField("item", id).Info("Item consumed")
		notify(watchers, change)
	}
	return ok
}

// Consumed reports whether any destroy item was ever consumed.
func (r *Registry) Consumed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.consumed
}

func (r *Registry) removeLocked(id string) (Change, bool) {
	i, ok := r.index[id]
	if !ok {
		return Change{}, false
	}
	item := r.order[i]
	r.order = append(r.order[:i], r.order[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.order); j++ {
		r.index[r.order[j].ID] = j
	}
	if r.binder != nil {
		r.binder.Unbind(id)
	}
	return Change{Kind: Removed, Item: item, Size: len(r.order)}, true
}

// List returns the held IDs in insertion order.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.order))
	for i, item := range r.order {
		ids[i] = item.ID
	}
	return ids
}

// Items returns a copy of the held items in insertion order.
func (r *Registry) Items() []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Item(nil), r.order...)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

func notify(watchers []func(Change), c Change) {
	for _, fn := range watchers {
		fn(c)
	}
}
