package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var ErrNoFreeSlot = errors.New("inventory: no free slot")

// Cell is a snapshot of one grid slot. Generation changes every time the
// slot's content changes, so stale async work can recognise itself.
type Cell struct {
	ID         uuid.UUID
	Index      int
	Item       Item
	Occupied   bool
	Generation uint64
}

// Stash is a fixed-capacity grid of 1x1 slots filled in row-major order.
type Stash struct {
	Width  int
	Height int

	mu    sync.Mutex
	cells []Cell
}

func NewStash(width, height int) *Stash {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{ID: uuid.New(), Index: i}
	}
	return &Stash{Width: width, Height: height, cells: cells}
}

// Bind puts item in the first free slot.
func (s *Stash) Bind(item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cells {
		if !s.cells[i].Occupied {
			s.cells[i].Item = item
			s.cells[i].Occupied = true
			s.cells[i].Generation++
			return nil
		}
	}
	return fmt.Errorf("bind %q into %dx%d stash: %w", item.ID, s.Width, s.Height, ErrNoFreeSlot)
}

// Unbind clears the slot holding id.
func (s *Stash) Unbind(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cells {
		if s.cells[i].Occupied && s.cells[i].Item.ID == id {
			s.cells[i].Item = Item{}
			s.cells[i].Occupied = false
			s.cells[i].Generation++
			return true
		}
	}
	return false
}

// SlotOf returns the index of the slot holding id.
func (s *Stash) SlotOf(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.cells {
		if c.Occupied && c.Item.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Cells returns a copy of every slot in row-major order.
func (s *Stash) Cells() []Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Cell(nil), s.cells...)
}

func (s *Stash) Free() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.cells {
		if !c.Occupied {
			n++
		}
	}
	return n
}
