package engine

// arenaSlot holds one object and the generation handles must match.
type arenaSlot struct {
	obj *GameObject
	gen uint32
}

type Scene struct {
	Name        string
	GameObjects []*GameObject
	// World gives components access to removal and deferred work.
	World WorldAccess

	slots []arenaSlot
	free  []uint32
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		slots:       make([]arenaSlot, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if g.Scene == s && s.Resolve(g.handle) == g {
		return
	}
	g.Scene = s
	g.handle = s.allocate(g)
	s.GameObjects = append(s.GameObjects, g)
}

func (s *Scene) allocate(g *GameObject) Handle {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[idx].obj = g
		return Handle{Index: idx, Generation: s.slots[idx].gen}
	}
	s.slots = append(s.slots, arenaSlot{obj: g, gen: 1})
	return Handle{Index: uint32(len(s.slots) - 1), Generation: 1}
}

// RemoveGameObject drops g and its children from the scene and invalidates
// their handles.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		if child.Scene == s {
			s.RemoveGameObject(child)
		}
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	h := g.handle
	if int(h.Index) < len(s.slots) && s.slots[h.Index].obj == g && s.slots[h.Index].gen == h.Generation {
		s.slots[h.Index].obj = nil
		s.slots[h.Index].gen++
		s.free = append(s.free, h.Index)
	}
	g.Scene = nil
}

// Resolve returns the live object for h, or nil if h is zero or stale.
func (s *Scene) Resolve(h Handle) *GameObject {
	if s == nil || h.IsZero() || int(h.Index) >= len(s.slots) {
		return nil
	}
	slot := s.slots[h.Index]
	if slot.gen != h.Generation {
		return nil
	}
	return slot.obj
}

// FindByName returns the first object called name, or nil.
func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	// Components may remove objects mid-loop
	objects := append([]*GameObject(nil), s.GameObjects...)
	for _, g := range objects {
		if g.Scene != s {
			continue
		}
		g.Update(deltaTime)
	}
}
