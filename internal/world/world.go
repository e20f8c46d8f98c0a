package world

import (
	"time"

	"explore3d/internal/components"
	"explore3d/internal/engine"
	"explore3d/internal/physics"

	"github.com/sirupsen/logrus"
)

type pendingRemoval struct {
	handle engine.Handle
	due    time.Duration
}

// World owns the scene, the physics world and the per-tick bookkeeping
// (deferred tasks and delayed removals). It implements engine.WorldAccess.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	Tasks   *engine.TaskQueue

	// Removed fires after an object left the scene, with its old handle.
	Removed engine.EventWithArg[engine.Handle]

	elapsed  time.Duration
	removals []pendingRemoval
	log      logrus.FieldLogger
}

func New(log logrus.FieldLogger) *World {
	if log == nil {
		log = logrus.StandardLogger()
	}
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewWorld(),
		Tasks:   engine.NewTaskQueue(),
		log:     log.WithField("component", "world"),
	}
	w.Scene.World = w
	return w
}

// Spawn adds g and its children to the scene. Objects with colliders also
// join the physics world.
func (w *World) Spawn(g *engine.GameObject) engine.Handle {
	w.Scene.AddGameObject(g)
	if hasCollider(g) {
		w.Physics.AddObject(g)
	}
	for _, child := range g.Children {
		w.Spawn(child)
	}
	return g.Handle()
}

func hasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil
}

func (w *World) Resolve(h engine.Handle) *engine.GameObject {
	return w.Scene.Resolve(h)
}

// ScheduleRemoval removes the object once delay has elapsed, counted from
// the current tick. Stale handles are dropped silently when due.
func (w *World) ScheduleRemoval(h engine.Handle, delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	w.removals = append(w.removals, pendingRemoval{handle: h, due: w.elapsed + delay})
}

func (w *World) Defer(fn func()) {
	w.Tasks.Defer(fn)
}

// Update runs one tick: deferred tasks from the previous tick first, then
// every component, then removals that came due.
func (w *World) Update(dt time.Duration) {
	w.elapsed += dt
	w.Tasks.Drain()
	w.Scene.Update(float32(dt.Seconds()))
	w.processRemovals()
}

func (w *World) processRemovals() {
	if len(w.removals) == 0 {
		return
	}
	keep := w.removals[:0]
	var due []engine.Handle
	for _, r := range w.removals {
		if r.due <= w.elapsed {
			due = append(due, r.handle)
		} else {
			keep = append(keep, r)
		}
	}
	w.removals = keep

	for _, h := range due {
		w.remove(h)
	}
}

func (w *World) remove(h engine.Handle) {
	g := w.Scene.Resolve(h)
	if g == nil {
		w.log.WithField("handle", h).Debug("Removal target already gone")
		return
	}
	w.unregister(g)
	w.Scene.RemoveGameObject(g)
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	w.log.WithFields(logrus.Fields{"object": g.Name, "handle": h}).Debug("Object removed")
	w.Removed.Invoke(h)
}

func (w *World) unregister(g *engine.GameObject) {
	w.Physics.RemoveObject(g)
	for _, child := range g.Children {
		w.unregister(child)
	}
}

// PendingRemovals returns the number of scheduled removals not yet applied.
func (w *World) PendingRemovals() int {
	return len(w.removals)
}

// Elapsed returns the total simulated time.
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Unload()
		}
	}
}
