package interaction

import (
	"fmt"
	"time"

	"explore3d/internal/engine"
	"explore3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const tick = 100 * time.Millisecond

// callLog records callbacks from every fake in one ordered list.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) count(call string) int {
	n := 0
	for _, c := range l.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeTarget struct {
	engine.BaseComponent
	name      string
	log       *callLog
	panicHook string
}

func (f *fakeTarget) Name() string { return f.name }
func (f *fakeTarget) hook(h string) {
	f.log.add("%s.%s", f.name, h)
	if h == f.panicHook {
		panic(h + " exploded")
	}
}
func (f *fakeTarget) Interact()      { f.hook("interact") }
func (f *fakeTarget) OnEnter()       { f.hook("enter") }
func (f *fakeTarget) OnExit()        { f.hook("exit") }
func (f *fakeTarget) Prompt() string { return "Press E to use " + f.name }

type fakeLongPress struct {
	fakeTarget
	required time.Duration
	progress []float32
}

func (f *fakeLongPress) RequiredHoldTime() time.Duration { return f.required }
func (f *fakeLongPress) OnLongPressStart()               { f.hook("start") }
func (f *fakeLongPress) OnLongPressUpdate(p float32)     { f.progress = append(f.progress, p) }
func (f *fakeLongPress) OnLongPressComplete()            { f.hook("complete") }
func (f *fakeLongPress) OnLongPressCancel()              { f.hook("cancel") }

type fakeDisplay struct {
	text   string
	shown  bool
	hides  int
	writes int
}

func (d *fakeDisplay) SetText(text string) {
	d.text = text
	d.shown = true
	d.writes++
}

func (d *fakeDisplay) HideText() {
	d.text = ""
	d.shown = false
	d.hides++
}

// fakeCaster reports a hit on whatever handle the test aims at.
type fakeCaster struct {
	aim   engine.Handle
	casts int
}

func (p *fakeCaster) CastFirstHit(origin, dir rl.Vector3, shape physics.Shape, maxRange float32) (physics.Hit, bool) {
	p.casts++
	if p.aim.IsZero() {
		return physics.Hit{}, false
	}
	return physics.Hit{Object: p.aim, Distance: 1}, true
}

type fixture struct {
	scene   *engine.Scene
	catalog *Catalog
	caster  *fakeCaster
	display *fakeDisplay
	calls   *callLog
	hook    *test.Hook
	coord   *Coordinator
}

func newFixture() *fixture {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	scene := engine.NewScene("test")
	catalog := NewCatalog(scene, logger)
	caster := &fakeCaster{}
	display := &fakeDisplay{}
	detector := NewDetector(caster, catalog, display, 3, physics.Sphere(0.2), logger)
	coord := NewCoordinator(detector, NewTracker(logger), nil, logger)

	return &fixture{
		scene:   scene,
		catalog: catalog,
		caster:  caster,
		display: display,
		calls:   &callLog{},
		hook:    hook,
		coord:   coord,
	}
}

func (f *fixture) spawn(t Target) *engine.GameObject {
	g := engine.NewGameObject(t.Name())
	if comp, ok := t.(engine.Component); ok {
		g.AddComponent(comp)
	}
	f.scene.AddGameObject(g)
	if _, err := f.catalog.Register(g.Handle(), t); err != nil {
		panic(err)
	}
	return g
}

func (f *fixture) instant(name string) (*fakeTarget, *engine.GameObject) {
	t := &fakeTarget{name: name, log: f.calls}
	return t, f.spawn(t)
}

func (f *fixture) longPress(name string) (*fakeLongPress, *engine.GameObject) {
	t := &fakeLongPress{fakeTarget: fakeTarget{name: name, log: f.calls}, required: 1500 * time.Millisecond}
	return t, f.spawn(t)
}

func (f *fixture) tick(in Input) {
	f.coord.Tick(tick, View{Forward: rl.Vector3{Z: -1}}, in)
}

func (f *fixture) hold(n int) {
	for i := 0; i < n; i++ {
		f.tick(Input{Held: true})
	}
}

func (f *fixture) warnings() int {
	n := 0
	for _, e := range f.hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			n++
		}
	}
	return n
}
