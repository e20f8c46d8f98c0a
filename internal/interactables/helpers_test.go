package interactables

import (
	"time"

	"explore3d/internal/components"
	"explore3d/internal/engine"
	"explore3d/internal/inventory"
	"explore3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus/hooks/test"
)

const tick = 100 * time.Millisecond

type screen struct {
	text      string
	hides     int
	announced []string
}

func (s *screen) SetText(text string)  { s.text = text }
func (s *screen) HideText()            { s.text = ""; s.hides++ }
func (s *screen) Announce(text string) { s.announced = append(s.announced, text) }

type fixture struct {
	world  *world.World
	items  *inventory.Registry
	screen *screen
}

func newFixture() *fixture {
	logger, _ := test.NewNullLogger()
	return &fixture{
		world:  world.New(logger),
		items:  inventory.NewRegistry(logger),
		screen: &screen{},
	}
}

func (f *fixture) object(name string, pos rl.Vector3, comps ...engine.Component) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 2, Z: 0.1}))
	for _, c := range comps {
		g.AddComponent(c)
	}
	f.world.Spawn(g)
	return g
}
