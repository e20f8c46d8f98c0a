package game

import (
	"fmt"

	"explore3d/internal/components"
	"explore3d/internal/engine"
	"explore3d/internal/interactables"
	"explore3d/internal/inventory"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Item IDs placed in the level.
const (
	RustKey = "Rust Key"
	GoldKey = "Gold Key"
	Hammer  = "Hammer"
)

// paint remembers the cube model an object gets once a window exists.
type paint struct {
	obj   *engine.GameObject
	size  rl.Vector3
	color rl.Color
}

var (
	wallColor    = rl.NewColor(110, 105, 100, 255)
	doorColor    = rl.NewColor(120, 80, 45, 255)
	barrierColor = rl.NewColor(90, 60, 35, 255)
	keyColor     = rl.NewColor(200, 120, 60, 255)
	hammerColor  = rl.NewColor(150, 150, 160, 255)
)

// buildLevel lays out a hall with two pickups, a locked door into a
// corridor, and two barricades that need the hammer.
//
//	z=+8  ---------------- start
//	       key      hammer
//	z=-4  ----[ rust door ]----
//	                  barricade (side)
//	z=-10 ----[ gold door + barricade ]----
func (g *Game) buildLevel() error {
	const h = 3.0

	// Outer walls
	g.solid("Wall North", rl.Vector3{Y: h / 2, Z: -14}, rl.Vector3{X: 12, Y: h, Z: 0.3}, wallColor)
	g.solid("Wall South", rl.Vector3{Y: h / 2, Z: 8}, rl.Vector3{X: 12, Y: h, Z: 0.3}, wallColor)
	g.solid("Wall West", rl.Vector3{X: -6, Y: h / 2, Z: -3}, rl.Vector3{X: 0.3, Y: h, Z: 22}, wallColor)
	g.solid("Wall East", rl.Vector3{X: 6, Y: h / 2, Z: -3}, rl.Vector3{X: 0.3, Y: h, Z: 22}, wallColor)

	// Partitions with 1.6 wide doorways at x=0
	for _, z := range []float32{-4, -10} {
		g.solid(fmt.Sprintf("Partition %.0f West", z), rl.Vector3{X: -3.4, Y: h / 2, Z: z}, rl.Vector3{X: 5.2, Y: h, Z: 0.3}, wallColor)
		g.solid(fmt.Sprintf("Partition %.0f East", z), rl.Vector3{X: 3.4, Y: h / 2, Z: z}, rl.Vector3{X: 5.2, Y: h, Z: 0.3}, wallColor)
		g.solid(fmt.Sprintf("Lintel %.0f", z), rl.Vector3{Y: 2.6, Z: z}, rl.Vector3{X: 1.6, Y: 0.8, Z: 0.3}, wallColor)
	}

	doorSize := rl.Vector3{X: 1.6, Y: 2.2, Z: 0.15}

	rustDoor := interactables.NewKeyedDoor(RustKey, g.Items, g.log)
	rustDoor.Key = g.cfg.InteractKey
	rustDoor.Hinge = rl.Vector3{X: -doorSize.X / 2}
	rustDoor.HasHinge = true
	if err := g.interactable("Rust Door", rl.Vector3{Y: doorSize.Y / 2, Z: -4}, doorSize, doorColor, rustDoor); err != nil {
		return err
	}

	// The gold key does not exist: this door only goes down to the hammer
	goldDoor := interactables.NewKeyedDoor(GoldKey, g.Items, g.log)
	goldDoor.Key = g.cfg.InteractKey
	gate, err := g.interactableObject("Iron Gate", rl.Vector3{Y: doorSize.Y / 2, Z: -10}, doorSize, barrierColor, goldDoor)
	if err != nil {
		return err
	}
	g.barrier(gate)

	side := g.solid("Barricade", rl.Vector3{X: 4.5, Y: 1, Z: -7}, rl.Vector3{X: 2, Y: 2, Z: 0.3}, barrierColor)
	g.barrier(side)

	key := interactables.NewPickup(inventory.Item{ID: RustKey, DisplayAssetPath: "Image/key"}, g.Items, g.Text, g.log)
	key.Key = g.cfg.InteractKey
	key.HoldTime = g.cfg.HoldTime
	if err := g.interactable("Rust Key", rl.Vector3{X: -3, Y: 0.6, Z: 2}, rl.Vector3{X: 0.5, Y: 0.2, Z: 0.2}, keyColor, key); err != nil {
		return err
	}

	hammer := interactables.NewPickup(inventory.Item{ID: Hammer, DisplayAssetPath: "Image/hammer"}, g.Items, g.Text, g.log)
	hammer.Key = g.cfg.InteractKey
	hammer.HoldTime = g.cfg.HoldTime
	hammer.UsageHint = fmt.Sprintf("Press %s near a barricade to use it", g.cfg.DestroyKey)
	if err := g.interactable("Hammer", rl.Vector3{X: 3, Y: 0.6, Z: 2}, rl.Vector3{X: 0.3, Y: 0.6, Z: 0.3}, hammerColor, hammer); err != nil {
		return err
	}
	return nil
}

// solid spawns a static box the player collides with and focus casts stop at.
func (g *Game) solid(name string, pos, size rl.Vector3, color rl.Color, extra ...engine.Component) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.AddComponent(components.NewBoxCollider(size))
	for _, c := range extra {
		obj.AddComponent(c)
	}
	g.World.Spawn(obj)
	g.paint = append(g.paint, paint{obj: obj, size: size, color: color})
	return obj
}

func (g *Game) interactable(name string, pos, size rl.Vector3, color rl.Color, target engine.Component) error {
	_, err := g.interactableObject(name, pos, size, color, target)
	return err
}

func (g *Game) interactableObject(name string, pos, size rl.Vector3, color rl.Color, target engine.Component) (*engine.GameObject, error) {
	obj := g.solid(name, pos, size, color, target)
	if _, err := g.Catalog.RegisterObject(obj); err != nil {
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return obj, nil
}

// barrier makes obj smashable with the hammer from close range.
func (g *Game) barrier(obj *engine.GameObject) *interactables.Barrier {
	b := interactables.NewBarrier(Hammer, g.Items, g.Text, g.Text, g.log)
	b.Key = g.cfg.DestroyKey
	b.Radius = g.cfg.DestroyRadius
	b.RemovalDelay = g.cfg.RemovalDelay
	obj.AddComponent(b)
	g.Coord.AddSensor(b)
	return b
}

// attachModels gives every level object its cube. Needs a GL context.
func (g *Game) attachModels() {
	for _, p := range g.paint {
		p.obj.AddComponent(components.NewCubeRenderer(p.size, p.color))
	}
	g.paint = nil
}
