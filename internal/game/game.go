package game

import (
	"fmt"
	"time"

	"explore3d/internal/assets"
	"explore3d/internal/components"
	"explore3d/internal/config"
	"explore3d/internal/engine"
	"explore3d/internal/interaction"
	"explore3d/internal/inventory"
	"explore3d/internal/physics"
	"explore3d/internal/telemetry"
	"explore3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

type Game struct {
	Player *engine.GameObject
	World  *world.World

	Items   *inventory.Registry
	Stash   *inventory.StashView
	Loader  *assets.Loader
	Catalog *interaction.Catalog
	Coord   *interaction.Coordinator

	Text     *components.UIText
	Progress *components.UIProgressBar
	HUD      *HUD

	DebugMode bool

	cfg      *config.Config
	keys     keyMap
	renderer *world.Renderer
	paint    []paint
	log      logrus.FieldLogger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New wires the interaction stack and builds the level. It needs no window;
// Run opens one. metrics may be nil.
func New(cfg *config.Config, log logrus.FieldLogger, metrics *telemetry.Metrics) (*Game, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	keys, err := newKeyMap(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		World:    world.New(log),
		Items:    inventory.NewRegistry(log),
		Text:     components.NewUIText(),
		Progress: components.NewUIProgressBar(),
		cfg:      cfg,
		keys:     keys,
		log:      log.WithField("component", "game"),
	}

	g.Loader, err = assets.NewLoader(assets.NewFileSource(cfg.AssetRoot), cfg.AssetCacheSize, log)
	if err != nil {
		return nil, fmt.Errorf("asset loader: %w", err)
	}
	g.Stash = inventory.NewStashView(inventory.NewStash(cfg.InventoryWidth, cfg.InventoryHeight), g.Loader, g.World, log)
	g.Items.BindSlots(g.Stash)
	g.HUD = NewHUD(g.Stash, g.Text, g.Progress)

	shape := physics.Ray()
	if cfg.UseSphereCast {
		shape = physics.Sphere(cfg.SphereRadius)
	}
	g.Catalog = interaction.NewCatalog(g.World, log)
	detector := interaction.NewDetector(g.World.Physics, g.Catalog, g.Text, cfg.InteractRange, shape, log)

	var m interaction.Metrics
	if metrics != nil {
		m = metrics
		g.Items.Watch(metrics.InventoryChanged)
		g.Loader.OnFailure = metrics.AssetFailed
	}
	g.Coord = interaction.NewCoordinator(detector, interaction.NewTracker(log), m, log)

	g.World.Removed.AddListener(func(h engine.Handle) {
		g.Catalog.Unregister(h)
	})

	g.createPlayer()
	if err := g.buildLevel(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "explore3d")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	g.renderer = world.NewRenderer()
	g.attachModels()
	initHUDStyle()
	defer g.unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) createPlayer() {
	g.Player = engine.NewGameObject("Player")
	g.Player.Transform.Position = rl.Vector3{X: 0, Y: 0, Z: 6}

	g.Player.AddComponent(components.NewFPSController())
	g.Player.AddComponent(world.NewPlayerCollision(g.World.Physics))
	g.Player.AddComponent(components.NewCamera())

	g.World.Spawn(g.Player)
}

// Update reads raylib input and advances one frame.
func (g *Game) Update() {
	updateStart := time.Now()

	if rl.IsKeyPressed(g.keys.inventory) {
		g.ToggleInventory()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	in := interaction.Input{
		Held:           rl.IsKeyDown(g.keys.interact),
		Pressed:        rl.IsKeyPressed(g.keys.interact),
		DestroyPressed: rl.IsKeyPressed(g.keys.destroy),
	}
	g.Step(time.Duration(float64(rl.GetFrameTime())*float64(time.Second)), in)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// Step is one tick: deferred work and removals, finished asset loads, then
// focus, gestures and sensors, then the HUD state.
func (g *Game) Step(dt time.Duration, in interaction.Input) {
	g.World.Update(dt)
	g.Loader.Poll()

	// The open panel owns the keys; focus was dropped when it opened
	if !g.HUD.Open() {
		g.Coord.Tick(dt, g.View(), in)
	}

	g.Text.Update(float32(dt.Seconds()))
	if st := g.Coord.Tracker.State(); st.Phase == interaction.Holding && st.Required > 0 {
		g.Progress.Show(float32(st.Elapsed) / float32(st.Required))
	} else {
		g.Progress.Hide()
	}
}

// View is where the focus cast starts and points this tick.
func (g *Game) View() interaction.View {
	fps := engine.GetComponent[*components.FPSController](g.Player)
	return interaction.View{
		Origin:   fps.EyePosition(),
		Forward:  fps.LookVector(),
		Position: g.Player.Transform.Position,
	}
}

// ToggleInventory opens or closes the stash panel. Slot images only load
// while it is open.
func (g *Game) ToggleInventory() {
	open := !g.HUD.Open()
	g.HUD.SetOpen(open)
	g.Stash.SetActive(open)

	fps := engine.GetComponent[*components.FPSController](g.Player)
	fps.LookEnabled = !open
	fps.MoveEnabled = !open
	if open {
		g.Coord.Detector.Clear()
	}
	if !rl.IsWindowReady() {
		return
	}
	if open {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	g.renderer.Draw(cam.GetRaylibCamera(), g.World.Scene.GameObjects)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.HUD.Draw()
	g.drawDebug()
	rl.EndDrawing()
}

func (g *Game) drawDebug() {
	rl.DrawText(fmt.Sprintf("WASD move, %s interact, %s destroy, %s inventory", g.cfg.InteractKey, g.cfg.DestroyKey, g.cfg.InventoryKey), 10, 10, 20, rl.LightGray)
	rl.DrawFPS(10, 35)
	if !g.DebugMode {
		return
	}

	focus := "none"
	if e := g.Coord.Detector.Current(); e != nil {
		focus = e.Name
	}
	st := g.Coord.Tracker.State()
	rl.DrawText(fmt.Sprintf("Focus:   %s", focus), 10, 60, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Gesture: %s %v/%v", st.Phase, st.Elapsed.Round(time.Millisecond), st.Required), 10, 80, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Items:   %v", g.Items.List()), 10, 100, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 120, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 140, 16, rl.Green)
}

func (g *Game) unload() {
	g.HUD.Unload()
	g.World.Unload()
	g.Loader.Purge()
}
