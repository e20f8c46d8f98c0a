package interactables

import (
	"testing"
	"time"

	"explore3d/internal/engine"
	"explore3d/internal/interaction"
	"explore3d/internal/inventory"
	"explore3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupPromptShowsProgress(t *testing.T) {
	f := newFixture()
	key := NewPickup(inventory.Item{ID: "Rust Key"}, f.items, f.screen, nil)

	assert.Equal(t, "Hold E to pick up Rust Key", key.Prompt())
	key.OnLongPressStart()
	key.OnLongPressUpdate(0.466)
	assert.Equal(t, "Hold E to pick up Rust Key (47%)", key.Prompt())

	key.OnLongPressCancel()
	assert.Equal(t, "Hold E to pick up Rust Key", key.Prompt())
	assert.Zero(t, key.Progress())
}

func TestPickupAddsAndRemovesObject(t *testing.T) {
	f := newFixture()
	key := NewPickup(inventory.Item{ID: "Rust Key", DisplayAssetPath: "Image/key"}, f.items, f.screen, nil)
	g := f.object("Key", rl.Vector3{}, key)
	h := g.Handle()

	key.Interact()
	assert.True(t, f.items.Has("Rust Key"))
	assert.True(t, key.PickedUp())
	assert.False(t, g.Active, "gone from view immediately")
	assert.Equal(t, []string{"Rust Key added to inventory"}, f.screen.announced)

	f.world.Update(tick)
	assert.Nil(t, f.world.Resolve(h))

	key.Interact()
	assert.Len(t, f.screen.announced, 1, "second interact is ignored")
}

func TestPickupDuplicateFailsSilently(t *testing.T) {
	f := newFixture()
	f.items.Add("Rust Key")
	key := NewPickup(inventory.Item{ID: "Rust Key"}, f.items, f.screen, nil)
	g := f.object("Key", rl.Vector3{}, key)

	key.Interact()
	assert.False(t, key.PickedUp())
	assert.True(t, g.Active)
	assert.Empty(t, f.screen.announced)
	assert.Equal(t, []string{"Rust Key"}, f.items.List())
}

func TestPickupToolHintAndDeactivateOnly(t *testing.T) {
	f := newFixture()
	hammer := NewPickup(inventory.Item{ID: "Hammer", DisplayAssetPath: "Image/hammer"}, f.items, f.screen, nil)
	hammer.UsageHint = "Press H near a barricade to use it"
	hammer.DestroyOnPickup = false
	g := f.object("Hammer", rl.Vector3{}, hammer)

	hammer.Interact()
	assert.Equal(t, []string{"Hammer added to inventory. Press H near a barricade to use it"}, f.screen.announced)
	assert.False(t, g.Active)
	assert.Equal(t, 0, f.world.PendingRemovals())
}

// Full loop: cast, hold, pickup, door.
func TestPickupThenOpenDoorThroughCoordinator(t *testing.T) {
	f := newFixture()
	logger, _ := test.NewNullLogger()

	key := NewPickup(inventory.Item{ID: "Rust Key"}, f.items, f.screen, logger)
	keyObj := f.object("Key", rl.Vector3{Z: -2}, key)
	door := NewKeyedDoor("Rust Key", f.items, logger)
	doorObj := f.object("Door", rl.Vector3{X: 10, Z: -2}, door)

	catalog := interaction.NewCatalog(f.world, logger)
	_, err := catalog.RegisterObject(keyObj)
	require.NoError(t, err)
	_, err = catalog.RegisterObject(doorObj)
	require.NoError(t, err)
	f.world.Removed.AddListener(func(h engine.Handle) { catalog.Unregister(h) })

	detector := interaction.NewDetector(f.world.Physics, catalog, f.screen, 3, physics.Sphere(0.2), logger)
	coord := interaction.NewCoordinator(detector, interaction.NewTracker(logger), nil, logger)

	atKey := interaction.View{Forward: rl.Vector3{Z: -1}}
	step := func(v interaction.View, in interaction.Input) {
		f.world.Update(100 * time.Millisecond)
		coord.Tick(100*time.Millisecond, v, in)
	}

	for i := 0; i < 15; i++ {
		step(atKey, interaction.Input{Held: true})
	}
	require.True(t, f.items.Has("Rust Key"))
	step(atKey, interaction.Input{})
	assert.Nil(t, detector.Current())
	assert.Equal(t, 1, catalog.Len(), "removed pickup is unregistered")

	atDoor := interaction.View{Origin: rl.Vector3{X: 10}, Forward: rl.Vector3{Z: -1}}
	step(atDoor, interaction.Input{})
	assert.Equal(t, "Press E to unlock door (Requires Rust Key)", f.screen.text)
	step(atDoor, interaction.Input{Held: true, Pressed: true})
	assert.True(t, door.IsOpen())
	assert.Equal(t, "Press E to close door", f.screen.text)
}
