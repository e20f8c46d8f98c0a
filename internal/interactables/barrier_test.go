package interactables

import (
	"testing"

	"explore3d/internal/components"
	"explore3d/internal/engine"
	"explore3d/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func near(player rl.Vector3, pressed bool) interaction.SenseInput {
	return interaction.SenseInput{Player: player, DestroyPressed: pressed}
}

func TestBarrierPrompts(t *testing.T) {
	f := newFixture()
	barrier := NewBarrier("Hammer", f.items, f.screen, f.screen, nil)
	f.object("Barricade", rl.Vector3{Z: -2}, barrier)

	assert.False(t, barrier.Sense(near(rl.Vector3{Z: 5}, false)))
	assert.Empty(t, f.screen.text, "out of range says nothing")

	barrier.Sense(near(rl.Vector3{}, false))
	assert.Equal(t, "Need Hammer to destroy this door", f.screen.text)

	barrier.Sense(near(rl.Vector3{}, true))
	assert.Equal(t, "You need Hammer to destroy this door!", f.screen.text)
	assert.False(t, barrier.Destroyed())

	f.items.Add("Hammer")
	barrier.Sense(near(rl.Vector3{}, false))
	assert.Equal(t, "Press H to destroy door with Hammer", f.screen.text)

	// Walking away clears what the barrier wrote
	barrier.Sense(near(rl.Vector3{Z: 10}, false))
	assert.Empty(t, f.screen.text)
	assert.Equal(t, 1, f.screen.hides)
}

func TestBarrierConsumesExactlyOnce(t *testing.T) {
	f := newFixture()
	first := NewBarrier("Hammer", f.items, f.screen, f.screen, nil)
	second := NewBarrier("Hammer", f.items, f.screen, f.screen, nil)
	door := NewKeyedDoor("Rust Key", f.items, nil)
	g := f.object("Barricade", rl.Vector3{Z: -2}, door, first)
	f.object("Barricade 2", rl.Vector3{X: 4, Z: -2}, second)
	f.items.Add("Hammer")

	require.True(t, first.Sense(near(rl.Vector3{}, true)))
	assert.True(t, first.Destroyed())
	assert.False(t, f.items.Has("Hammer"))
	assert.True(t, f.items.Consumed())
	assert.Equal(t, []string{"Door destroyed! Hammer was consumed."}, f.screen.announced)

	// Same edge again does nothing more
	assert.False(t, first.Sense(near(rl.Vector3{}, true)))
	assert.Len(t, f.screen.announced, 1)

	// Broken barrier no longer blocks, shows or answers as a door
	assert.False(t, g.Visible)
	assert.False(t, engine.GetComponent[*components.BoxCollider](g).Enabled())
	assert.False(t, door.Enabled())

	// The shared flag hides the "Need" prompt on every other barrier
	f.screen.text = ""
	second.Sense(near(rl.Vector3{X: 4}, false))
	assert.Empty(t, f.screen.text)
	assert.False(t, second.Sense(near(rl.Vector3{X: 4}, true)))
	assert.Equal(t, "You need Hammer to destroy this door!", f.screen.text)
}

func TestBarrierRemovedAfterDelay(t *testing.T) {
	f := newFixture()
	barrier := NewBarrier("Hammer", f.items, f.screen, f.screen, nil)
	g := f.object("Barricade", rl.Vector3{}, barrier)
	h := g.Handle()
	f.items.Add("Hammer")

	require.True(t, barrier.Sense(near(rl.Vector3{}, true)))
	for i := 0; i < 19; i++ {
		f.world.Update(tick)
	}
	assert.NotNil(t, f.world.Resolve(h), "still present before the delay")
	f.world.Update(tick)
	assert.Nil(t, f.world.Resolve(h))
}

func TestBarrierDeactivateOnly(t *testing.T) {
	f := newFixture()
	barrier := NewBarrier("Hammer", f.items, f.screen, nil, nil)
	barrier.DestroyOnUse = false
	g := f.object("Barricade", rl.Vector3{}, barrier)
	f.items.Add("Hammer")

	require.True(t, barrier.Sense(near(rl.Vector3{}, true)))
	assert.False(t, g.Active)
	assert.Equal(t, "Door destroyed! Hammer was consumed.", f.screen.text, "falls back to the prompt line")
	assert.Equal(t, 0, f.world.PendingRemovals())
}

func TestBarrierWithoutInventory(t *testing.T) {
	f := newFixture()
	barrier := NewBarrier("Hammer", nil, f.screen, f.screen, nil)
	f.object("Barricade", rl.Vector3{}, barrier)

	assert.NotPanics(t, func() {
		assert.False(t, barrier.Sense(near(rl.Vector3{}, true)))
	})
}

func TestBarrierLeavesNoPromptBehindTheNotice(t *testing.T) {
	f := newFixture()
	ui := components.NewUIText()
	barrier := NewBarrier("Hammer", f.items, ui, ui, nil)
	f.object("Barricade", rl.Vector3{Z: -2}, barrier)
	f.items.Add("Hammer")

	barrier.Sense(near(rl.Vector3{}, false))
	require.True(t, barrier.Sense(near(rl.Vector3{}, true)))

	text, notice := ui.Visible()
	assert.Equal(t, "Door destroyed! Hammer was consumed.", text)
	assert.True(t, notice)

	// Once the notice expires nothing of the barrier is left on screen
	ui.Update(ui.NoticeDuration + 0.1)
	for i := 0; i < 5; i++ {
		barrier.Sense(near(rl.Vector3{Z: 10}, false))
	}
	text, notice = ui.Visible()
	assert.Empty(t, text)
	assert.False(t, notice)
}

func TestBarrierKeepsFocusedPromptWhenLeaving(t *testing.T) {
	f := newFixture()
	barrier := NewBarrier("Hammer", f.items, f.screen, f.screen, nil)
	f.object("Barricade", rl.Vector3{Z: -2}, barrier)

	barrier.Sense(near(rl.Vector3{}, false))
	require.Equal(t, "Need Hammer to destroy this door", f.screen.text)

	// A focused pickup wrote its prompt earlier in the same tick
	f.screen.SetText("Hold E to pick up Rust Key")
	in := near(rl.Vector3{Z: 10}, false)
	in.Focused = true
	barrier.Sense(in)
	assert.Equal(t, "Hold E to pick up Rust Key", f.screen.text)
	assert.Equal(t, 0, f.screen.hides)

	// Coming back and leaving with nothing focused clears as before
	barrier.Sense(near(rl.Vector3{}, false))
	barrier.Sense(near(rl.Vector3{Z: 10}, false))
	assert.Empty(t, f.screen.text)
	assert.Equal(t, 1, f.screen.hides)
}
