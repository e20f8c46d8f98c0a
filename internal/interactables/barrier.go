package interactables

import (
	"fmt"
	"time"

	"explore3d/internal/components"
	"explore3d/internal/engine"
	"explore3d/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// DefaultRemovalDelay is how long a smashed barrier lingers before removal.
const DefaultRemovalDelay = 2 * time.Second

// Barrier is a door that can be smashed with a tool from close range. It
// does not need focus: every tick it checks the player's distance.
type Barrier struct {
	engine.BaseComponent

	RequiredItem string
	Radius       float32
	Key          string
	RemovalDelay time.Duration
	// DestroyOnUse removes the object after RemovalDelay; otherwise it is
	// only deactivated.
	DestroyOnUse bool

	items     ItemStore
	display   interaction.Display
	announcer interaction.Announcer
	log       logrus.FieldLogger

	destroyed bool
	inRange   bool
	wrote     bool
	warned    bool
}

func NewBarrier(requiredItem string, items ItemStore, display interaction.Display, announcer interaction.Announcer, log logrus.FieldLogger) *Barrier {
	return &Barrier{
		RequiredItem: requiredItem,
		Radius:       3,
		Key:          DefaultDestroyKey,
		RemovalDelay: DefaultRemovalDelay,
		DestroyOnUse: true,
		items:        items,
		display:      display,
		announcer:    announcer,
		log:          componentLogger(log, "barrier"),
	}
}

func (b *Barrier) Name() string {
	return objectName(b, "Barrier")
}

func (b *Barrier) Destroyed() bool {
	return b.destroyed
}

// Sense implements interaction.Sensor. It reports true on the tick the
// barrier is destroyed.
func (b *Barrier) Sense(in interaction.SenseInput) bool {
	g := b.GetGameObject()
	if b.destroyed || !b.Enabled() || g == nil || !g.Active {
		return false
	}

	if rl.Vector3Distance(g.WorldPosition(), in.Player) > b.Radius {
		// A focused target has already written its own prompt this tick
		if b.inRange && b.wrote && !in.Focused && b.display != nil {
			b.display.HideText()
		}
		b.inRange, b.wrote = false, false
		return false
	}
	b.inRange = true

	if b.items == nil {
		if !b.warned {
			b.warned = true
			b.log.WithField("barrier", b.Name()).Warn("Barrier has no inventory to check tools against")
		}
		return false
	}

	has := b.items.Has(b.RequiredItem)
	switch {
	case has:
		b.say(fmt.Sprintf("Press %s to destroy door with %s", b.Key, b.RequiredItem))
	case !b.items.Consumed():
		b.say(fmt.Sprintf("Need %s to destroy this door", b.RequiredItem))
	}

	if !in.DestroyPressed {
		return false
	}
	if !has {
		b.say(fmt.Sprintf("You need %s to destroy this door!", b.RequiredItem))
		return false
	}
	return b.destroy()
}

func (b *Barrier) say(text string) {
	if b.display == nil {
		return
	}
	b.display.SetText(text)
	b.wrote = true
}

func (b *Barrier) destroy() bool {
	if !b.items.Consume(b.RequiredItem) {
		return false
	}
	b.destroyed = true
	g := b.GetGameObject()

	if b.wrote && b.display != nil {
		b.display.HideText()
	}
	b.inRange, b.wrote = false, false

	msg := fmt.Sprintf("Door destroyed! %s was consumed.", b.RequiredItem)
	if b.announcer != nil {
		b.announcer.Announce(msg)
	} else {
		b.say(msg)
	}
	b.log.WithFields(logrus.Fields{"barrier": b.Name(), "item": b.RequiredItem}).Info("Barrier destroyed")

	if !b.DestroyOnUse {
		g.SetActiveRecursive(false)
		return true
	}

	disable(g)
	if g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.ScheduleRemoval(g.Handle(), b.RemovalDelay)
	} else {
		b.log.WithField("barrier", b.Name()).Warn("Barrier is not in a world, leaving it hidden")
	}
	return true
}

// disable hides g and its children and switches off everything that would
// still let the player bump into or use it.
func disable(g *engine.GameObject) {
	g.Visible = false
	for _, c := range engine.GetComponents[*components.BoxCollider](g) {
		c.SetEnabled(false)
	}
	for _, c := range engine.GetComponents[*components.SphereCollider](g) {
		c.SetEnabled(false)
	}
	for _, c := range engine.GetComponents[*KeyedDoor](g) {
		c.SetEnabled(false)
	}
	for _, child := range g.Children {
		disable(child)
	}
}
