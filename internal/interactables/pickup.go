package interactables

import (
	"fmt"
	"math"
	"time"

	"explore3d/internal/engine"
	"explore3d/internal/interaction"
	"explore3d/internal/inventory"

	"github.com/sirupsen/logrus"
)

// DefaultHoldTime is how long pickups must be held.
const DefaultHoldTime = 1500 * time.Millisecond

// Pickup is a long-press item (key, tool) that moves into the inventory.
type Pickup struct {
	engine.BaseComponent

	Item        inventory.Item
	DisplayName string
	HoldTime    time.Duration
	// DestroyOnPickup removes the object; otherwise it is only deactivated.
	DestroyOnPickup bool
	// UsageHint is appended to the pickup announcement, e.g. for tools.
	UsageHint string
	Key       string

	items     ItemStore
	announcer interaction.Announcer
	log       logrus.FieldLogger

	pickedUp bool
	holding  bool
	progress float32
}

func NewPickup(item inventory.Item, items ItemStore, announcer interaction.Announcer, log logrus.FieldLogger) *Pickup {
	return &Pickup{
		Item:            item,
		HoldTime:        DefaultHoldTime,
		DestroyOnPickup: true,
		Key:             DefaultInteractKey,
		items:           items,
		announcer:       announcer,
		log:             componentLogger(log, "pickup"),
	}
}

func (p *Pickup) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Item.ID
}

func (p *Pickup) PickedUp() bool    { return p.pickedUp }
func (p *Pickup) Progress() float32 { return p.progress }

func (p *Pickup) RequiredHoldTime() time.Duration {
	return p.HoldTime
}

func (p *Pickup) Prompt() string {
	text := fmt.Sprintf("Hold %s to pick up %s", p.Key, p.Name())
	if p.holding && !p.pickedUp {
		text += fmt.Sprintf(" (%d%%)", int(math.Round(float64(p.progress)*100)))
	}
	return text
}

func (p *Pickup) OnEnter() {}

func (p *Pickup) OnExit() {
	p.holding = false
	p.progress = 0
}

func (p *Pickup) OnLongPressStart() {
	if p.pickedUp {
		return
	}
	p.holding = true
	p.progress = 0
}

func (p *Pickup) OnLongPressUpdate(progress float32) {
	if !p.pickedUp {
		p.progress = progress
	}
}

func (p *Pickup) OnLongPressComplete() {
	p.holding = false
}

func (p *Pickup) OnLongPressCancel() {
	p.holding = false
	p.progress = 0
}

func (p *Pickup) Interact() {
	if p.pickedUp {
		return
	}
	if p.items == nil {
		p.log.WithField("item", p.Item.ID).Warn("Pickup has no inventory to go into")
		return
	}
	if !p.items.AddItem(p.Item) {
		p.log.WithField("item", p.Item.ID).Debug("Pickup ignored, item already held")
		return
	}
	p.pickedUp = true
	p.progress = 0

	msg := fmt.Sprintf("%s added to inventory", p.Name())
	if p.UsageHint != "" {
		msg += ". " + p.UsageHint
	}
	if p.announcer != nil {
		p.announcer.Announce(msg)
	}

	g := p.GetGameObject()
	if g == nil {
		return
	}
	g.SetActiveRecursive(false)
	if !p.DestroyOnPickup {
		return
	}
	if g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.ScheduleRemoval(g.Handle(), 0)
	}
}
