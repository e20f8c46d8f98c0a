// Package interactables holds the concrete things the player can use:
// keyed doors, destructible barriers and pickups.
package interactables

import (
	"explore3d/internal/engine"
	"explore3d/internal/inventory"

	"github.com/sirupsen/logrus"
)

// ItemStore is the part of the inventory the interactables touch.
type ItemStore interface {
	Has(id string) bool
	Remove(id string) bool
	AddItem(item inventory.Item) bool
	Consume(id string) bool
	Consumed() bool
}

// Default key labels used in prompts.
const (
	DefaultInteractKey = "E"
	DefaultDestroyKey  = "H"
)

func componentLogger(log logrus.FieldLogger, kind string) logrus.FieldLogger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return log.WithField("component", kind)
}

func objectName(c engine.Component, fallback string) string {
	if g := c.GetGameObject(); g != nil && g.Name != "" {
		return g.Name
	}
	return fallback
}
