// Package interaction decides what the player is looking at and turns held
// or pressed input into calls on that object.
package interaction

import (
	"time"

	"explore3d/internal/engine"
	"explore3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Target is anything the player can focus and use with a single press.
type Target interface {
	Name() string
	Interact()
	OnEnter()
	OnExit()
	// Prompt is the text shown while the target is focused.
	Prompt() string
}

// LongPressTarget must be held for RequiredHoldTime before it is used.
type LongPressTarget interface {
	Target
	RequiredHoldTime() time.Duration
	OnLongPressStart()
	OnLongPressUpdate(progress float32)
	OnLongPressComplete()
	OnLongPressCancel()
}

type Capability uint8

const (
	CapInstant Capability = 1 << iota
	CapLongPress
)

func (c Capability) Has(flag Capability) bool {
	return c&flag != 0
}

func (c Capability) String() string {
	switch {
	case c.Has(CapLongPress):
		return "long_press"
	case c.Has(CapInstant):
		return "instant"
	}
	return "none"
}

// Entry is a registered target. Caps is fixed at registration so the tick
// never type-asserts.
type Entry struct {
	Handle    engine.Handle
	Name      string
	Target    Target
	LongPress LongPressTarget
	Caps      Capability
}

// Display shows the prompt line.
type Display interface {
	SetText(text string)
	HideText()
}

// Announcer shows a short-lived message over the prompt.
type Announcer interface {
	Announce(text string)
}

// Caster answers what a cast from the eye hits first.
type Caster interface {
	CastFirstHit(origin, dir rl.Vector3, shape physics.Shape, maxRange float32) (physics.Hit, bool)
}

// View is where the player looks from and where their body stands.
type View struct {
	Origin   rl.Vector3
	Forward  rl.Vector3
	Position rl.Vector3
}

// Input is the interaction state of the keyboard for one tick. Held is a
// level, Pressed and DestroyPressed are edges.
type Input struct {
	Held           bool
	Pressed        bool
	DestroyPressed bool
}

// SenseInput is handed to every Sensor each tick.
type SenseInput struct {
	Player         rl.Vector3
	DestroyPressed bool
	// Focused is set when the detector holds a focus and owns the prompt.
	Focused bool
}

// Sensor is an interactable driven by proximity instead of focus. Sense
// reports whether it acted this tick.
type Sensor interface {
	Name() string
	Sense(in SenseInput) bool
}
