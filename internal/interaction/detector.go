package interaction

import (
	"explore3d/internal/engine"
	"explore3d/internal/physics"

	"github.com/sirupsen/logrus"
)

// FocusChange is published before the old target hears OnExit.
type FocusChange struct {
	Previous *Entry
	Current  *Entry
	// PreviousLive is false when Previous's object no longer exists.
	PreviousLive bool
}

// Detector casts once per tick and tracks which entry is focused.
type Detector struct {
	Range float32
	Shape physics.Shape

	FocusChanged engine.EventWithArg[FocusChange]

	caster  Caster
	catalog *Catalog
	display Display
	current *Entry
	warned  bool
	log     logrus.FieldLogger
}

func NewDetector(caster Caster, catalog *Catalog, display Display, rng float32, shape physics.Shape, log logrus.FieldLogger) *Detector {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Detector{
		Range:   rng,
		Shape:   shape,
		caster:  caster,
		catalog: catalog,
		display: display,
		log:     log.WithField("component", "focus"),
	}
}

// Current returns the focused entry, or nil.
func (d *Detector) Current() *Entry {
	return d.current
}

func (d *Detector) valid() bool {
	if d.Range > 0 && d.Shape.Valid() && d.caster != nil && d.catalog != nil {
		return true
	}
	if !d.warned {
		d.warned = true
		d.log.WithFields(logrus.Fields{
			"range":  d.Range,
			"shape":  d.Shape.Kind,
			"radius": d.Shape.Radius,
		}).Warn("Focus cast misconfigured, nothing will be detected")
	}
	return false
}

// Tick casts from view and updates focus. It returns the entry
// focused after the tick.
func (d *Detector) Tick(view View) *Entry {
	var resolved *Entry
	if d.valid() {
		if hit, ok := d.caster.CastFirstHit(view.Origin, view.Forward, d.Shape, d.Range); ok {
			resolved = d.catalog.Lookup(hit.Object)
		}
	}
	d.focus(resolved)
	return d.current
}

// Clear drops the current focus as if the cast hit nothing.
func (d *Detector) Clear() {
	d.focus(nil)
}

func (d *Detector) focus(resolved *Entry) {
	if resolved == d.current {
		return
	}
	prev := d.current
	prevLive := d.catalog != nil && d.catalog.Live(prev)

	d.FocusChanged.Invoke(FocusChange{Previous: prev, Current: resolved, PreviousLive: prevLive})

	if prev != nil {
		if prevLive {
			guard(d.log, prev.Name, "OnExit", prev.Target.OnExit)
		} else {
			d.log.WithField("target", prev.Name).Debug("Focused target vanished, skipping exit")
		}
	}
	if resolved != nil {
		guard(d.log, resolved.Name, "OnEnter", resolved.Target.OnEnter)
	}
	d.current = resolved

	if resolved == nil && d.display != nil {
		d.display.HideText()
	}
	d.log.WithFields(logrus.Fields{"from": entryName(prev), "to": entryName(resolved)}).Debug("Focus changed")
}

// PushPrompt writes the focused target's prompt to the display.
func (d *Detector) PushPrompt() {
	if d.current == nil || d.display == nil {
		return
	}
	var text string
	if guard(d.log, d.current.Name, "Prompt", func() { text = d.current.Target.Prompt() }) {
		d.display.SetText(text)
	}
}

func entryName(e *Entry) string {
	if e == nil {
		return "none"
	}
	return e.Name
}
