package interaction

import (
	"errors"
	"fmt"

	"explore3d/internal/engine"

	"github.com/sirupsen/logrus"
)

var (
	ErrNilTarget    = errors.New("interaction: nil target")
	ErrStaleHandle  = errors.New("interaction: handle does not resolve")
	ErrDuplicateKey = errors.New("interaction: handle already registered")
	ErrNoTarget     = errors.New("interaction: object has no target component")
)

// Resolver maps handles to live objects.
type Resolver interface {
	Resolve(h engine.Handle) *engine.GameObject
}

// Catalog maps object handles to the targets on them.
type Catalog struct {
	resolver Resolver
	entries  map[engine.Handle]*Entry
	log      logrus.FieldLogger
}

func NewCatalog(resolver Resolver, log logrus.FieldLogger) *Catalog {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Catalog{
		resolver: resolver,
		entries:  make(map[engine.Handle]*Entry),
		log:      log.WithField("component", "catalog"),
	}
}

// Register records t as the target for the object behind h.
func (c *Catalog) Register(h engine.Handle, t Target) (*Entry, error) {
	if t == nil {
		return nil, ErrNilTarget
	}
	if c.resolver.Resolve(h) == nil {
		return nil, fmt.Errorf("register %s at %s: %w", t.Name(), h, ErrStaleHandle)
	}
	if _, ok := c.entries[h]; ok {
		return nil, fmt.Errorf("register %s at %s: %w", t.Name(), h, ErrDuplicateKey)
	}

	e := &Entry{Handle: h, Name: t.Name(), Target: t, Caps: CapInstant}
	if lp, ok := t.(LongPressTarget); ok {
		e.LongPress = lp
		e.Caps = CapLongPress
	}
	c.entries[h] = e
	c.log.WithFields(logrus.Fields{"target": e.Name, "handle": h, "caps": e.Caps}).Debug("Target registered")
	return e, nil
}

// RegisterObject registers the first enabled component of g that is a
// Target.
func (c *Catalog) RegisterObject(g *engine.GameObject) (*Entry, error) {
	for _, comp := range g.Components() {
		if t, ok := comp.(Target); ok && comp.Enabled() {
			return c.Register(g.Handle(), t)
		}
	}
	return nil, fmt.Errorf("register %s: %w", g.Name, ErrNoTarget)
}

func (c *Catalog) Unregister(h engine.Handle) bool {
	if _, ok := c.entries[h]; !ok {
		return false
	}
	delete(c.entries, h)
	return true
}

// Lookup returns the entry for h if its object is still alive and active
// and the target component, if it is one, is enabled.
func (c *Catalog) Lookup(h engine.Handle) *Entry {
	e, ok := c.entries[h]
	if !ok {
		return nil
	}
	g := c.resolver.Resolve(h)
	if g == nil || !g.Active {
		return nil
	}
	if comp, ok := e.Target.(engine.Component); ok && !comp.Enabled() {
		return nil
	}
	return e
}

// Live reports whether e's object still exists.
func (c *Catalog) Live(e *Entry) bool {
	return e != nil && c.resolver.Resolve(e.Handle) != nil
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
