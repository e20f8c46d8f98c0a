// Package physics answers the single question the interaction layer asks of
// the scene: what does a cast from the eye hit first.
package physics

import (
	"explore3d/internal/components"
	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ShapeKind int

const (
	ShapeRay ShapeKind = iota
	ShapeSphere
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRay:
		return "ray"
	case ShapeSphere:
		return "sphere"
	}
	return "unknown"
}

// Shape is the cross-section swept along a cast.
type Shape struct {
	Kind   ShapeKind
	Radius float32
}

func Ray() Shape { return Shape{Kind: ShapeRay} }

func Sphere(radius float32) Shape { return Shape{Kind: ShapeSphere, Radius: radius} }

// Valid reports whether the shape can be cast.
func (s Shape) Valid() bool {
	switch s.Kind {
	case ShapeRay:
		return true
	case ShapeSphere:
		return s.Radius >= 0
	}
	return false
}

// sweep is the extra thickness added to every collider.
func (s Shape) sweep() float32 {
	if s.Kind == ShapeSphere {
		return s.Radius
	}
	return 0
}

type Hit struct {
	Object     engine.Handle
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// World holds every object that can block or receive a cast.
type World struct {
	Objects []*engine.GameObject
}

func NewWorld() *World {
	return &World{
		Objects: make([]*engine.GameObject, 0),
	}
}

func (p *World) AddObject(g *engine.GameObject) {
	for _, obj := range p.Objects {
		if obj == g {
			return
		}
	}
	p.Objects = append(p.Objects, g)
}

func (p *World) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return
		}
	}
}

// CastFirstHit sweeps shape from origin along dir up to maxRange and returns
// the nearest collider hit. Inactive objects, objects no longer in a scene
// and disabled colliders are ignored. Ties keep the earlier-added object.
func (p *World) CastFirstHit(origin, dir rl.Vector3, shape Shape, maxRange float32) (Hit, bool) {
	if maxRange <= 0 || !shape.Valid() || rl.Vector3Length(dir) == 0 {
		return Hit{}, false
	}
	dir = rl.Vector3Normalize(dir)
	grow := shape.sweep()

	var closest Hit
	closest.Distance = maxRange
	found := false

	consider := func(obj *engine.GameObject, h Hit, ok bool) {
		if ok && (h.Distance < closest.Distance || (!found && h.Distance == closest.Distance)) {
			h.Object = obj.Handle()
			h.GameObject = obj
			closest = h
			found = true
		}
	}

	for _, obj := range p.Objects {
		if !obj.Active || obj.Scene == nil {
			continue
		}
		for _, box := range engine.GetComponents[*components.BoxCollider](obj) {
			if box.Enabled() {
				h, ok := castBox(origin, dir, box, grow, maxRange)
				consider(obj, h, ok)
			}
		}
		for _, sphere := range engine.GetComponents[*components.SphereCollider](obj) {
			if sphere.Enabled() {
				h, ok := castSphere(origin, dir, sphere, grow, maxRange)
				consider(obj, h, ok)
			}
		}
	}

	return closest, found
}

// Raycast is CastFirstHit with a zero-thickness ray.
func (p *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool) {
	return p.CastFirstHit(origin, direction, Ray(), maxDistance)
}
