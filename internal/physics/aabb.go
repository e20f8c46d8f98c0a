package physics

import (
	"explore3d/internal/components"
	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Intersects is strict: boxes that only touch do not overlap.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// ResolveHorizontal returns the smallest X or Z translation that pushes a
// out of b, or the zero vector if they do not overlap. The floor owns Y.
func (a AABB) ResolveHorizontal(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	min := dx1
	result := rl.Vector3{X: dx1}
	if dx2 < min {
		min = dx2
		result = rl.Vector3{X: -dx2}
	}
	if dz1 < min {
		min = dz1
		result = rl.Vector3{Z: dz1}
	}
	if dz2 < min {
		result = rl.Vector3{Z: -dz2}
	}
	return result
}

// PushOut moves box a clear of every active, enabled box collider in the
// world except those on skip, and returns the total translation applied.
func (p *World) PushOut(a AABB, skip *engine.GameObject) rl.Vector3 {
	var total rl.Vector3
	for _, obj := range p.Objects {
		if obj == skip || !obj.Active || obj.Scene == nil {
			continue
		}
		for _, box := range engine.GetComponents[*components.BoxCollider](obj) {
			if !box.Enabled() {
				continue
			}
			min, max := box.Bounds()
			push := a.ResolveHorizontal(AABB{Min: min, Max: max})
			if push.X == 0 && push.Z == 0 {
				continue
			}
			a.Min = rl.Vector3Add(a.Min, push)
			a.Max = rl.Vector3Add(a.Max, push)
			total = rl.Vector3Add(total, push)
		}
	}
	return total
}
