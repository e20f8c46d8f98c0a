package components

import (
	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center, with Offset rotated by the object.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	offset := rl.Vector3RotateByQuaternion(b.Offset, g.Transform.GetQuaternion())
	return rl.Vector3Add(g.WorldPosition(), offset)
}

// GetWorldSize returns Size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: abs(b.Size.X * s.X), Y: abs(b.Size.Y * s.Y), Z: abs(b.Size.Z * s.Z)}
}

// Bounds returns the axis-aligned box enclosing the rotated collider.
func (b *BoxCollider) Bounds() (min, max rl.Vector3) {
	center := b.GetCenter()
	size := b.GetWorldSize()
	half := rl.Vector3Scale(size, 0.5)
	q := b.GetGameObject().Transform.GetQuaternion()

	// Project each rotated half-axis onto world axes
	ax := rl.Vector3RotateByQuaternion(rl.Vector3{X: half.X}, q)
	ay := rl.Vector3RotateByQuaternion(rl.Vector3{Y: half.Y}, q)
	az := rl.Vector3RotateByQuaternion(rl.Vector3{Z: half.Z}, q)
	extent := rl.Vector3{
		X: abs(ax.X) + abs(ay.X) + abs(az.X),
		Y: abs(ax.Y) + abs(ay.Y) + abs(az.Y),
		Z: abs(ax.Z) + abs(ay.Z) + abs(az.Z),
	}
	return rl.Vector3Subtract(center, extent), rl.Vector3Add(center, extent)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
