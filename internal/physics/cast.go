package physics

import (
	"math"

	"explore3d/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// castBox intersects the ray with the box grown by grow on every side. The
// ray is moved into the box's local frame so rotated doors are exact.
func castBox(origin, direction rl.Vector3, box *components.BoxCollider, grow, maxDistance float32) (Hit, bool) {
	center := box.GetCenter()
	worldSize := box.GetWorldSize()
	halfSize := rl.Vector3{X: worldSize.X/2 + grow, Y: worldSize.Y/2 + grow, Z: worldSize.Z/2 + grow}

	rot := box.GetGameObject().Transform.GetQuaternion()
	inv := rl.QuaternionInvert(rot)
	localOrigin := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(origin, center), inv)
	localDir := rl.Vector3RotateByQuaternion(direction, inv)

	min := rl.Vector3Negate(halfSize)
	max := halfSize

	tmin := float32(-1e30)
	tmax := float32(1e30)
	axes := [3][4]float32{
		{localOrigin.X, localDir.X, min.X, max.X},
		{localOrigin.Y, localDir.Y, min.Y, max.Y},
		{localOrigin.Z, localDir.Z, min.Z, max.Z},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < lo || o > hi {
				return Hit{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return Hit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	// Starting inside the box counts as touching it
	t := tmin
	if t < 0 {
		t = 0
	}

	localPoint := rl.Vector3Add(localOrigin, rl.Vector3Scale(localDir, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case abs(localPoint.X-min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case abs(localPoint.X-max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case abs(localPoint.Y-min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case abs(localPoint.Y-max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case abs(localPoint.Z-min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return Hit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   rl.Vector3RotateByQuaternion(normal, rot),
		Distance: t,
	}, true
}

func castSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, grow, maxDistance float32) (Hit, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius() + grow

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	root := float32(math.Sqrt(float64(discriminant)))
	t := (-b - root) / (2 * a)
	if t < 0 {
		if far := (-b + root) / (2 * a); far < 0 {
			return Hit{}, false
		}
		t = 0
	}
	if t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
