package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAABBResolveHorizontalPicksShallowAxis(t *testing.T) {
	player := NewAABBFromCenter(rl.Vector3{X: 0.9, Y: 0.9}, rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6})
	wall := NewAABBFromCenter(rl.Vector3{X: 2, Y: 1}, rl.Vector3{X: 2, Y: 2, Z: 4})

	push := player.ResolveHorizontal(wall)
	if !near(push.X, -0.2) || push.Y != 0 || push.Z != 0 {
		t.Errorf("Expected push of -0.2 on X, got %v", push)
	}
}

func TestAABBTouchingDoesNotOverlap(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromCenter(rl.Vector3{X: 1}, rl.Vector3{X: 1, Y: 1, Z: 1})

	if a.Intersects(b) {
		t.Error("Touching boxes should not intersect")
	}
	if push := a.ResolveHorizontal(b); push != rl.Vector3Zero() {
		t.Errorf("Expected no push, got %v", push)
	}
}

func TestWorldPushOutSkipsInactive(t *testing.T) {
	f := newFixture()
	door := f.box("Door", rl.Vector3{X: 0.5, Y: 1}, rl.Vector3{X: 0.2, Y: 2, Z: 2})
	player := NewAABBFromCenter(rl.Vector3{X: 0.3, Y: 0.9}, rl.Vector3{X: 0.4, Y: 1.8, Z: 0.4})

	push := f.world.PushOut(player, nil)
	if !near(push.X, -0.1) {
		t.Errorf("Closed door should push the player back, got %v", push)
	}

	door.Active = false
	if push := f.world.PushOut(player, nil); push != rl.Vector3Zero() {
		t.Errorf("Smashed door should not block, got %v", push)
	}
}
