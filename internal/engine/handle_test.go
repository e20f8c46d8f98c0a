package engine

import "testing"

func TestHandleResolve(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	h := obj.Handle()
	if h.IsZero() {
		t.Fatal("Handle should be assigned by AddGameObject")
	}

	if found := scene.Resolve(h); found != obj {
		t.Errorf("Resolve() failed: expected %v, got %v", obj, found)
	}
}

func TestHandleZeroNeverResolves(t *testing.T) {
	scene := NewScene("Test")
	scene.AddGameObject(NewGameObject("First"))

	if scene.Resolve(Handle{}) != nil {
		t.Error("Zero handle should not resolve")
	}

	if scene.Resolve(Handle{Index: 99, Generation: 1}) != nil {
		t.Error("Out of range handle should not resolve")
	}

	var nilScene *Scene
	if nilScene.Resolve(Handle{Index: 0, Generation: 1}) != nil {
		t.Error("Resolve on nil scene should return nil")
	}
}

func TestHandleStaleAfterRemoval(t *testing.T) {
	scene := NewScene("Test")
	key := NewGameObject("Key")
	scene.AddGameObject(key)
	stale := key.Handle()

	scene.RemoveGameObject(key)

	if scene.Resolve(stale) != nil {
		t.Error("Handle should be stale after removal")
	}

	// The freed slot gets recycled with a new generation
	door := NewGameObject("Door")
	scene.AddGameObject(door)

	if door.Handle().Index != stale.Index {
		t.Errorf("Expected slot %d to be recycled, got %d", stale.Index, door.Handle().Index)
	}
	if door.Handle() == stale {
		t.Error("Recycled slot must carry a new generation")
	}
	if scene.Resolve(stale) != nil {
		t.Error("Stale handle must not resolve to the object in the recycled slot")
	}
	if scene.Resolve(door.Handle()) != door {
		t.Error("New handle should resolve to the new object")
	}
}

func TestHandleString(t *testing.T) {
	if got := (Handle{}).String(); got != "handle(none)" {
		t.Errorf("Unexpected zero handle string %q", got)
	}
	if got := (Handle{Index: 3, Generation: 2}).String(); got != "handle(3#2)" {
		t.Errorf("Unexpected handle string %q", got)
	}
}
