package interactables

import (
	"fmt"

	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// KeyedDoor swings open on interact, once the required item is held.
type KeyedDoor struct {
	engine.BaseComponent

	RequiredItem string
	Locked       bool
	ConsumeKey   bool
	// OpenAngle is the yaw in degrees added to the closed rotation.
	OpenAngle float32
	OpenSpeed float32
	// Hinge, when HasHinge is set, is the local-space pivot of the swing.
	Hinge    rl.Vector3
	HasHinge bool
	Key      string

	items ItemStore
	log   logrus.FieldLogger

	ready     bool
	open      bool
	notice    string
	closedRot rl.Quaternion
	closedPos rl.Vector3
	current   rl.Quaternion
	target    rl.Quaternion
}

func NewKeyedDoor(requiredItem string, items ItemStore, log logrus.FieldLogger) *KeyedDoor {
	return &KeyedDoor{
		RequiredItem: requiredItem,
		Locked:       requiredItem != "",
		OpenAngle:    90,
		OpenSpeed:    2,
		Key:          DefaultInteractKey,
		items:        items,
		log:          componentLogger(log, "keyed_door"),
	}
}

func (d *KeyedDoor) Name() string {
	return objectName(d, "Door")
}

func (d *KeyedDoor) Start() {
	d.capture()
}

// capture records the closed pose the first time the door is touched.
func (d *KeyedDoor) capture() {
	if d.ready {
		return
	}
	g := d.GetGameObject()
	if g == nil {
		return
	}
	d.closedRot = g.Transform.GetQuaternion()
	d.closedPos = g.Transform.Position
	d.current = d.closedRot
	d.target = d.closedRot
	d.ready = true
}

func (d *KeyedDoor) IsOpen() bool   { return d.open }
func (d *KeyedDoor) IsLocked() bool { return d.Locked }

func (d *KeyedDoor) Interact() {
	d.capture()
	d.notice = ""

	if d.open {
		d.open = false
		d.target = d.closedRot
		d.log.WithField("door", d.Name()).Debug("Door closing")
		return
	}

	if d.Locked {
		if d.items == nil {
			d.log.WithField("door", d.Name()).Warn("Door has no inventory to check keys against")
			return
		}
		if !d.items.Has(d.RequiredItem) {
			d.notice = fmt.Sprintf("This door requires %s", d.RequiredItem)
			return
		}
		d.Locked = false
		if d.ConsumeKey {
			d.items.Remove(d.RequiredItem)
		}
		d.log.WithFields(logrus.Fields{"door": d.Name(), "key": d.RequiredItem}).Info("Door unlocked")
	}

	d.open = true
	d.target = rl.QuaternionMultiply(d.closedRot, rl.QuaternionFromEuler(0, d.OpenAngle*rl.Deg2rad, 0))
	d.log.WithField("door", d.Name()).Debug("Door opening")
}

func (d *KeyedDoor) OnEnter() {}

func (d *KeyedDoor) OnExit() {
	d.notice = ""
}

func (d *KeyedDoor) Prompt() string {
	switch {
	case d.notice != "":
		return d.notice
	case d.open:
		return fmt.Sprintf("Press %s to close door", d.Key)
	case d.Locked:
		return fmt.Sprintf("Press %s to unlock door (Requires %s)", d.Key, d.RequiredItem)
	default:
		return fmt.Sprintf("Press %s to open door", d.Key)
	}
}

// Update eases the door toward its current target rotation.
func (d *KeyedDoor) Update(deltaTime float32) {
	d.capture()
	if !d.ready || d.Settled() {
		return
	}

	t := deltaTime * d.OpenSpeed
	if t > 1 {
		t = 1
	}
	d.current = rl.QuaternionSlerp(d.current, d.target, t)
	if quatClose(d.current, d.target) {
		d.current = d.target
	}
	d.apply()
}

// Settled reports whether the door has reached its target rotation.
func (d *KeyedDoor) Settled() bool {
	return quatClose(d.current, d.target)
}

func (d *KeyedDoor) apply() {
	g := d.GetGameObject()
	g.Transform.SetQuaternion(d.current)
	if !d.HasHinge {
		return
	}
	// Swing the body around the hinge instead of its own centre
	hinge := rl.Vector3Add(d.closedPos, rl.Vector3RotateByQuaternion(rl.Vector3Multiply(d.Hinge, g.Transform.Scale), d.closedRot))
	delta := rl.QuaternionMultiply(d.current, rl.QuaternionInvert(d.closedRot))
	arm := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(d.closedPos, hinge), delta)
	g.Transform.Position = rl.Vector3Add(hinge, arm)
}

// Rotation returns the door's current orientation.
func (d *KeyedDoor) Rotation() rl.Quaternion {
	return d.current
}

func quatClose(a, b rl.Quaternion) bool {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	if dot < 0 {
		dot = -dot
	}
	return dot > 0.99999
}
