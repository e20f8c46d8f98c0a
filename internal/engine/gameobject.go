package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// GetQuaternion returns the rotation as a quaternion (X then Y then Z).
func (t Transform) GetQuaternion() rl.Quaternion {
	return rl.QuaternionFromEuler(
		t.Rotation.X*rl.Deg2rad,
		t.Rotation.Y*rl.Deg2rad,
		t.Rotation.Z*rl.Deg2rad,
	)
}

// SetQuaternion stores q back as Euler degrees.
func (t *Transform) SetQuaternion(q rl.Quaternion) {
	euler := rl.QuaternionToEuler(q)
	t.Rotation = rl.Vector3Scale(euler, rl.Rad2deg)
}

// Forward returns the local +Z axis rotated into world space.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{X: 0, Y: 0, Z: 1}, t.GetQuaternion())
}

type GameObject struct {
	Name      string
	Transform Transform
	// Active objects are updated and can be hit by casts.
	Active bool
	// Visible objects are drawn. Cleared when a barrier is smashed.
	Visible    bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	handle     Handle
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:    name,
		Active:  true,
		Visible: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// Handle returns the arena handle assigned when the object joined a scene.
// It is the zero Handle for objects that were never added.
func (g *GameObject) Handle() Handle {
	return g.handle
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// GetComponents returns every component of type T, in attach order.
func GetComponents[T Component](g *GameObject) []T {
	if g == nil {
		return nil
	}
	var result []T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if !c.Enabled() {
			continue
		}
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

// SetActiveRecursive toggles Active on the object and all its children.
func (g *GameObject) SetActiveRecursive(active bool) {
	g.Active = active
	for _, c := range g.Children {
		c.SetActiveRecursive(active)
	}
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// X then Y then Z, same as the renderer
	rx := float64(parentRot.X) * math.Pi / 180
	ry := float64(parentRot.Y) * math.Pi / 180
	rz := float64(parentRot.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	rotated := rl.Vector3Transform(scaled, rotMatrix)
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
