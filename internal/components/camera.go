package components

import (
	"math"

	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Near:       0.05,
		Far:        500.0,
		Projection: rl.CameraPerspective,
		IsMain:     true,
	}
}

// findLookProvider walks up from g to the first component that drives look.
func findLookProvider(g *engine.GameObject) engine.LookProvider {
	for obj := g; obj != nil; obj = obj.Parent {
		for _, c := range obj.Components() {
			if lp, ok := c.(engine.LookProvider); ok && c.Enabled() {
				return lp
			}
		}
	}
	return nil
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	lookProvider := findLookProvider(g)

	// On the same object as the controller the eye sits EyeHeight above the
	// feet; as a child the local offset already places it.
	if lookProvider != nil && g.Parent == nil {
		eyePos.Y += lookProvider.GetEyeHeight()
	}

	var target rl.Vector3
	if lookProvider != nil {
		x, y, z := lookProvider.GetLookDirection()
		target = rl.Vector3Add(eyePos, rl.Vector3{X: x, Y: y, Z: z})
	} else {
		yawRad := float64(g.WorldRotation().Y) * math.Pi / 180.0
		forward := rl.Vector3{
			X: float32(-math.Sin(yawRad)),
			Z: float32(-math.Cos(yawRad)),
		}
		target = rl.Vector3Add(eyePos, forward)
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
