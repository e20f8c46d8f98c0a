package components

import (
	"math"

	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController moves the player on the horizontal plane and drives the
// look direction the focus cast follows.
type FPSController struct {
	engine.BaseComponent
	Yaw          float32
	Pitch        float32
	MoveSpeed    float32
	LookSpeed    float32
	Velocity     rl.Vector3
	Gravity      float32
	JumpStrength float32
	Grounded     bool
	EyeHeight    float32
	GroundY      float32

	// LookEnabled is cleared while a menu owns the mouse.
	LookEnabled bool
	MoveEnabled bool
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:          -90.0,
		MoveSpeed:    4.0,
		LookSpeed:    0.1,
		Gravity:      20.0,
		JumpStrength: 6.0,
		EyeHeight:    1.6,
		LookEnabled:  true,
		MoveEnabled:  true,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}

	if f.LookEnabled {
		mouseDelta := rl.GetMouseDelta()
		f.Look(mouseDelta.X, mouseDelta.Y)
	}

	var moveX, moveZ float32
	if f.MoveEnabled {
		forward, right := f.getDirections()
		if rl.IsKeyDown(rl.KeyW) {
			moveX += forward.X
			moveZ += forward.Z
		}
		if rl.IsKeyDown(rl.KeyS) {
			moveX -= forward.X
			moveZ -= forward.Z
		}
		if rl.IsKeyDown(rl.KeyA) {
			moveX += right.X
			moveZ += right.Z
		}
		if rl.IsKeyDown(rl.KeyD) {
			moveX -= right.X
			moveZ -= right.Z
		}
		if rl.IsKeyPressed(rl.KeySpace) && f.Grounded {
			f.Velocity.Y = f.JumpStrength
			f.Grounded = false
		}
	}
	f.Step(moveX, moveZ, deltaTime)
}

// Look applies a mouse delta to yaw and pitch.
func (f *FPSController) Look(dx, dy float32) {
	f.Yaw += dx * f.LookSpeed
	f.Pitch -= dy * f.LookSpeed
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}
}

// Step integrates one frame of movement along the horizontal input
// direction and clamps the body to the ground plane.
func (f *FPSController) Step(moveX, moveZ, deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}

	// Normalize diagonal movement
	moveLen := float32(math.Sqrt(float64(moveX*moveX + moveZ*moveZ)))
	if moveLen > 0 {
		moveX /= moveLen
		moveZ /= moveLen
	}
	f.Velocity.X = moveX * f.MoveSpeed
	f.Velocity.Z = moveZ * f.MoveSpeed

	if !f.Grounded {
		f.Velocity.Y -= f.Gravity * deltaTime
	}

	g.Transform.Position.X += f.Velocity.X * deltaTime
	g.Transform.Position.Y += f.Velocity.Y * deltaTime
	g.Transform.Position.Z += f.Velocity.Z * deltaTime

	if g.Transform.Position.Y <= f.GroundY {
		g.Transform.Position.Y = f.GroundY
		f.Velocity.Y = 0
		f.Grounded = true
	}
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (f *FPSController) GetLookDirection() (x, y, z float32) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad))
}

func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}

// EyePosition is where the camera and the focus cast start.
func (f *FPSController) EyePosition() rl.Vector3 {
	g := f.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	pos := g.WorldPosition()
	pos.Y += f.EyeHeight
	return pos
}

// LookVector returns GetLookDirection as a vector.
func (f *FPSController) LookVector() rl.Vector3 {
	x, y, z := f.GetLookDirection()
	return rl.Vector3{X: x, Y: y, Z: z}
}
