package world

import (
	"explore3d/internal/components"
	"explore3d/internal/engine"
	"explore3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerCollision keeps the player's body out of walls and closed doors.
// It must be added after the FPSController so it sees this frame's move.
type PlayerCollision struct {
	engine.BaseComponent
	Physics *physics.World
	// Body is the full size of the player's box, feet at the object origin.
	Body rl.Vector3
}

func NewPlayerCollision(p *physics.World) *PlayerCollision {
	return &PlayerCollision{
		Physics: p,
		Body:    rl.Vector3{X: 0.5, Y: 1.8, Z: 0.5},
	}
}

func (p *PlayerCollision) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || p.Physics == nil {
		return
	}

	center := g.Transform.Position
	center.Y += p.Body.Y / 2
	push := p.Physics.PushOut(physics.NewAABBFromCenter(center, p.Body), g)
	if push.X == 0 && push.Z == 0 {
		return
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, push)

	if fps := engine.GetComponent[*components.FPSController](g); fps != nil {
		if push.X != 0 {
			fps.Velocity.X = 0
		}
		if push.Z != 0 {
			fps.Velocity.Z = 0
		}
	}
}
