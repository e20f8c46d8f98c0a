package world

import (
	"explore3d/internal/components"
	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 40.0

type Renderer struct {
	FloorColor rl.Color
	GridLines  int32
}

func NewRenderer() *Renderer {
	return &Renderer{
		FloorColor: rl.NewColor(70, 70, 80, 255),
		GridLines:  40,
	}
}

func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	rl.BeginMode3D(camera)
	rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: FloorSize, Y: FloorSize}, r.FloorColor)
	rl.DrawGrid(r.GridLines, 1.0)
	r.drawScene(gameObjects)
	rl.EndMode3D()
}

func (r *Renderer) drawScene(gameObjects []*engine.GameObject) {
	for _, g := range gameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}
