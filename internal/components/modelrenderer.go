package components

import (
	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

// NewCubeRenderer builds a cube mesh of the given size.
func NewCubeRenderer(size rl.Vector3, color rl.Color) *ModelRenderer {
	mesh := rl.GenMeshCube(size.X, size.Y, size.Z)
	return NewModelRenderer(rl.LoadModelFromMesh(mesh), color)
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || !g.Visible || !m.Enabled() {
		return
	}

	scale := g.WorldScale()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	// Quaternion keeps door swings free of Euler flips
	rotMatrix := rl.QuaternionToMatrix(g.Transform.GetQuaternion())

	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// Combine: scale -> rotate -> translate
	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
}

func (m *ModelRenderer) Unload() {
	rl.UnloadModel(m.Model)
}
