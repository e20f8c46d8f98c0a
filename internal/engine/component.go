package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
	Enabled() bool
	SetEnabled(enabled bool)
}

// LookProvider is implemented by components that control camera look direction.
// The focus cast follows it every frame.
type LookProvider interface {
	GetLookDirection() (x, y, z float32)
	GetEyeHeight() float32
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
	disabled   bool
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Enabled reports whether the component takes part in updates and queries.
// Components start enabled.
func (b *BaseComponent) Enabled() bool {
	return !b.disabled
}

func (b *BaseComponent) SetEnabled(enabled bool) {
	b.disabled = !enabled
}
