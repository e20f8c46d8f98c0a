package components

import (
	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIProgressBar is the long-press hold meter. It is hidden unless a hold
// is running.
type UIProgressBar struct {
	engine.BaseComponent

	BackgroundColor rl.Color
	FillColor       rl.Color
	BorderColor     rl.Color
	BorderWidth     int32

	fraction float32
	shown    bool
}

func NewUIProgressBar() *UIProgressBar {
	return &UIProgressBar{
		BackgroundColor: rl.NewColor(40, 40, 50, 200),
		FillColor:       rl.NewColor(80, 200, 80, 255),
		BorderColor:     rl.NewColor(60, 60, 75, 255),
		BorderWidth:     1,
	}
}

// Show makes the bar visible, filled to progress clamped into [0, 1].
func (pb *UIProgressBar) Show(progress float32) {
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	pb.fraction = progress
	pb.shown = true
}

// Hide empties the bar and stops drawing it.
func (pb *UIProgressBar) Hide() {
	pb.shown = false
	pb.fraction = 0
}

func (pb *UIProgressBar) Visible() bool {
	return pb.shown
}

// GetPercent returns the fill fraction (0-1).
func (pb *UIProgressBar) GetPercent() float32 {
	return pb.fraction
}

func (pb *UIProgressBar) Draw(rect rl.Rectangle) {
	if !pb.shown {
		return
	}
	rl.DrawRectangleRec(rect, pb.BackgroundColor)
	if fill := rect.Width * pb.fraction; fill > 0 {
		rl.DrawRectangleRec(rl.Rectangle{X: rect.X, Y: rect.Y, Width: fill, Height: rect.Height}, pb.FillColor)
	}
	if pb.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, float32(pb.BorderWidth), pb.BorderColor)
	}
}
