package components

import (
	"explore3d/internal/assets"
	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIImage displays a decoded image or a solid color rectangle.
// The GPU texture is created lazily on the first Draw after SetImage,
// since textures can only be uploaded from the render thread.
type UIImage struct {
	engine.BaseComponent

	// Fallback color if no image
	Color rl.Color

	// Tint applied to texture
	Tint rl.Color

	// Whether to preserve aspect ratio
	PreserveAspect bool

	image   *assets.Image
	texture rl.Texture2D
	dirty   bool
}

func NewUIImage() *UIImage {
	return &UIImage{
		Color: rl.NewColor(60, 60, 75, 255),
		Tint:  rl.White,
	}
}

// SetImage replaces the displayed picture. nil clears it.
func (i *UIImage) SetImage(img *assets.Image) {
	if img == i.image {
		return
	}
	i.image = img
	i.dirty = true
}

// Image returns the picture currently assigned.
func (i *UIImage) Image() *assets.Image {
	return i.image
}

func (i *UIImage) Clear() {
	i.SetImage(nil)
}

func (i *UIImage) upload() {
	if !i.dirty {
		return
	}
	i.dirty = false
	if i.texture.ID > 0 {
		rl.UnloadTexture(i.texture)
		i.texture = rl.Texture2D{}
	}
	if i.image != nil && i.image.Raw != nil {
		i.texture = rl.LoadTextureFromImage(i.image.Raw)
	}
}

// Draw renders the image within the given rect
func (i *UIImage) Draw(rect rl.Rectangle) {
	i.upload()
	if i.texture.ID == 0 {
		rl.DrawRectangleRec(rect, i.Color)
		return
	}

	destRect := rect
	if i.PreserveAspect {
		destRect = fitRect(rect, float32(i.texture.Width), float32(i.texture.Height))
	}
	sourceRect := rl.Rectangle{
		Width:  float32(i.texture.Width),
		Height: float32(i.texture.Height),
	}
	rl.DrawTexturePro(i.texture, sourceRect, destRect, rl.Vector2{}, 0, i.Tint)
}

// fitRect centers a w x h picture inside rect keeping its aspect ratio.
func fitRect(rect rl.Rectangle, w, h float32) rl.Rectangle {
	if w <= 0 || h <= 0 || rect.Height <= 0 {
		return rect
	}
	texAspect := w / h
	rectAspect := rect.Width / rect.Height

	var dest rl.Rectangle
	if texAspect > rectAspect {
		// wider, fit to width
		dest.Width = rect.Width
		dest.Height = rect.Width / texAspect
		dest.X = rect.X
		dest.Y = rect.Y + (rect.Height-dest.Height)/2
	} else {
		dest.Height = rect.Height
		dest.Width = rect.Height * texAspect
		dest.X = rect.X + (rect.Width-dest.Width)/2
		dest.Y = rect.Y
	}
	return dest
}

// Unload releases the GPU texture.
func (i *UIImage) Unload() {
	if i.texture.ID > 0 {
		rl.UnloadTexture(i.texture)
		i.texture = rl.Texture2D{}
	}
	i.dirty = i.image != nil
}
