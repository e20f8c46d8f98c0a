package game

import (
	"explore3d/internal/components"
	"explore3d/internal/inventory"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

const (
	slotSize    = 64
	slotGap     = 6
	panelMargin = 16
	panelHeader = 28
)

var (
	colorPanel    = rl.NewColor(18, 18, 24, 235)
	colorSlot     = rl.NewColor(40, 40, 52, 255)
	colorCross    = rl.NewColor(255, 255, 255, 180)
	colorLabel    = rl.NewColor(200, 200, 208, 255)
	colorLoading  = rl.NewColor(108, 99, 255, 120)
	colorOccupied = rl.NewColor(108, 99, 255, 255)
)

// HUD draws the crosshair, prompt line, hold meter and the inventory panel.
type HUD struct {
	Stash    *inventory.StashView
	Text     *components.UIText
	Progress *components.UIProgressBar

	open   bool
	images map[uuid.UUID]*components.UIImage
}

func NewHUD(stash *inventory.StashView, text *components.UIText, progress *components.UIProgressBar) *HUD {
	return &HUD{
		Stash:    stash,
		Text:     text,
		Progress: progress,
		images:   make(map[uuid.UUID]*components.UIImage),
	}
}

func (h *HUD) Open() bool        { return h.open }
func (h *HUD) SetOpen(open bool) { h.open = open }

// initHUDStyle applies the dark theme to raygui widgets.
func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorSlot))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorLabel))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (h *HUD) Draw() {
	sw := float32(rl.GetScreenWidth())
	sh := float32(rl.GetScreenHeight())

	if !h.open {
		cx, cy := int32(sw/2), int32(sh/2)
		rl.DrawLine(cx-6, cy, cx+6, cy, colorCross)
		rl.DrawLine(cx, cy-6, cx, cy+6, colorCross)
	}

	h.Text.Draw(rl.Rectangle{X: 0, Y: sh * 0.62, Width: sw, Height: 30})
	h.Progress.Draw(rl.Rectangle{X: sw/2 - 100, Y: sh*0.62 + 34, Width: 200, Height: 10})

	if h.open {
		h.drawPanel(sw, sh)
	}
}

func (h *HUD) drawPanel(sw, sh float32) {
	panel := panelRect(h.Stash.Width(), h.Stash.Height(), sw, sh)
	gui.Panel(panel, "Inventory")

	slots := h.Stash.Slots()
	for i, rect := range slotRects(panel, h.Stash.Width(), h.Stash.Height()) {
		if i >= len(slots) {
			break
		}
		s := slots[i]
		img := h.image(s.CellID)
		img.SetImage(s.Image)
		img.Draw(rect)

		switch {
		case s.Loading:
			rl.DrawRectangleLinesEx(rect, 2, colorLoading)
		case s.Occupied:
			rl.DrawRectangleLinesEx(rect, 2, colorOccupied)
		}
		if s.Occupied {
			gui.Label(rl.Rectangle{X: rect.X + 2, Y: rect.Y + rect.Height - 16, Width: rect.Width - 4, Height: 14}, s.ItemID)
		}
	}
}

func (h *HUD) image(id uuid.UUID) *components.UIImage {
	img, ok := h.images[id]
	if !ok {
		img = components.NewUIImage()
		img.Color = colorSlot
		img.PreserveAspect = true
		h.images[id] = img
	}
	return img
}

// Unload frees slot textures. Needs the GL context.
func (h *HUD) Unload() {
	for id, img := range h.images {
		img.Unload()
		delete(h.images, id)
	}
}

// panelRect centres a panel sized for a w x h grid on the screen.
func panelRect(w, h int, sw, sh float32) rl.Rectangle {
	width := float32(w)*(slotSize+slotGap) - slotGap + 2*panelMargin
	height := float32(h)*(slotSize+slotGap) - slotGap + 2*panelMargin + panelHeader
	return rl.Rectangle{X: (sw - width) / 2, Y: (sh - height) / 2, Width: width, Height: height}
}

// slotRects lays out w x h slots row-major inside panel.
func slotRects(panel rl.Rectangle, w, h int) []rl.Rectangle {
	rects := make([]rl.Rectangle, 0, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			rects = append(rects, rl.Rectangle{
				X:      panel.X + panelMargin + float32(col)*(slotSize+slotGap),
				Y:      panel.Y + panelHeader + panelMargin + float32(row)*(slotSize+slotGap),
				Width:  slotSize,
				Height: slotSize,
			})
		}
	}
	return rects
}
