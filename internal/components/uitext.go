package components

import (
	"explore3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// DefaultNoticeDuration is how long an announcement overrides the prompt.
const DefaultNoticeDuration float32 = 2.0

// UIText displays the interaction prompt on screen.
//
// The interaction core writes to it through SetText and HideText every tick.
// Announce shows a transient notice that wins over the prompt until it
// expires, so "Rust Key added to inventory" survives the pickup vanishing
// from focus on the next frame.
type UIText struct {
	engine.BaseComponent

	Text           string
	FontSize       int32
	Color          rl.Color
	NoticeColor    rl.Color
	Alignment      TextAlignment
	NoticeDuration float32

	hidden     bool
	notice     string
	noticeLeft float32
}

func NewUIText() *UIText {
	return &UIText{
		FontSize:       20,
		Color:          rl.White,
		NoticeColor:    rl.Gold,
		Alignment:      TextAlignCenter,
		NoticeDuration: DefaultNoticeDuration,
		hidden:         true,
	}
}

// SetText shows text as the current prompt.
func (t *UIText) SetText(text string) {
	t.Text = text
	t.hidden = false
}

// HideText clears the prompt. A running notice keeps showing.
func (t *UIText) HideText() {
	t.Text = ""
	t.hidden = true
}

// Announce shows text for NoticeDuration seconds.
func (t *UIText) Announce(text string) {
	t.notice = text
	t.noticeLeft = t.NoticeDuration
}

func (t *UIText) Update(deltaTime float32) {
	if t.noticeLeft <= 0 {
		return
	}
	t.noticeLeft -= deltaTime
	if t.noticeLeft <= 0 {
		t.notice = ""
	}
}

// Visible returns the string currently on screen and whether it is a notice.
func (t *UIText) Visible() (string, bool) {
	if t.notice != "" {
		return t.notice, true
	}
	if t.hidden {
		return "", false
	}
	return t.Text, false
}

// Draw renders the visible text within the given rect
func (t *UIText) Draw(rect rl.Rectangle) {
	text, isNotice := t.Visible()
	if text == "" {
		return
	}
	color := t.Color
	if isNotice {
		color = t.NoticeColor
	}

	textWidth := float32(rl.MeasureText(text, t.FontSize))

	var x float32
	switch t.Alignment {
	case TextAlignLeft:
		x = rect.X
	case TextAlignCenter:
		x = rect.X + (rect.Width-textWidth)/2
	case TextAlignRight:
		x = rect.X + rect.Width - textWidth
	}

	// Vertically center text in rect
	y := rect.Y + (rect.Height-float32(t.FontSize))/2

	rl.DrawText(text, int32(x), int32(y), t.FontSize, color)
}
