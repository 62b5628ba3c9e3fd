package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	buttonIdle     = color.RGBA{60, 60, 70, 200}
	buttonHover    = color.RGBA{90, 90, 110, 220}
	buttonDisabled = color.RGBA{40, 40, 45, 140}
	labelDisabled  = color.RGBA{120, 120, 120, 255}
)

// Button is a square toolbar control. Enabled, when set, is asked before
// every click and draw; a nil Enabled means always enabled.
type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()
	Enabled func() bool

	hover bool
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

func (b *Button) IsEnabled() bool {
	return b.Enabled == nil || b.Enabled()
}

// SetHover records whether the cursor is over the button.
func (b *Button) SetHover(mx, my int) {
	b.hover = b.IsMouseOver(mx, my)
}

func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText DrawTextFunc) {
	fill, label := buttonIdle, color.Color(color.White)
	switch {
	case !b.IsEnabled():
		fill, label = buttonDisabled, labelDisabled
	case b.hover:
		fill = buttonHover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, fill, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	drawText(screen, face, b.Label, int(b.X)+8, int(b.Y)+8, label)
}
