package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DebugPanel shows the loader status in the bottom-right corner.
type DebugPanel struct {
	Error  string
	Status string
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
}

func (d *DebugPanel) SetStatus(msg string) {
	d.Status = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
	d.Status = ""
}

// Message returns what the panel shows; errors win over status.
func (d *DebugPanel) Message() string {
	if d.Error != "" {
		return d.Error
	}
	return d.Status
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText DrawTextFunc) {
	if d == nil {
		return
	}
	msg := d.Message()
	if msg == "" {
		return
	}
	w, h := getScreenSize()
	pw, ph := 300, 60
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)

	clr := color.RGBA{200, 200, 200, 255}
	if d.Error != "" {
		clr = color.RGBA{255, 200, 50, 255}
	}
	if getFace != nil && drawText != nil {
		if face := getFace(); face != nil {
			drawText(screen, face, msg, x+8, y+8, clr)
		}
	}
}
