package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ReadoutPanel is the live coordinate overlay in the bottom-left corner.
type ReadoutPanel struct {
	Hidden   bool
	Label    string
	Text     string
	OffImage bool // cursor is outside the map
	Zoom     float64
}

// Lines returns the panel text, one entry per line.
func (r *ReadoutPanel) Lines() []string {
	label := r.Label
	if label == "" {
		label = "Map"
	}
	first := fmt.Sprintf("%s: %s", label, r.Text)
	if r.OffImage {
		first += " (off map)"
	}
	return []string{
		first,
		fmt.Sprintf("Zoom: %.0f%%", r.Zoom*100),
	}
}

func (r *ReadoutPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText DrawTextFunc) {
	if r == nil || r.Hidden || getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	_, h := getScreenSize()
	pw, ph := 220, 50
	x, y := 10, h-ph-10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{0, 0, 0, 160}, false)

	lines := r.Lines()
	text := lines[0]
	for _, l := range lines[1:] {
		text += "\n" + l
	}
	var clr color.Color = color.White
	if r.OffImage {
		clr = color.RGBA{150, 150, 150, 255}
	}
	drawText(screen, face, text, x+8, y+6, clr)
}
