package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// DrawTextFunc draws text with its top-left corner at (x, y).
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// Actions are the viewport commands the buttons trigger. CanZoomIn and
// CanZoomOut grey out the zoom buttons at the scale limits; nil means
// always allowed.
type Actions struct {
	ZoomIn     func()
	ZoomOut    func()
	Fit        func()
	Reset      func()
	CanZoomIn  func() bool
	CanZoomOut func() bool
}

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      DrawTextFunc
	Readout       *ReadoutPanel
	Debug         *DebugPanel
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), actions Actions, drawText DrawTextFunc) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Readout:       &ReadoutPanel{},
		Debug:         &DebugPanel{},
	}
	ui.buttons = []*Button{
		{Label: "+", W: 30, H: 30, OnClick: actions.ZoomIn, Enabled: actions.CanZoomIn},
		{Label: "-", W: 30, H: 30, OnClick: actions.ZoomOut, Enabled: actions.CanZoomOut},
		{Label: "[]", W: 30, H: 30, OnClick: actions.Fit},
		{Label: "1", W: 30, H: 30, OnClick: actions.Reset},
	}
	ui.updateButtonPositions()
	return ui
}

// updateButtonPositions lays the buttons out right to left along the top edge.
func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w) - 10
	for _, b := range ui.buttons {
		x -= b.W
		b.X = x
		b.Y = 10
		x -= 10
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click runs the action of the button under (mx, my). It reports whether a
// button was hit, even a disabled one.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil && b.IsEnabled() {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	mx, my := ebiten.CursorPosition()
	ui.Hover(mx, my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ui.Click(mx, my)
	}
}

// Hover updates the highlight of every button for a cursor at (mx, my).
func (ui *UISystem) Hover(mx, my int) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.SetHover(mx, my)
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	ui.Readout.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
}
