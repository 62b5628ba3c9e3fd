package main

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"mapview/canvas"
	"mapview/engine"
	"mapview/input"
	"mapview/ui"
)

type Game struct {
	cfg      Config
	viewport *canvas.Viewport
	readout  *engine.Readout

	mapImage          *ebiten.Image
	imageToDeallocate *ebiten.Image
	loader            *MapLoader

	screenWidth  int
	screenHeight int

	// Sub-systems
	input *input.InputSystem
	ui    *ui.UISystem
	face  font.Face

	showGrid            bool
	screenshotRequested bool

	// readout refresh bookkeeping
	viewChanged      bool
	cursorX, cursorY int
}

func NewGame(cfg Config, transform engine.Transform) *Game {
	g := &Game{
		cfg:      cfg,
		viewport: canvas.NewViewport(cfg.Limits()),
		readout:  engine.NewReadout(transform),
		loader:   NewMapLoader(cfg.Image),
		showGrid: cfg.Grid,
	}

	g.input = input.NewInputSystem(g)
	g.ui = ui.NewUISystem(g.fontFace, g.SurfaceSize, ui.Actions{
		ZoomIn:     func() { g.zoomAtCentre(canvas.ZoomIn) },
		ZoomOut:    func() { g.zoomAtCentre(canvas.ZoomOut) },
		Fit:        func() { g.dispatch(canvas.Event{Kind: canvas.FitHeight}) },
		Reset:      func() { g.dispatch(canvas.Event{Kind: canvas.ResetView}) },
		CanZoomIn:  g.viewport.CanZoomIn,
		CanZoomOut: g.viewport.CanZoomOut,
	}, DrawTextLines)
	g.ui.Readout.Label = cfg.Readout.Label
	g.ui.Readout.Hidden = !cfg.Readout.Enabled
	g.ui.Readout.Text = engine.Placeholder
	g.ui.Readout.Zoom = g.viewport.Scale
	g.ui.Debug.SetStatus(fmt.Sprintf("Loading %s...", cfg.Image))
	g.viewChanged = true

	return g
}

func (g *Game) fontFace() font.Face {
	if g.face == nil {
		g.face = LoadUIFont(uiFontPath)
	}
	return g.face
}

func (g *Game) zoomAtCentre(kind canvas.Kind) {
	w, h := g.SurfaceSize()
	g.dispatch(canvas.Event{Kind: kind, X: float64(w) / 2, Y: float64(h) / 2})
}

// dispatch applies ev to the viewport and remembers whether the view moved.
func (g *Game) dispatch(ev canvas.Event) {
	if canvas.Dispatch(g.viewport, ev) {
		g.viewChanged = true
	}
}

// --- input.Host ---

func (g *Game) SurfaceSize() (int, int) {
	return g.screenWidth, g.screenHeight
}

func (g *Game) IsMouseOver(mx, my int) bool {
	return g.ui.IsMouseOver(mx, my)
}

func (g *Game) RequestScreenshot() {
	g.screenshotRequested = true
}

func (g *Game) SaveView() {
	if err := SaveView(g.viewport, g.cfg.Image, g.cfg.ViewFile); err != nil {
		log.Println("save view error:", err)
		g.ui.Debug.SetError(fmt.Sprintf("save view: %v", err))
		return
	}
	log.Printf("View saved as %s", g.cfg.ViewFile)
}

func (g *Game) ToggleGrid() {
	g.showGrid = !g.showGrid
}

func (g *Game) Update() error {
	// Deallocate a map that was replaced in the previous frame, so Draw never sees it.
	if g.imageToDeallocate != nil {
		g.imageToDeallocate.Deallocate()
		g.imageToDeallocate = nil
	}

	if r, ok := g.loader.Poll(); ok {
		g.handleLoad(r)
	}

	// Delegate to sub-systems
	g.ui.Update()
	for _, ev := range g.input.Poll() {
		g.dispatch(ev)
	}

	g.refreshReadout(ebiten.CursorPosition())
	return nil
}

func (g *Game) handleLoad(r loadResult) {
	if r.err != nil {
		// Keep showing the previous map, if any.
		log.Printf("Error loading map %s: %v", r.path, r.err)
		g.ui.Debug.SetError(r.err.Error())
		return
	}
	if g.mapImage != nil {
		g.imageToDeallocate = g.mapImage
	}
	g.mapImage = ebiten.NewImageFromImage(r.img)
	g.ui.Debug.Clear()

	b := r.img.Bounds()
	g.setMapSize(b.Dx(), b.Dy())
}

func (g *Game) setMapSize(w, h int) {
	g.viewport.SetImageSize(float64(w), float64(h))
	g.viewChanged = true
	log.Printf("Map loaded: %dx%d", w, h)
}

// refreshReadout recomputes the readout only when the cursor or the view
// moved since the last update.
func (g *Game) refreshReadout(mx, my int) {
	if !g.viewChanged && mx == g.cursorX && my == g.cursorY {
		return
	}
	g.viewChanged = false
	g.cursorX, g.cursorY = mx, my
	g.updateReadout(float64(mx), float64(my))
}

func (g *Game) updateReadout(mx, my float64) {
	v := g.viewport
	g.ui.Readout.Zoom = v.Scale
	if g.ui.Readout.Hidden {
		return
	}

	ix, iy := v.ScreenToImage(mx, my)
	reading, ok, err := g.readout.Read(ix, iy, v.Loaded(), v.ContainsImagePoint(ix, iy))
	if err != nil {
		g.ui.Debug.SetError(err.Error())
	}
	if err != nil || !ok {
		g.ui.Readout.Text = engine.Placeholder
		g.ui.Readout.OffImage = false
		return
	}
	g.ui.Readout.Text = reading.String()
	g.ui.Readout.OffImage = !reading.OnImage
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	if g.mapImage != nil {
		op := &ebiten.DrawImageOptions{}
		// GeoM applies Scale first, then Translate: screen = image*scale + offset.
		op.GeoM.Scale(g.viewport.Scale, g.viewport.Scale)
		op.GeoM.Translate(g.viewport.OffsetX, g.viewport.OffsetY)
		if g.viewport.Scale < 1 {
			op.Filter = ebiten.FilterLinear
		}
		screen.DrawImage(g.mapImage, op)

		if g.showGrid {
			drawImageGrid(screen, g.viewport)
		}
	}

	g.ui.Draw(screen)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	f, err := os.Create(ScreenshotPath)
	if err != nil {
		log.Println("screenshot error:", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		log.Println("screenshot error:", err)
		return
	}
	log.Printf("Screenshot saved as %s", ScreenshotPath)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.viewport.SetSurface(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
