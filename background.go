package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mapview/canvas"
)

// drawImageGrid renders a grid every GridSize image pixels over the visible
// part of the map, plus the map outline.
func drawImageGrid(screen *ebiten.Image, v *canvas.Viewport) {
	if !v.Loaded() {
		return
	}
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	left, top := v.ScreenToImage(0, 0)
	right, bottom := v.ScreenToImage(sw, sh)
	left, top = math.Max(left, 0), math.Max(top, 0)
	right, bottom = math.Min(right, v.ImageW), math.Min(bottom, v.ImageH)

	x0, y0 := v.ImageToScreen(0, 0)
	x1, y1 := v.ImageToScreen(v.ImageW, v.ImageH)

	// Skip lines that would be closer than 4px on screen.
	if GridSize*v.Scale >= 4 {
		for ix := math.Ceil(left/GridSize) * GridSize; ix <= right; ix += GridSize {
			sx, _ := v.ImageToScreen(ix, 0)
			vector.StrokeLine(screen, float32(sx), float32(math.Max(0, y0)), float32(sx), float32(math.Min(sh, y1)), 1, ColorGrid, false)
		}
		for iy := math.Ceil(top/GridSize) * GridSize; iy <= bottom; iy += GridSize {
			_, sy := v.ImageToScreen(0, iy)
			vector.StrokeLine(screen, float32(math.Max(0, x0)), float32(sy), float32(math.Min(sw, x1)), float32(sy), 1, ColorGrid, false)
		}
	}

	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 2, ColorImageEdge, false)
}
