package canvas

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScale is returned by Limits.Validate for unusable scale bounds.
var ErrInvalidScale = errors.New("invalid scale bounds")

// ZoomMode selects how a wheel step changes the scale.
type ZoomMode string

const (
	ZoomMultiplicative ZoomMode = "multiplicative"
	ZoomAdditive       ZoomMode = "additive"
)

// Limits holds the tunables of a Viewport.
type Limits struct {
	MinScale     float64
	MaxScale     float64
	ZoomStrength float64
	ZoomMode     ZoomMode
	Clamp        bool
	// Smoothing is the per-tick damping factor in (0, 1]. Zero disables
	// smoothing and zoom steps apply immediately.
	Smoothing   float64
	SnapEpsilon float64
}

// DefaultLimits returns the limits used when no config overrides them.
func DefaultLimits() Limits {
	return Limits{
		MinScale:     0.1,
		MaxScale:     10,
		ZoomStrength: 0.2,
		ZoomMode:     ZoomMultiplicative,
		Clamp:        true,
		SnapEpsilon:  1e-3,
	}
}

// Validate checks that the limits describe a usable viewport.
func (l Limits) Validate() error {
	if l.MinScale <= 0 || l.MaxScale < l.MinScale {
		return fmt.Errorf("%w: min %v max %v", ErrInvalidScale, l.MinScale, l.MaxScale)
	}
	if l.ZoomStrength <= 0 {
		return fmt.Errorf("zoom strength must be positive, got %v", l.ZoomStrength)
	}
	if l.ZoomMode == ZoomMultiplicative && l.ZoomStrength >= 1 {
		return fmt.Errorf("multiplicative zoom strength must be below 1, got %v", l.ZoomStrength)
	}
	if l.ZoomMode != ZoomMultiplicative && l.ZoomMode != ZoomAdditive {
		return fmt.Errorf("unknown zoom mode %q", l.ZoomMode)
	}
	if l.Smoothing < 0 || l.Smoothing > 1 {
		return fmt.Errorf("smoothing must be within [0, 1], got %v", l.Smoothing)
	}
	return nil
}

// Viewport maps an image onto the drawing surface. Image pixel (0,0) is drawn
// at (OffsetX, OffsetY) and every image pixel covers Scale screen pixels.
type Viewport struct {
	Scale            float64
	OffsetX, OffsetY float64

	// Smoothed mode only: the values Scale and Offset move toward on Tick.
	TargetScale                  float64
	TargetOffsetX, TargetOffsetY float64

	// Drawing surface size in screen pixels.
	ViewW, ViewH float64
	// Natural image size in pixels, zero until the image has loaded.
	ImageW, ImageH float64

	Limits Limits

	dragging     bool
	lastX, lastY float64
}

// NewViewport creates a viewport at scale 1 with no offset.
func NewViewport(limits Limits) *Viewport {
	return &Viewport{
		Scale:       1,
		TargetScale: 1,
		Limits:      limits,
	}
}

// Smoothed reports whether zoom steps animate toward a target.
func (v *Viewport) Smoothed() bool {
	return v.Limits.Smoothing > 0
}

// Loaded reports whether the natural image size is known.
func (v *Viewport) Loaded() bool {
	return v.ImageW > 0 && v.ImageH > 0
}

// Dragging reports whether a drag gesture is in progress.
func (v *Viewport) Dragging() bool {
	return v.dragging
}

// SetSurface records the drawing surface size and re-clamps.
func (v *Viewport) SetSurface(w, h float64) {
	if w == v.ViewW && h == v.ViewH {
		return
	}
	v.ViewW, v.ViewH = w, h
	v.settle()
}

// SetImageSize records the natural image size. Zero means not loaded.
func (v *Viewport) SetImageSize(w, h float64) {
	v.ImageW, v.ImageH = w, h
	v.settle()
}

func (v *Viewport) ScreenToImage(px, py float64) (float64, float64) {
	return (px - v.OffsetX) / v.Scale, (py - v.OffsetY) / v.Scale
}

func (v *Viewport) ImageToScreen(ix, iy float64) (float64, float64) {
	return ix*v.Scale + v.OffsetX, iy*v.Scale + v.OffsetY
}

// ContainsImagePoint reports whether an image-space point lies on the image.
func (v *Viewport) ContainsImagePoint(ix, iy float64) bool {
	return v.Loaded() && ix >= 0 && iy >= 0 && ix < v.ImageW && iy < v.ImageH
}

// BeginDrag starts a pan gesture at the given pointer position.
func (v *Viewport) BeginDrag(x, y float64) {
	v.dragging = true
	v.lastX, v.lastY = x, y
}

// DragTo moves the image by the pointer delta since the last call.
// It is a no-op unless a drag is in progress.
func (v *Viewport) DragTo(x, y float64) {
	if !v.dragging {
		return
	}
	v.Pan(x-v.lastX, y-v.lastY)
	v.lastX, v.lastY = x, y
}

// EndDrag ends the current pan gesture, if any.
func (v *Viewport) EndDrag() {
	v.dragging = false
}

// Pan translates the image by (dx, dy) screen pixels.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
	v.TargetOffsetX += dx
	v.TargetOffsetY += dy
	v.settle()
}

// Wheel applies one wheel step at the cursor. Positive delta zooms out.
func (v *Viewport) Wheel(delta, mx, my float64) {
	if delta == 0 {
		return
	}
	scale := v.Scale
	if v.Smoothed() {
		scale = v.TargetScale
	}
	s := v.Limits.ZoomStrength
	var next float64
	switch v.Limits.ZoomMode {
	case ZoomAdditive:
		if delta > 0 {
			next = scale - s
		} else {
			next = scale + s
		}
	default:
		if delta > 0 {
			next = scale * (1 - s)
		} else {
			next = scale * (1 + s)
		}
	}
	v.ZoomAt(next, mx, my)
}

// ZoomBy multiplies the scale by factor, anchored at (mx, my).
func (v *Viewport) ZoomBy(factor, mx, my float64) {
	scale := v.Scale
	if v.Smoothed() {
		scale = v.TargetScale
	}
	v.ZoomAt(scale*factor, mx, my)
}

// CanZoomIn reports whether the scale (or its target when smoothed) is
// below the maximum.
func (v *Viewport) CanZoomIn() bool {
	return v.zoomScale() < v.Limits.MaxScale
}

// CanZoomOut reports whether the scale (or its target) is above the minimum.
func (v *Viewport) CanZoomOut() bool {
	return v.zoomScale() > v.Limits.MinScale
}

func (v *Viewport) zoomScale() float64 {
	if v.Smoothed() {
		return v.TargetScale
	}
	return v.Scale
}

// ZoomAt sets the scale (bounded by the limits) keeping the image point under
// (mx, my) at the same screen position.
func (v *Viewport) ZoomAt(scale, mx, my float64) {
	scale = clamp(scale, v.Limits.MinScale, v.Limits.MaxScale)

	if v.Smoothed() {
		ix := (mx - v.TargetOffsetX) / v.TargetScale
		iy := (my - v.TargetOffsetY) / v.TargetScale
		v.TargetScale = scale
		v.TargetOffsetX = mx - ix*scale
		v.TargetOffsetY = my - iy*scale
		if v.Limits.Clamp {
			v.TargetOffsetX, v.TargetOffsetY = ClampOffsets(v.TargetOffsetX, v.TargetOffsetY, v.TargetScale, v.ImageW, v.ImageH, v.ViewW, v.ViewH)
		}
		return
	}

	ix, iy := v.ScreenToImage(mx, my)
	v.Scale = scale
	v.OffsetX = mx - ix*scale
	v.OffsetY = my - iy*scale
	v.settle()
}

// Tick advances scale and offsets one frame toward their targets. It
// returns true while the animation is still in progress.
func (v *Viewport) Tick() bool {
	if !v.Smoothed() {
		return false
	}
	k := v.Limits.Smoothing
	eps := v.Limits.SnapEpsilon

	moving := false
	step := func(cur, target float64) float64 {
		if math.Abs(target-cur) <= eps {
			return target
		}
		moving = true
		return cur + (target-cur)*k
	}
	v.Scale = step(v.Scale, v.TargetScale)
	v.OffsetX = step(v.OffsetX, v.TargetOffsetX)
	v.OffsetY = step(v.OffsetY, v.TargetOffsetY)
	v.settle()
	return moving
}

// Reset puts the viewport back at scale 1 with no offset.
func (v *Viewport) Reset() {
	v.Scale, v.OffsetX, v.OffsetY = 1, 0, 0
	v.syncTarget()
	v.settle()
}

// FitHeight scales the image to the surface height and centres it
// horizontally. No-op until the image has loaded.
func (v *Viewport) FitHeight() {
	if !v.Loaded() || v.ViewH <= 0 {
		return
	}
	v.Scale = clamp(v.ViewH/v.ImageH, v.Limits.MinScale, v.Limits.MaxScale)
	v.OffsetX = (v.ViewW - v.ImageW*v.Scale) / 2
	v.OffsetY = 0
	v.syncTarget()
	v.settle()
}

// ActualSize shows the image at 1:1 and centres it.
func (v *Viewport) ActualSize() {
	if !v.Loaded() {
		return
	}
	v.Scale = clamp(1, v.Limits.MinScale, v.Limits.MaxScale)
	v.OffsetX = (v.ViewW - v.ImageW*v.Scale) / 2
	v.OffsetY = (v.ViewH - v.ImageH*v.Scale) / 2
	v.syncTarget()
	v.settle()
}

// Restore sets scale and offsets directly, e.g. from a saved view.
func (v *Viewport) Restore(scale, offsetX, offsetY float64) {
	v.Scale = clamp(scale, v.Limits.MinScale, v.Limits.MaxScale)
	v.OffsetX, v.OffsetY = offsetX, offsetY
	v.syncTarget()
	v.settle()
}

// Clamp applies the bounds policy to the current offsets.
func (v *Viewport) Clamp() {
	v.OffsetX, v.OffsetY = ClampOffsets(v.OffsetX, v.OffsetY, v.Scale, v.ImageW, v.ImageH, v.ViewW, v.ViewH)
}

func (v *Viewport) syncTarget() {
	v.TargetScale = v.Scale
	v.TargetOffsetX, v.TargetOffsetY = v.OffsetX, v.OffsetY
}

// settle re-applies the bounds policy after a mutation. In immediate mode
// the targets simply follow the current values.
func (v *Viewport) settle() {
	if v.Limits.Clamp {
		v.Clamp()
	}
	if !v.Smoothed() {
		v.syncTarget()
		return
	}
	if v.Limits.Clamp {
		v.TargetOffsetX, v.TargetOffsetY = ClampOffsets(v.TargetOffsetX, v.TargetOffsetY, v.TargetScale, v.ImageW, v.ImageH, v.ViewW, v.ViewH)
	}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
