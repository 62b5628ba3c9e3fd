package canvas

// Kind identifies an input event.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	PointerLeave
	Wheel
	Tick
	Resize
	ZoomIn
	ZoomOut
	ResetView
	FitHeight
	ActualSize
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case PointerLeave:
		return "pointer-leave"
	case Wheel:
		return "wheel"
	case Tick:
		return "tick"
	case Resize:
		return "resize"
	case ZoomIn:
		return "zoom-in"
	case ZoomOut:
		return "zoom-out"
	case ResetView:
		return "reset-view"
	case FitHeight:
		return "fit-height"
	case ActualSize:
		return "actual-size"
	}
	return "unknown"
}

// Event is a single host input delivered to Dispatch. X and Y carry the
// pointer position (or the surface size for Resize); Delta carries the wheel
// delta, positive meaning scroll down/away.
type Event struct {
	Kind  Kind
	X, Y  float64
	Delta float64
}

// KeyZoomFactor is the scale factor applied by ZoomIn and ZoomOut.
const KeyZoomFactor = 1.1

// Dispatch applies one event to the viewport and reports whether the view
// changed and needs a redraw. Events must be delivered in host order.
func Dispatch(v *Viewport, ev Event) bool {
	beforeS, beforeX, beforeY := v.Scale, v.OffsetX, v.OffsetY

	switch ev.Kind {
	case PointerDown:
		v.BeginDrag(ev.X, ev.Y)
		return false
	case PointerMove:
		v.DragTo(ev.X, ev.Y)
	case PointerUp, PointerLeave:
		v.EndDrag()
		return false
	case Wheel:
		v.Wheel(ev.Delta, ev.X, ev.Y)
		if v.Smoothed() {
			return true
		}
	case Tick:
		return v.Tick()
	case Resize:
		v.SetSurface(ev.X, ev.Y)
		return true
	case ZoomIn:
		v.ZoomBy(KeyZoomFactor, ev.X, ev.Y)
		if v.Smoothed() {
			return true
		}
	case ZoomOut:
		v.ZoomBy(1/KeyZoomFactor, ev.X, ev.Y)
		if v.Smoothed() {
			return true
		}
	case ResetView:
		v.Reset()
	case FitHeight:
		v.FitHeight()
	case ActualSize:
		v.ActualSize()
	}

	return v.Scale != beforeS || v.OffsetX != beforeX || v.OffsetY != beforeY
}
