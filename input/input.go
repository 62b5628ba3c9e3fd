package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mapview/canvas"
)

// Host defines the callbacks the input system needs from the main game.
type Host interface {
	SurfaceSize() (int, int)
	IsMouseOver(mx, my int) bool
	RequestScreenshot()
	SaveView() // reports its own failures
	ToggleGrid()
}

// Snapshot holds the polled state of inputs for a single tick. This
// separates input polling from translating it into events.
type Snapshot struct {
	MouseX, MouseY int
	SurfaceW       int
	SurfaceH       int
	WheelY         float64

	PressStart bool // left or middle button just pressed
	PressEnd   bool // left or middle button just released
	OverUI     bool
	ZoomInKey  bool
	ZoomOutKey bool
	ResetKey   bool
	FitKey     bool
	ActualKey  bool
	Screenshot bool
	Save       bool
	ToggleGrid bool
}

// Inside reports whether the cursor is on the drawing surface.
func (s Snapshot) Inside() bool {
	return s.MouseX >= 0 && s.MouseY >= 0 && s.MouseX < s.SurfaceW && s.MouseY < s.SurfaceH
}

type InputSystem struct {
	host Host

	prev    Snapshot
	started bool
}

func NewInputSystem(h Host) *InputSystem {
	return &InputSystem{host: h}
}

// Poll reads Ebiten's input state for this tick, runs the host actions
// (screenshot, save, grid) and returns the viewport events in order.
func (is *InputSystem) Poll() []canvas.Event {
	cur := is.poll()

	if cur.Screenshot {
		is.host.RequestScreenshot()
	}
	if cur.Save {
		is.host.SaveView()
	}
	if cur.ToggleGrid {
		is.host.ToggleGrid()
	}

	var prev *Snapshot
	if is.started {
		prev = &is.prev
	}
	events := Translate(prev, cur)
	is.prev = cur
	is.started = true
	return events
}

func (is *InputSystem) poll() Snapshot {
	_, wheelY := ebiten.Wheel()
	mx, my := ebiten.CursorPosition()
	w, h := is.host.SurfaceSize()
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	return Snapshot{
		MouseX:   mx,
		MouseY:   my,
		SurfaceW: w,
		SurfaceH: h,
		WheelY:   wheelY,

		PressStart: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
		PressEnd: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle),
		OverUI: is.host.IsMouseOver(mx, my),

		ZoomInKey:  inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd),
		ZoomOutKey: inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract),
		ResetKey:   inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyKP0),
		FitKey:     inpututil.IsKeyJustPressed(ebiten.KeyF),
		ActualKey:  inpututil.IsKeyJustPressed(ebiten.KeyO),
		Screenshot: inpututil.IsKeyJustPressed(ebiten.KeyF12),
		Save:       ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS),
		ToggleGrid: inpututil.IsKeyJustPressed(ebiten.KeyG),
	}
}

// Translate turns two consecutive snapshots into viewport events. prev is
// nil on the first tick. A Tick event always comes last.
func Translate(prev *Snapshot, cur Snapshot) []canvas.Event {
	var events []canvas.Event
	mx, my := float64(cur.MouseX), float64(cur.MouseY)
	cx, cy := float64(cur.SurfaceW)/2, float64(cur.SurfaceH)/2

	if prev == nil || prev.SurfaceW != cur.SurfaceW || prev.SurfaceH != cur.SurfaceH {
		events = append(events, canvas.Event{Kind: canvas.Resize, X: float64(cur.SurfaceW), Y: float64(cur.SurfaceH)})
	}

	if cur.ResetKey {
		events = append(events, canvas.Event{Kind: canvas.ResetView})
	}
	if cur.FitKey {
		events = append(events, canvas.Event{Kind: canvas.FitHeight})
	}
	if cur.ActualKey {
		events = append(events, canvas.Event{Kind: canvas.ActualSize})
	}
	if cur.ZoomInKey {
		events = append(events, canvas.Event{Kind: canvas.ZoomIn, X: cx, Y: cy})
	}
	if cur.ZoomOutKey {
		events = append(events, canvas.Event{Kind: canvas.ZoomOut, X: cx, Y: cy})
	}

	// Ebiten reports scrolling up as positive; events use the opposite sign.
	if cur.WheelY != 0 && cur.Inside() {
		events = append(events, canvas.Event{Kind: canvas.Wheel, X: mx, Y: my, Delta: -cur.WheelY})
	}

	wasInside := prev != nil && prev.Inside()
	moved := prev != nil && (prev.MouseX != cur.MouseX || prev.MouseY != cur.MouseY)

	switch {
	case wasInside && !cur.Inside():
		events = append(events, canvas.Event{Kind: canvas.PointerLeave, X: mx, Y: my})
	case cur.Inside():
		if cur.PressStart && !cur.OverUI {
			events = append(events, canvas.Event{Kind: canvas.PointerDown, X: mx, Y: my})
		} else if moved {
			events = append(events, canvas.Event{Kind: canvas.PointerMove, X: mx, Y: my})
		}
		if cur.PressEnd {
			events = append(events, canvas.Event{Kind: canvas.PointerUp, X: mx, Y: my})
		}
	}

	return append(events, canvas.Event{Kind: canvas.Tick})
}
