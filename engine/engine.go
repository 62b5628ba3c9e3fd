package engine

import (
	"errors"
	"fmt"
	"math"

	"go.starlark.net/starlark"
)

// ErrNoTransform is returned when a readout script does not define transform.
var ErrNoTransform = errors.New("script does not define transform(x, y)")

// Transform maps an image-space point to the secondary (game) coordinate system.
type Transform interface {
	Apply(ix, iy float64) (float64, float64, error)
}

// Affine is gameX = imageX*A + B, gameY = imageY*C + D.
type Affine struct {
	A, B, C, D float64
}

// Identity leaves image coordinates unchanged.
func Identity() Affine {
	return Affine{A: 1, C: 1}
}

func (a Affine) Apply(ix, iy float64) (float64, float64, error) {
	return ix*a.A + a.B, iy*a.C + a.D, nil
}

// Script runs a Starlark transform(x, y) function per point.
type Script struct {
	name   string
	thread *starlark.Thread
	fn     starlark.Callable
}

// CompileScript executes src once and keeps its transform function.
func CompileScript(name, src string) (*Script, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}

	globals, err := starlark.ExecFile(thread, name, src, nil)
	if err != nil {
		return nil, fmt.Errorf("exec %s: %w", name, err)
	}
	v, ok := globals["transform"]
	if !ok {
		return nil, ErrNoTransform
	}
	fn, ok := v.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: transform is a %s", ErrNoTransform, v.Type())
	}
	return &Script{name: name, thread: thread, fn: fn}, nil
}

func (s *Script) Apply(ix, iy float64) (float64, float64, error) {
	out, err := starlark.Call(s.thread, s.fn, starlark.Tuple{starlark.Float(ix), starlark.Float(iy)}, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", s.name, err)
	}
	seq, ok := out.(starlark.Indexable)
	if !ok || seq.Len() != 2 {
		return 0, 0, fmt.Errorf("%s: transform must return a pair, got %s", s.name, out.Type())
	}
	gx, err := toFloat(seq.Index(0))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", s.name, err)
	}
	gy, err := toFloat(seq.Index(1))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", s.name, err)
	}
	return gx, gy, nil
}

func toFloat(v starlark.Value) (float64, error) {
	switch val := v.(type) {
	case starlark.Float:
		return float64(val), nil
	case starlark.Int:
		i, ok := val.Int64()
		if !ok {
			return 0, fmt.Errorf("integer %s out of range", val)
		}
		return float64(i), nil
	}
	return 0, fmt.Errorf("unsupported type: %s", v.Type())
}

// Reading is one coordinate readout.
type Reading struct {
	GameX, GameY int
	OnImage      bool
}

// Readout maps the cursor's image position through a Transform.
type Readout struct {
	transform Transform

	// last input and result, reused while the cursor is still
	lastX, lastY float64
	last         Reading
	cached       bool
}

func NewReadout(t Transform) *Readout {
	if t == nil {
		t = Identity()
	}
	return &Readout{transform: t}
}

// Read returns the reading for image point (ix, iy). loaded=false yields
// ok=false so callers can show a placeholder.
func (r *Readout) Read(ix, iy float64, loaded, onImage bool) (Reading, bool, error) {
	if !loaded {
		return Reading{}, false, nil
	}
	if r.cached && ix == r.lastX && iy == r.lastY && onImage == r.last.OnImage {
		return r.last, true, nil
	}

	gx, gy, err := r.transform.Apply(ix, iy)
	if err != nil {
		return Reading{}, false, err
	}
	reading := Reading{
		GameX:   int(math.Round(gx)),
		GameY:   int(math.Round(gy)),
		OnImage: onImage,
	}
	r.lastX, r.lastY, r.last, r.cached = ix, iy, reading, true
	return reading, true, nil
}

// Placeholder is shown while no reading is available.
const Placeholder = "--, --"

func (rd Reading) String() string {
	return fmt.Sprintf("%d, %d", rd.GameX, rd.GameY)
}
