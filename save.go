package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"mapview/canvas"
)

type ViewState struct {
	Image   string  `yaml:"image"`
	Scale   float64 `yaml:"scale"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// SaveView writes the current scale and offsets to filename.
func SaveView(v *canvas.Viewport, image, filename string) error {
	state := ViewState{
		Image:   image,
		Scale:   v.Scale,
		OffsetX: v.OffsetX,
		OffsetY: v.OffsetY,
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	err = enc.Encode(&state)
	if err != nil {
		return err
	}
	return enc.Close()
}

// LoadView reads a saved view and applies it to v. Scale is re-bounded by
// the viewport limits and offsets are re-clamped.
func LoadView(v *canvas.Viewport, filename string) (ViewState, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return ViewState{}, err
	}

	var state ViewState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return ViewState{}, err
	}
	if state.Scale <= 0 {
		state.Scale = 1
	}

	v.Restore(state.Scale, state.OffsetX, state.OffsetY)
	return state, nil
}
