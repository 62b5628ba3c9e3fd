package main

import (
	"path/filepath"
	"testing"

	"mapview/canvas"
)

func TestSaveLoadView(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "view.yaml")

	l := canvas.DefaultLimits()
	l.Clamp = false
	v := canvas.NewViewport(l)
	v.Restore(2.5, -320, 48.5)

	if err := SaveView(v, "map.png", filename); err != nil {
		t.Fatalf("Failed to save view: %v", err)
	}

	v2 := canvas.NewViewport(l)
	state, err := LoadView(v2, filename)
	if err != nil {
		t.Fatalf("Failed to load view: %v", err)
	}

	if state.Image != "map.png" {
		t.Errorf("Expected image map.png, got %q", state.Image)
	}
	if v2.Scale != 2.5 || v2.OffsetX != -320 || v2.OffsetY != 48.5 {
		t.Errorf("Loaded view mismatch: scale %v offset (%v,%v)", v2.Scale, v2.OffsetX, v2.OffsetY)
	}
}

func TestLoadViewBoundsScale(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "view.yaml")

	l := canvas.DefaultLimits()
	l.Clamp = false
	v := canvas.NewViewport(l)
	v.Scale = 50
	if err := SaveView(v, "map.png", filename); err != nil {
		t.Fatalf("Failed to save view: %v", err)
	}

	v2 := canvas.NewViewport(l)
	if _, err := LoadView(v2, filename); err != nil {
		t.Fatalf("Failed to load view: %v", err)
	}
	if v2.Scale != l.MaxScale {
		t.Errorf("Expected scale bounded to %v, got %v", l.MaxScale, v2.Scale)
	}
}

func TestLoadViewMissingFile(t *testing.T) {
	v := canvas.NewViewport(canvas.DefaultLimits())
	if _, err := LoadView(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing view file")
	}
	if v.Scale != 1 {
		t.Errorf("Failed load must not touch the viewport, scale %v", v.Scale)
	}
}
