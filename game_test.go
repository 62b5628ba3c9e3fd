package main

import (
	"path/filepath"
	"strings"
	"testing"

	"mapview/canvas"
	"mapview/engine"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	tr, err := cfg.Transform()
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	g := NewGame(cfg, tr)
	g.Layout(1920, 1080)
	return g
}

func TestReadoutPlaceholderBeforeLoad(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	g.updateReadout(960, 540)
	if g.ui.Readout.Text != engine.Placeholder {
		t.Errorf("expected placeholder, got %q", g.ui.Readout.Text)
	}
	if g.ui.Debug.Message() == "" {
		t.Error("expected a loading status before the map arrives")
	}
}

func TestReadoutAfterLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Readout.A, cfg.Readout.B = 2, 5
	cfg.Readout.C, cfg.Readout.D = -1, 100
	g := newTestGame(t, cfg)

	g.setMapSize(4091, 6485)
	g.updateReadout(10.4, 20.6)
	if g.ui.Readout.Text != "26, 79" {
		t.Errorf("expected \"26, 79\", got %q", g.ui.Readout.Text)
	}
}

func TestGameClampsOnLoad(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.viewport.Pan(500, 0)
	if g.viewport.OffsetX != 500 {
		t.Fatalf("pan before load should not clamp, got %v", g.viewport.OffsetX)
	}

	g.setMapSize(4091, 6485)
	if g.viewport.OffsetX != 0 {
		t.Errorf("expected offsetX corrected to 0 on load, got %v", g.viewport.OffsetX)
	}
}

func TestButtonsZoomAtCentre(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clamp = false
	g := newTestGame(t, cfg)

	// Zoom in button sits at the top-right corner.
	if !g.ui.Click(1895, 25) {
		t.Fatal("expected the zoom in button")
	}
	if g.viewport.Scale != canvas.KeyZoomFactor {
		t.Errorf("expected scale %v, got %v", canvas.KeyZoomFactor, g.viewport.Scale)
	}
	ix, iy := g.viewport.ScreenToImage(960, 540)
	if ix < 959.999 || ix > 960.001 || iy < 539.999 || iy > 540.001 {
		t.Errorf("centre should stay anchored, got (%v,%v)", ix, iy)
	}
}

func TestToggleGrid(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.ToggleGrid()
	if !g.showGrid {
		t.Error("expected grid on")
	}
	g.ToggleGrid()
	if g.showGrid {
		t.Error("expected grid off")
	}
}

func TestReadoutMarksOffImage(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.setMapSize(1000, 800)

	g.updateReadout(500, 400)
	if g.ui.Readout.OffImage {
		t.Error("cursor over the map should not be marked off map")
	}

	// The map is centred vertically: rows above y=140 are background.
	g.updateReadout(500, 50)
	if !g.ui.Readout.OffImage {
		t.Error("cursor above the map should be marked off map")
	}
	if got := g.ui.Readout.Lines()[0]; got != "Map: 40, -90 (off map)" {
		t.Errorf("unexpected readout %q", got)
	}
}

func TestRefreshReadoutOnlyWhenSomethingMoved(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clamp = false
	g := newTestGame(t, cfg)
	g.setMapSize(4091, 6485)

	g.refreshReadout(100, 100)
	if g.ui.Readout.Text != "100, 100" {
		t.Fatalf("expected \"100, 100\", got %q", g.ui.Readout.Text)
	}

	g.ui.Readout.Text = "stale"
	g.refreshReadout(100, 100)
	if g.ui.Readout.Text != "stale" {
		t.Errorf("nothing moved, readout should be left alone, got %q", g.ui.Readout.Text)
	}

	g.dispatch(canvas.Event{Kind: canvas.PointerDown, X: 0, Y: 0})
	g.dispatch(canvas.Event{Kind: canvas.PointerMove, X: -50, Y: 0})
	g.refreshReadout(100, 100)
	if g.ui.Readout.Text != "150, 100" {
		t.Errorf("pan should refresh the readout, got %q", g.ui.Readout.Text)
	}

	g.refreshReadout(101, 100)
	if g.ui.Readout.Text != "151, 100" {
		t.Errorf("cursor move should refresh the readout, got %q", g.ui.Readout.Text)
	}
}

func TestSaveViewFailureShowsInDebugPanel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ViewFile = filepath.Join(t.TempDir(), "missing-dir", "view.yaml")
	g := newTestGame(t, cfg)

	g.SaveView()
	if msg := g.ui.Debug.Message(); !strings.HasPrefix(msg, "save view:") {
		t.Errorf("expected a save error in the debug panel, got %q", msg)
	}
}

func TestZoomButtonDisabledAtMaxScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clamp = false
	g := newTestGame(t, cfg)
	g.viewport.Restore(cfg.Zoom.Max, 0, 0)

	g.ui.Click(1895, 25)
	if g.viewport.Scale != cfg.Zoom.Max {
		t.Errorf("expected scale to stay at %v, got %v", cfg.Zoom.Max, g.viewport.Scale)
	}
	// Zoom out is still available.
	g.ui.Click(1855, 25)
	if g.viewport.Scale >= cfg.Zoom.Max {
		t.Errorf("zoom out should have applied, got %v", g.viewport.Scale)
	}
}
