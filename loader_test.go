package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func waitForLoad(t *testing.T, l *MapLoader) loadResult {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		if r, ok := l.Poll(); ok {
			return r
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for the map to load")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDecodeImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	writePNG(t, path, 40, 25)

	img, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 25 {
		t.Errorf("expected 40x25, got %dx%d", b.Dx(), b.Dy())
	}

	if _, err := DecodeImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}

	junk := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeImage(junk); err == nil {
		t.Error("expected a decode error")
	}
}

func TestMapLoaderLoadsInBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	writePNG(t, path, 64, 32)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewMapLoader(path)
	if err := l.Start(ctx, false); err != nil {
		t.Fatalf("Start: %v", err)
	}

	r := waitForLoad(t, l)
	if r.err != nil {
		t.Fatalf("load error: %v", r.err)
	}
	if r.path != path {
		t.Errorf("expected path %s, got %s", path, r.path)
	}
	if b := r.img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("expected 64x32, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestMapLoaderReportsMissingFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewMapLoader(filepath.Join(t.TempDir(), "missing.png"))
	if err := l.Start(ctx, false); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if r := waitForLoad(t, l); r.err == nil {
		t.Error("expected a load error")
	}
}

func TestMapLoaderReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	writePNG(t, path, 10, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewMapLoader(path)
	if err := l.Start(ctx, true); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if r := waitForLoad(t, l); r.err != nil {
		t.Fatalf("first load: %v", r.err)
	}

	writePNG(t, path, 20, 30)

	deadline := time.After(5 * time.Second)
	for {
		if r, ok := l.Poll(); ok && r.err == nil && r.img.Bounds().Dx() == 20 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("map was not reloaded after the file changed")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
