package canvas

import "testing"

func TestClampIdempotent(t *testing.T) {
	cases := []struct {
		offX, offY, scale, imgW, imgH, viewW, viewH float64
	}{
		{500, 500, 1, 4091, 6485, 1920, 1080},
		{-9000, 12, 0.1, 4091, 6485, 1920, 1080},
		{3, -3, 2.5, 640, 480, 800, 600},
		{0, 0, 0.33, 100, 100, 1920, 1080},
		{-1, -1, 10, 1, 1, 9.5, 10.5},
		{42, 42, 1, 0, 0, 800, 600},
	}
	for _, c := range cases {
		x1, y1 := ClampOffsets(c.offX, c.offY, c.scale, c.imgW, c.imgH, c.viewW, c.viewH)
		x2, y2 := ClampOffsets(x1, y1, c.scale, c.imgW, c.imgH, c.viewW, c.viewH)
		if x1 != x2 || y1 != y2 {
			t.Errorf("%+v: first pass (%v,%v), second pass (%v,%v)", c, x1, y1, x2, y2)
		}
	}
}

func TestClampCentresSmallImage(t *testing.T) {
	got := ClampAxis(-400, 0.5, 1000, 1920)
	want := (1920 - 1000*0.5) / 2
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = ClampAxis(12, 1, 1080, 1080)
	if got != 0 {
		t.Errorf("exact fit should centre at 0, got %v", got)
	}
}

func TestClampLargeImageScenario(t *testing.T) {
	x, y := ClampOffsets(500, 0, 1, 4091, 6485, 1920, 1080)
	if x != 0 {
		t.Errorf("expected offsetX corrected to 0, got %v", x)
	}
	if y != 0 {
		t.Errorf("expected offsetY 0, got %v", y)
	}

	x, _ = ClampOffsets(-1000, 0, 1, 4091, 6485, 1920, 1080)
	if x != -1000 {
		t.Errorf("in-range offset should be kept, got %v", x)
	}

	x, y = ClampOffsets(-1e6, -1e6, 1, 4091, 6485, 1920, 1080)
	if x != -2171 || y != 1080-6485 {
		t.Errorf("expected (-2171,%v), got (%v,%v)", 1080-6485, x, y)
	}
}

func TestClampUnknownSize(t *testing.T) {
	x, y := ClampOffsets(123, -456, 3, 0, 200, 800, 600)
	if x != 123 || y != -456 {
		t.Errorf("clamp must not run without natural size, got (%v,%v)", x, y)
	}
	if got := ClampAxis(77, 1, 0, 100); got != 77 {
		t.Errorf("axis clamp with unknown size changed offset to %v", got)
	}
}
