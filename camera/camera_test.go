package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestScreenToWorldCenter(t *testing.T) {
	cam := New(1280, 720)

	w := cam.ScreenToWorld(r2.Vec{X: 640, Y: 360})
	if w.X != 0 || w.Y != 0 {
		t.Errorf("expected world origin, got (%f, %f)", w.X, w.Y)
	}
}

func TestScreenToWorldAxes(t *testing.T) {
	cam := New(1280, 720)

	// Top-left pixel is the upper-left corner of the world (Y up)
	w := cam.ScreenToWorld(r2.Vec{X: 0, Y: 0})
	if w.X != -640 || w.Y != 360 {
		t.Errorf("expected (-640, 360), got (%f, %f)", w.X, w.Y)
	}

	// Moving the pointer down moves world Y down
	w = cam.ScreenToWorld(r2.Vec{X: 650, Y: 370})
	if w.X != 10 || w.Y != -10 {
		t.Errorf("expected (10, -10), got (%f, %f)", w.X, w.Y)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720)

	testCases := []r2.Vec{
		{X: 640, Y: 360},
		{X: 100, Y: 100},
		{X: 1200, Y: 600},
	}

	for _, tc := range testCases {
		s := cam.WorldToScreen(cam.ScreenToWorld(tc))
		if math.Abs(s.X-tc.X) > 1e-9 || math.Abs(s.Y-tc.Y) > 1e-9 {
			t.Errorf("roundtrip failed: %v -> %v", tc, s)
		}
	}
}

func TestContainsHalfOpen(t *testing.T) {
	cam := New(100, 50)

	tests := []struct {
		p    r2.Vec
		want bool
	}{
		{r2.Vec{X: 0, Y: 0}, true},
		{r2.Vec{X: -50, Y: 0}, true},
		{r2.Vec{X: 50, Y: 0}, false},
		{r2.Vec{X: 0, Y: -25}, true},
		{r2.Vec{X: 0, Y: 25}, false},
	}
	for _, tt := range tests {
		if got := cam.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGhostPositions(t *testing.T) {
	cam := New(100, 100)

	if g := cam.GhostPositions(r2.Vec{}, 5); len(g) != 0 {
		t.Errorf("centered circle should have no ghosts, got %v", g)
	}

	g := cam.GhostPositions(r2.Vec{X: 48, Y: 0}, 5)
	if len(g) != 1 || g[0].X != -52 {
		t.Errorf("expected one ghost at x=-52, got %v", g)
	}

	g = cam.GhostPositions(r2.Vec{X: 48, Y: -48}, 5)
	if len(g) != 3 {
		t.Errorf("corner should produce 3 ghosts, got %d", len(g))
	}
}

func TestResize(t *testing.T) {
	cam := New(1280, 720)
	cam.Resize(800, 600)

	hw, hh := cam.HalfExtents()
	if hw != 400 || hh != 300 {
		t.Errorf("expected half extents (400, 300), got (%f, %f)", hw, hh)
	}

	cam.Resize(0, 10)
	if cam.ViewportW != 800 {
		t.Errorf("degenerate resize should be ignored")
	}
}
