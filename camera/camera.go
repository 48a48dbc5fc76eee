// Package camera maps between viewport pixels and world coordinates.
//
// The world is center-origin with Y up. The viewport is top-left-origin with Y down
// and the play-field is exactly the viewport, so one pixel is one world unit.
package camera

import "gonum.org/v1/gonum/spatial/r2"

// Camera tracks the current viewport size.
type Camera struct {
	ViewportW, ViewportH float64
}

// New creates a camera for a viewport of the given size.
func New(viewportW, viewportH float64) *Camera {
	return &Camera{ViewportW: viewportW, ViewportH: viewportH}
}

// HalfExtents returns half the play-field width and height.
func (c *Camera) HalfExtents() (hw, hh float64) {
	return c.ViewportW / 2, c.ViewportH / 2
}

// ScreenToWorld converts a pointer position to world coordinates.
func (c *Camera) ScreenToWorld(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: p.X - c.ViewportW/2,
		Y: -(p.Y - c.ViewportH/2),
	}
}

// WorldToScreen converts world coordinates to viewport pixels.
func (c *Camera) WorldToScreen(w r2.Vec) r2.Vec {
	return r2.Vec{
		X: w.X + c.ViewportW/2,
		Y: c.ViewportH/2 - w.Y,
	}
}

// Contains reports whether p lies in the half-open play-field [-w/2, w/2) x [-h/2, h/2).
func (c *Camera) Contains(p r2.Vec) bool {
	hw, hh := c.HalfExtents()
	return p.X >= -hw && p.X < hw && p.Y >= -hh && p.Y < hh
}

// IsVisible returns true if a circle at p with the given radius overlaps the view.
func (c *Camera) IsVisible(p r2.Vec, radius float64) bool {
	hw, hh := c.HalfExtents()
	return p.X+radius >= -hw && p.X-radius <= hw && p.Y+radius >= -hh && p.Y-radius <= hh
}

// GhostPositions returns extra world positions for a circle straddling a play-field edge,
// so a wrapping entity is drawn on both sides.
func (c *Camera) GhostPositions(p r2.Vec, radius float64) []r2.Vec {
	var ghosts []r2.Vec
	hw, hh := c.HalfExtents()

	var gx, gy float64
	hGhost, vGhost := false, false
	if p.X > hw-radius {
		hGhost, gx = true, p.X-c.ViewportW
	} else if p.X < -hw+radius {
		hGhost, gx = true, p.X+c.ViewportW
	}
	if p.Y > hh-radius {
		vGhost, gy = true, p.Y-c.ViewportH
	} else if p.Y < -hh+radius {
		vGhost, gy = true, p.Y+c.ViewportH
	}

	if hGhost {
		ghosts = append(ghosts, r2.Vec{X: gx, Y: p.Y})
	}
	if vGhost {
		ghosts = append(ghosts, r2.Vec{X: p.X, Y: gy})
	}
	if hGhost && vGhost {
		ghosts = append(ghosts, r2.Vec{X: gx, Y: gy})
	}
	return ghosts
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	if viewportW <= 0 || viewportH <= 0 {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}
