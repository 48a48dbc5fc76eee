package components

import "math"

// Footprint is the pixel size of an entity's sprite.
type Footprint struct {
	Width  int
	Height int
}

// ProxyRadius returns the bounding-circle radius for a footprint at the given scale.
// Falls back to fallback when the footprint is empty.
func ProxyRadius(fp Footprint, scale, fallback float64) float64 {
	if fp.Width <= 0 && fp.Height <= 0 {
		return fallback
	}
	if scale <= 0 {
		scale = 1
	}
	return math.Max(float64(fp.Width), float64(fp.Height)) / 2 * scale
}
