package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// epsilon below which a vector is treated as zero length.
const epsilon = 1e-9

// zAxis is the rotation axis of the play-field.
var zAxis = r3.Vec{Z: 1}

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// planar drops the layer component.
func planar(v r3.Vec) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y}
}

// unitPlanar returns the unit vector of v in the XY plane.
// ok is false for a zero-length vector.
func unitPlanar(v r3.Vec) (u r3.Vec, ok bool) {
	p := planar(v)
	if r3.Norm(p) < epsilon {
		return r3.Vec{}, false
	}
	return r3.Unit(p), true
}

// HeadingFor returns the rotation about +Z that turns the +Y reference axis onto dir.
func HeadingFor(dir r3.Vec) float64 {
	return normalizeAngle(math.Atan2(-dir.X, dir.Y))
}
