package components

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is an entity's placement. Z is a draw layer and never integrated.
type Transform struct {
	Position r3.Vec
	Rotation float64 // radians about +Z, zero faces +Y
	Scale    float64
}

// Velocity is added to Transform.Position each tick, scaled by elapsed time.
type Velocity struct {
	r3.Vec
}

// TargetDirection is the unit aim vector of the player.
type TargetDirection struct {
	r3.Vec
}

// SpatialProxy is a cached bounding circle for collision tests.
// Center is resynchronized from Transform before every collision pass.
type SpatialProxy struct {
	Center r2.Vec
	Radius float64
}
