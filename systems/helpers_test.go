package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/camera"
	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/input"
)

// testFrame returns a frame over a 100x100 play-field.
func testFrame(dt float64, in input.Snapshot) *Frame {
	return &Frame{DT: dt, Input: in, Camera: camera.New(100, 100)}
}

// newPlayer creates a ship at pos with the given aim.
func newPlayer(w *ecs.World, pos, aim r3.Vec) ecs.Entity {
	m := ecs.NewMap4[components.Transform, components.Velocity, components.TargetDirection, components.Player](w)
	return m.NewEntity(
		&components.Transform{Position: pos, Scale: 1},
		&components.Velocity{},
		&components.TargetDirection{Vec: aim},
		&components.Player{},
	)
}

// newProxy creates a collidable circle at (x, y).
func newProxy(w *ecs.World, x, y, radius float64) ecs.Entity {
	m := ecs.NewMap2[components.Transform, components.SpatialProxy](w)
	return m.NewEntity(
		&components.Transform{Position: r3.Vec{X: x, Y: y}, Scale: 1},
		&components.SpatialProxy{Center: r2.Vec{}, Radius: radius},
	)
}
