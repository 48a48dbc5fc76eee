package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/components"
)

// TargetingSystem points the player's aim at the pointer.
type TargetingSystem struct {
	filter *ecs.Filter3[components.Transform, components.TargetDirection, components.Player]
}

// NewTargetingSystem creates a new targeting system.
func NewTargetingSystem(w *ecs.World) *TargetingSystem {
	return &TargetingSystem{
		filter: ecs.NewFilter3[components.Transform, components.TargetDirection, components.Player](w),
	}
}

// Update recomputes the aim direction of every player.
// Without a pointer, or with the pointer exactly on the ship, the previous aim is kept.
func (s *TargetingSystem) Update(f *Frame) {
	if !f.Input.HasPointer {
		return
	}
	pointer := f.Camera.ScreenToWorld(f.Input.Pointer)

	query := s.filter.Query()
	for query.Next() {
		tr, dir, _ := query.Get()
		if aim, ok := Aim(tr.Position, pointer); ok {
			dir.Vec = aim
		}
	}
}

// Aim returns the unit vector from the player toward a world-space pointer.
func Aim(player r3.Vec, pointer r2.Vec) (r3.Vec, bool) {
	return unitPlanar(r3.Vec{X: pointer.X - player.X, Y: pointer.Y - player.Y})
}
