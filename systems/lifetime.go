package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
)

// LifetimeSystem counts down entity lifetimes.
type LifetimeSystem struct {
	filter *ecs.Filter1[components.Lifetime]
}

// NewLifetimeSystem creates a new lifetime system.
func NewLifetimeSystem(w *ecs.World) *LifetimeSystem {
	return &LifetimeSystem{
		filter: ecs.NewFilter1[components.Lifetime](w),
	}
}

// Update decrements every lifetime and appends expired entities to dst.
// Expired entities are handed to the lifecycle mark phase, not removed here.
func (s *LifetimeSystem) Update(f *Frame, dst []ecs.Entity) []ecs.Entity {
	query := s.filter.Query()
	for query.Next() {
		life := query.Get()
		life.Remaining -= f.DT
		if life.Remaining <= 0 {
			dst = append(dst, query.Entity())
		}
	}
	return dst
}
