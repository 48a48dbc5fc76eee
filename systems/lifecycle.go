package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
)

// LifecycleSystem defers entity destruction to the end of the tick.
// Mark tags entities; Sweep removes everything tagged.
type LifecycleSystem struct {
	world  *ecs.World
	marks  *ecs.Map1[components.DestroyedMark]
	marked *ecs.Filter1[components.DestroyedMark]

	doomed []ecs.Entity
}

// NewLifecycleSystem creates a new lifecycle system.
func NewLifecycleSystem(w *ecs.World) *LifecycleSystem {
	return &LifecycleSystem{
		world:  w,
		marks:  ecs.NewMap1[components.DestroyedMark](w),
		marked: ecs.NewFilter1[components.DestroyedMark](w),
	}
}

// Mark tags e for destruction. Returns true if a new mark was attached.
// Already-marked or already-removed entities are a silent no-op.
func (s *LifecycleSystem) Mark(e ecs.Entity) bool {
	if e.IsZero() || !s.world.Alive(e) {
		return false
	}
	if s.marks.HasAll(e) {
		return false
	}
	s.marks.Add(e, &components.DestroyedMark{})
	return true
}

// MarkEvents tags both entities of every event. Returns the number of new marks.
func (s *LifecycleSystem) MarkEvents(events []CollisionEvent) int {
	n := 0
	for _, ev := range events {
		if s.Mark(ev.A) {
			n++
		}
		if s.Mark(ev.B) {
			n++
		}
	}
	return n
}

// MarkAll tags every listed entity. Returns the number of new marks.
func (s *LifecycleSystem) MarkAll(entities []ecs.Entity) int {
	n := 0
	for _, e := range entities {
		if s.Mark(e) {
			n++
		}
	}
	return n
}

// IsMarked reports whether e is alive and tagged for destruction.
func (s *LifecycleSystem) IsMarked(e ecs.Entity) bool {
	return s.world.Alive(e) && s.marks.HasAll(e)
}

// Sweep removes every marked entity with all its components.
// onRemove, if set, sees each entity just before it is removed.
// Returns the number of entities removed.
func (s *LifecycleSystem) Sweep(onRemove func(ecs.Entity)) int {
	// First pass: collect (the world is locked while the query runs)
	s.doomed = s.doomed[:0]
	query := s.marked.Query()
	for query.Next() {
		s.doomed = append(s.doomed, query.Entity())
	}

	// Second pass: remove
	for _, e := range s.doomed {
		if onRemove != nil {
			onRemove(e)
		}
		s.world.RemoveEntity(e)
	}
	return len(s.doomed)
}
