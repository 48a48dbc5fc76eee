package systems

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
)

// RosterSystem reports the names of all weapons once, after a delay.
type RosterSystem struct {
	filter    *ecs.Filter1[components.Weapon]
	remaining float64
	done      bool
}

// NewRosterSystem creates a roster that fires after delay seconds.
// A non-positive delay disables it.
func NewRosterSystem(w *ecs.World, delay float64) *RosterSystem {
	return &RosterSystem{
		filter:    ecs.NewFilter1[components.Weapon](w),
		remaining: delay,
		done:      delay <= 0,
	}
}

// Update advances the timer. On the tick it finishes it returns the sorted
// weapon names and ok=true; every other tick returns ok=false.
func (s *RosterSystem) Update(f *Frame) (names []string, ok bool) {
	if s.done {
		return nil, false
	}
	s.remaining -= f.DT
	if s.remaining > 0 {
		return nil, false
	}
	s.done = true

	query := s.filter.Query()
	for query.Next() {
		names = append(names, query.Get().Name)
	}
	sort.Strings(names)
	return names, true
}

// Done reports whether the roster has already fired.
func (s *RosterSystem) Done() bool {
	return s.done
}
