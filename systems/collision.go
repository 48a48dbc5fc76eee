package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/drift/components"
)

// proxyEntry is a proxy snapshot taken for one collision pass.
type proxyEntry struct {
	e      ecs.Entity
	center r2.Vec
	radius float64
}

// CollisionSystem tests every pair of proxy circles.
//
// The pass is O(n^2) in the number of proxy-bearing entities. That is the
// simulation's asymptotic bottleneck; a SpatialGrid-style broadphase is the
// next step if obstacle counts grow.
type CollisionSystem struct {
	filter  *ecs.Filter2[components.Transform, components.SpatialProxy]
	entries []proxyEntry
	seen    map[pairKey]struct{}
}

// NewCollisionSystem creates a new collision system.
func NewCollisionSystem(w *ecs.World) *CollisionSystem {
	return &CollisionSystem{
		filter:  ecs.NewFilter2[components.Transform, components.SpatialProxy](w),
		entries: make([]proxyEntry, 0, 64),
		seen:    make(map[pairKey]struct{}),
	}
}

// Update resyncs proxies from transforms, then appends one event per overlapping pair to dst.
func (s *CollisionSystem) Update(dst []CollisionEvent) []CollisionEvent {
	s.Sync()
	return s.Detect(dst)
}

// Sync copies each transform position into its proxy center and snapshots the proxies.
func (s *CollisionSystem) Sync() {
	s.entries = s.entries[:0]

	query := s.filter.Query()
	for query.Next() {
		tr, proxy := query.Get()
		proxy.Center = r2.Vec{X: tr.Position.X, Y: tr.Position.Y}
		s.entries = append(s.entries, proxyEntry{
			e:      query.Entity(),
			center: proxy.Center,
			radius: proxy.Radius,
		})
	}
}

// Detect appends a CollisionEvent for every distinct overlapping pair.
// Tangent circles do not collide.
func (s *CollisionSystem) Detect(dst []CollisionEvent) []CollisionEvent {
	clear(s.seen)

	for i := 0; i < len(s.entries); i++ {
		a := &s.entries[i]
		for j := i + 1; j < len(s.entries); j++ {
			b := &s.entries[j]
			if a.e == b.e {
				continue
			}
			if !Overlaps(a.center, a.radius, b.center, b.radius) {
				continue
			}
			ev := NewCollisionEvent(a.e, b.e)
			k := ev.key()
			if _, dup := s.seen[k]; dup {
				continue
			}
			s.seen[k] = struct{}{}
			dst = append(dst, ev)
		}
	}

	return dst
}

// Overlaps reports whether two circles intersect: distance < ra + rb.
func Overlaps(ca r2.Vec, ra float64, cb r2.Vec, rb float64) bool {
	return r2.Norm(r2.Sub(ca, cb)) < ra+rb
}
