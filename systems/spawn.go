package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/components"
)

// SpawnSystem creates obstacles on a countdown.
type SpawnSystem struct {
	filter *ecs.Filter1[components.SpawnTimer]
	rng    *rand.Rand
	radius float64
}

// NewSpawnSystem creates a new spawn system. radius sizes each obstacle's proxy.
func NewSpawnSystem(w *ecs.World, rng *rand.Rand, radius float64) *SpawnSystem {
	return &SpawnSystem{
		filter: ecs.NewFilter1[components.SpawnTimer](w),
		rng:    rng,
		radius: radius,
	}
}

// Update counts every spawn timer down and queues one obstacle per expired timer.
// With no timer entity the tick is skipped; a non-positive period never spawns. Returns the number of obstacles queued.
func (s *SpawnSystem) Update(f *Frame, cmd *Commands) int {
	spawned := 0

	query := s.filter.Query()
	for query.Next() {
		timer := query.Get()

		timer.Remaining -= f.DT
		if timer.Remaining > 0 || timer.Period <= 0 {
			continue
		}

		cmd.SpawnObstacle(ObstacleSpawn{
			Position: s.randomPosition(f),
			Radius:   s.radius,
		})
		// One obstacle per tick however far the timer overshot
		timer.Remaining = timer.Period
		spawned++
	}

	return spawned
}

// randomPosition samples uniformly from [-w/2, w/2) x [-h/2, h/2).
func (s *SpawnSystem) randomPosition(f *Frame) r3.Vec {
	hw, hh := f.Camera.HalfExtents()
	return r3.Vec{
		X: s.rng.Float64()*2*hw - hw,
		Y: s.rng.Float64()*2*hh - hh,
	}
}
