// Package systems provides ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/camera"
	"github.com/pthm-cable/drift/input"
)

// Frame is the shared, read-only state for one tick.
// Elapsed time is sampled once and is the same for every system.
type Frame struct {
	Tick   int64
	DT     float64
	Input  input.Snapshot
	Camera *camera.Camera
}

// ProjectileSpawn is a queued request to create a projectile.
type ProjectileSpawn struct {
	Position r3.Vec
	Velocity r3.Vec
	Radius   float64
	Lifetime float64 // <= 0 means no expiry
}

// ObstacleSpawn is a queued request to create an obstacle.
type ObstacleSpawn struct {
	Position r3.Vec
	Radius   float64
}

// Commands queues entity creation until the end of the tick.
// The world must not change shape while systems are iterating it.
type Commands struct {
	Projectiles []ProjectileSpawn
	Obstacles   []ObstacleSpawn
}

// SpawnProjectile queues a projectile.
func (c *Commands) SpawnProjectile(p ProjectileSpawn) {
	c.Projectiles = append(c.Projectiles, p)
}

// SpawnObstacle queues an obstacle.
func (c *Commands) SpawnObstacle(o ObstacleSpawn) {
	c.Obstacles = append(c.Obstacles, o)
}

// Len returns the number of queued spawns.
func (c *Commands) Len() int {
	return len(c.Projectiles) + len(c.Obstacles)
}

// Reset empties the queue, keeping capacity.
func (c *Commands) Reset() {
	c.Projectiles = c.Projectiles[:0]
	c.Obstacles = c.Obstacles[:0]
}

// CollisionEvent is an unordered pair of overlapping entities.
// A always has the lower ID, so (a, b) and (b, a) build the same value.
type CollisionEvent struct {
	A, B ecs.Entity
}

// NewCollisionEvent builds the canonical event for a pair.
func NewCollisionEvent(a, b ecs.Entity) CollisionEvent {
	if b.ID() < a.ID() {
		a, b = b, a
	}
	return CollisionEvent{A: a, B: b}
}

// pairKey identifies an unordered pair by entity IDs.
type pairKey struct {
	lo, hi uint32
}

func (e CollisionEvent) key() pairKey {
	return pairKey{lo: e.A.ID(), hi: e.B.ID()}
}
