// Package telemetry provides windowed run statistics, perf timing, and CSV output.
package telemetry

import "github.com/pthm-cable/drift/components"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartTick int64
	windowStartSec  float64
	elapsedSec      float64

	// Event counters for current window
	shotsFired         int
	obstaclesSpawned   int
	collisions         int
	projectilesRemoved int
	obstaclesRemoved   int
	expired            int
}

// Population is the entity census taken at window end.
type Population struct {
	Projectiles int
	Obstacles   int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// A non-positive duration flushes on every tick.
func NewCollector(windowDurationSec float64) *Collector {
	return &Collector{windowDurationSec: windowDurationSec}
}

// Advance adds one tick's elapsed time to the current window.
func (c *Collector) Advance(dt float64) {
	c.elapsedSec += dt
}

// RecordShots records projectiles queued by weapons.
func (c *Collector) RecordShots(n int) {
	c.shotsFired += n
}

// RecordSpawns records obstacles queued by spawners.
func (c *Collector) RecordSpawns(n int) {
	c.obstaclesSpawned += n
}

// RecordCollisions records collision events.
func (c *Collector) RecordCollisions(n int) {
	c.collisions += n
}

// RecordExpired records projectiles whose lifetime ran out.
func (c *Collector) RecordExpired(n int) {
	c.expired += n
}

// RecordRemoved records an entity removed by the sweep.
func (c *Collector) RecordRemoved(kind components.Kind) {
	switch kind {
	case components.KindProjectile:
		c.projectilesRemoved++
	case components.KindObstacle:
		c.obstaclesRemoved++
	}
}

// ShouldFlush returns true once the window has covered its duration.
func (c *Collector) ShouldFlush() bool {
	return c.elapsedSec-c.windowStartSec >= c.windowDurationSec
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller must provide:
// - currentTick: the current simulation tick
// - pop: entity counts at window end
// - distances: obstacle distances to the player, for the distribution columns
func (c *Collector) Flush(currentTick int64, pop Population, distances []float64) WindowStats {
	dist := ComputeDistanceStats(distances)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      c.elapsedSec,

		Projectiles: pop.Projectiles,
		Obstacles:   pop.Obstacles,

		ShotsFired:         c.shotsFired,
		ObstaclesSpawned:   c.obstaclesSpawned,
		Collisions:         c.collisions,
		ProjectilesRemoved: c.projectilesRemoved,
		ObstaclesRemoved:   c.obstaclesRemoved,
		Expired:            c.expired,

		DistMean: dist.Mean,
		DistP10:  dist.P10,
		DistP50:  dist.P50,
		DistP90:  dist.P90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.windowStartSec = c.elapsedSec
	c.shotsFired = 0
	c.obstaclesSpawned = 0
	c.collisions = 0
	c.projectilesRemoved = 0
	c.obstaclesRemoved = 0
	c.expired = 0

	return stats
}
