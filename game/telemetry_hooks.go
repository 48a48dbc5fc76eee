package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and writes it out.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush() {
		return
	}

	pop, distances := g.census()

	stats := g.collector.Flush(g.tick, pop, distances)
	stats.RunID = g.runID
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, g.runID, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// census counts projectiles and obstacles and samples obstacle distances to the player.
func (g *Game) census() (pop telemetry.Population, distances []float64) {
	var playerPos r3.Vec
	hasPlayer := false
	if g.world.Alive(g.player) {
		playerPos = g.transformMap.Get(g.player).Position
		hasPlayer = true
	}

	pq := g.projectileFilter.Query()
	for pq.Next() {
		pop.Projectiles++
	}

	oq := g.obstacleFilter.Query()
	for oq.Next() {
		tr, _, _ := oq.Get()
		pop.Obstacles++
		if hasPlayer {
			distances = append(distances, r3.Norm(r3.Sub(tr.Position, playerPos)))
		}
	}

	return pop, distances
}

// Population returns the current projectile and obstacle counts.
func (g *Game) Population() telemetry.Population {
	pop, _ := g.census()
	return pop
}
