package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population counts at window end
	Projectiles int `csv:"projectiles"`
	Obstacles   int `csv:"obstacles"`

	// Events during window
	ShotsFired         int `csv:"shots"`
	ObstaclesSpawned   int `csv:"spawns"`
	Collisions         int `csv:"collisions"`
	ProjectilesRemoved int `csv:"projectiles_removed"`
	ObstaclesRemoved   int `csv:"obstacles_removed"`
	Expired            int `csv:"expired"`

	// Obstacle distance to the player (sampled at window end)
	DistMean float64 `csv:"dist_mean"`
	DistP10  float64 `csv:"dist_p10"`
	DistP50  float64 `csv:"dist_p50"`
	DistP90  float64 `csv:"dist_p90"`
}

// Removed returns the total number of entities swept in the window.
func (s WindowStats) Removed() int {
	return s.ProjectilesRemoved + s.ObstaclesRemoved
}

// DistanceStats summarizes a distance sample.
type DistanceStats struct {
	Mean, P10, P50, P90 float64
}

// ComputeDistanceStats calculates mean and empirical quantiles.
// Returns zeros for an empty sample.
func ComputeDistanceStats(values []float64) DistanceStats {
	if len(values) == 0 {
		return DistanceStats{}
	}

	// Sort for quantiles
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return DistanceStats{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("projectiles", s.Projectiles),
		slog.Int("obstacles", s.Obstacles),
		slog.Int("shots", s.ShotsFired),
		slog.Int("spawns", s.ObstaclesSpawned),
		slog.Int("collisions", s.Collisions),
		slog.Int("destroyed", s.Removed()),
		slog.Int("expired", s.Expired),
		slog.Float64("dist_mean", s.DistMean),
		slog.Float64("dist_p10", s.DistP10),
		slog.Float64("dist_p50", s.DistP50),
		slog.Float64("dist_p90", s.DistP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"projectiles", s.Projectiles,
		"obstacles", s.Obstacles,
		"shots", s.ShotsFired,
		"spawns", s.ObstaclesSpawned,
		"collisions", s.Collisions,
		"projectiles_removed", s.ProjectilesRemoved,
		"obstacles_removed", s.ObstaclesRemoved,
		"expired", s.Expired,
		"dist_mean", s.DistMean,
		"dist_p10", s.DistP10,
		"dist_p50", s.DistP50,
		"dist_p90", s.DistP90,
	)
}
