package game

// Options holds run settings that are not part of the YAML config.
type Options struct {
	Seed           int64
	RunID          string
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
}

// DefaultOptions returns options for a quiet run with a fixed seed.
func DefaultOptions() Options {
	return Options{Seed: 42}
}
