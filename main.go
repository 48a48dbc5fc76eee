package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/pthm-cable/drift/clock"
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/game"
	"github.com/pthm-cable/drift/input"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	runID := uuid.NewString()
	slog.SetDefault(logger.With(
		"run_id", runID,
		"config", fmt.Sprintf("%016x", cfg.Derived.Fingerprint),
	))

	opts := game.Options{
		Seed:           rngSeed,
		RunID:          runID,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
	}

	if *headless {
		if err := runHeadless(cfg, opts, *maxTicks); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runWindowed(cfg, opts, *maxTicks); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless steps the simulation on a fixed clock with scripted input.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int64) error {
	// Pure CPU simulation, no window needed
	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Unload()
	g.LogPipeline()

	clk := clock.Fixed{Step: cfg.Physics.DT}

	slog.Info("starting_headless_run",
		"seed", opts.Seed,
		"dt", cfg.Physics.DT,
		"max_ticks", maxTicks,
		"output_dir", g.OutputDir(),
	)

	start := time.Now()
	for maxTicks <= 0 || g.Tick() < maxTicks {
		g.Step(input.Scripted(), clk.Tick())
	}

	pop := g.Population()
	slog.Info("max_ticks_reached",
		"tick", g.Tick(),
		"projectiles", pop.Projectiles,
		"obstacles", pop.Obstacles,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// runWindowed opens a raylib window and steps once per frame.
func runWindowed(cfg *config.Config, opts game.Options, maxTicks int64) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Drift")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Unload()
	g.LogPipeline()

	clk := clock.Func{
		Source: func() float64 { return float64(rl.GetFrameTime()) },
		Max:    cfg.Physics.MaxDT,
	}

	slog.Info("starting_windowed_run",
		"seed", opts.Seed,
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"output_dir", g.OutputDir(),
	)

	for !rl.WindowShouldClose() {
		g.HandleResize()
		g.Step(game.PollInput(), clk.Tick())
		g.Draw()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
	return nil
}
