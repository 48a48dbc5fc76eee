package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/camera"
	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/input"
	"github.com/pthm-cable/drift/systems"
	"github.com/pthm-cable/drift/telemetry"
)

// stage is one step of the tick pipeline.
type stage struct {
	id  string
	run func(f *systems.Frame)
}

// Game holds the complete simulation state.
type Game struct {
	cfg    *config.Config
	world  *ecs.World
	rng    *rand.Rand
	camera *camera.Camera

	// Entity mappers
	playerMapper *ecs.Map6[
		components.Transform,
		components.Velocity,
		components.TargetDirection,
		components.Weapon,
		components.Footprint,
		components.Player,
	]
	projectileMapper *ecs.Map5[
		components.Transform,
		components.Velocity,
		components.SpatialProxy,
		components.Footprint,
		components.Projectile,
	]
	obstacleMapper *ecs.Map4[
		components.Transform,
		components.SpatialProxy,
		components.Footprint,
		components.Obstacle,
	]
	spawnerMapper *ecs.Map1[components.SpawnTimer]

	// Individual component mappers for lookups
	lifetimeMap   *ecs.Map1[components.Lifetime]
	projectileTag *ecs.Map1[components.Projectile]
	obstacleTag   *ecs.Map1[components.Obstacle]
	transformMap  *ecs.Map1[components.Transform]

	// Render and census filters
	playerFilter     *ecs.Filter3[components.Transform, components.Footprint, components.Player]
	projectileFilter *ecs.Filter3[components.Transform, components.SpatialProxy, components.Projectile]
	obstacleFilter   *ecs.Filter3[components.Transform, components.SpatialProxy, components.Obstacle]

	// Systems
	targeting *systems.TargetingSystem
	weapon    *systems.WeaponSystem
	movement  *systems.MovementSystem
	spawner   *systems.SpawnSystem
	collision *systems.CollisionSystem
	lifetime  *systems.LifetimeSystem
	lifecycle *systems.LifecycleSystem
	roster    *systems.RosterSystem
	registry  *systems.SystemRegistry

	pipeline []stage

	// Per-tick buffers
	frame    systems.Frame
	commands systems.Commands
	events   []systems.CollisionEvent
	expired  []ecs.Entity

	player ecs.Entity

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	runID         string
	logStats      bool

	tick int64
}

// NewGame creates a new game with a player and an obstacle spawner.
// Returns an error only if the output directory cannot be prepared.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	world := ecs.NewWorld()

	g := &Game{
		cfg:    cfg,
		world:  world,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		camera: camera.New(cfg.Derived.ScreenW, cfg.Derived.ScreenH),
		playerMapper: ecs.NewMap6[
			components.Transform,
			components.Velocity,
			components.TargetDirection,
			components.Weapon,
			components.Footprint,
			components.Player,
		](world),
		projectileMapper: ecs.NewMap5[
			components.Transform,
			components.Velocity,
			components.SpatialProxy,
			components.Footprint,
			components.Projectile,
		](world),
		obstacleMapper: ecs.NewMap4[
			components.Transform,
			components.SpatialProxy,
			components.Footprint,
			components.Obstacle,
		](world),
		spawnerMapper:    ecs.NewMap1[components.SpawnTimer](world),
		lifetimeMap:      ecs.NewMap1[components.Lifetime](world),
		projectileTag:    ecs.NewMap1[components.Projectile](world),
		obstacleTag:      ecs.NewMap1[components.Obstacle](world),
		transformMap:     ecs.NewMap1[components.Transform](world),
		playerFilter:     ecs.NewFilter3[components.Transform, components.Footprint, components.Player](world),
		projectileFilter: ecs.NewFilter3[components.Transform, components.SpatialProxy, components.Projectile](world),
		obstacleFilter:   ecs.NewFilter3[components.Transform, components.SpatialProxy, components.Obstacle](world),
		runID:            opts.RunID,
		logStats:         opts.LogStats,
	}

	g.targeting = systems.NewTargetingSystem(world)
	g.weapon = systems.NewWeaponSystem(world, systems.ProjectileSpec{
		Speed:    cfg.Weapon.BulletSpeed,
		Radius:   projectileRadius(cfg),
		Lifetime: cfg.Weapon.ProjectileLifetime,
	})
	g.movement = systems.NewMovementSystem(world, cfg.Player.Acceleration, cfg.Player.StrafeSpeed)
	g.spawner = systems.NewSpawnSystem(world, g.rng, obstacleRadius(cfg))
	g.collision = systems.NewCollisionSystem(world)
	g.lifetime = systems.NewLifetimeSystem(world)
	g.lifecycle = systems.NewLifecycleSystem(world)
	g.roster = systems.NewRosterSystem(world, cfg.Roster.Delay)
	g.registry = systems.NewSystemRegistry()
	g.pipeline = g.buildPipeline()

	// Telemetry
	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	g.collector = telemetry.NewCollector(statsWindow)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow, append(g.StageIDs(), telemetry.PhaseTelemetry))

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("preparing output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	g.outputManager = om

	g.player = g.SpawnPlayer(0, 0)
	g.SpawnSpawner(cfg.Spawner.Cooldown)

	return g, nil
}

// buildPipeline returns the tick stages in execution order.
func (g *Game) buildPipeline() []stage {
	return []stage{
		{systems.StageTargeting, func(f *systems.Frame) {
			g.targeting.Update(f)
		}},
		{systems.StageWeapon, func(f *systems.Frame) {
			g.collector.RecordShots(g.weapon.Update(f, &g.commands))
		}},
		{systems.StageMovement, func(f *systems.Frame) {
			g.movement.Update(f)
		}},
		{systems.StageSpawn, func(f *systems.Frame) {
			g.collector.RecordSpawns(g.spawner.Update(f, &g.commands))
		}},
		{systems.StageCollision, func(f *systems.Frame) {
			g.events = g.collision.Update(g.events[:0])
			g.collector.RecordCollisions(len(g.events))
		}},
		{systems.StageLifetime, func(f *systems.Frame) {
			g.expired = g.lifetime.Update(f, g.expired[:0])
		}},
		{systems.StageMark, func(f *systems.Frame) {
			g.markPhase()
		}},
		{systems.StageSweep, func(f *systems.Frame) {
			g.sweepPhase()
		}},
		{systems.StageFlush, func(f *systems.Frame) {
			g.flushCommands()
		}},
		{systems.StageRoster, func(f *systems.Frame) {
			if names, ok := g.roster.Update(f); ok {
				logRoster(f.Tick, names)
			}
		}},
	}
}

// Step runs exactly one tick with the given input and elapsed seconds.
// A negative dt is treated as zero.
func (g *Game) Step(in input.Snapshot, dt float64) {
	if dt < 0 {
		dt = 0
	}

	g.perfCollector.StartTick()

	g.frame = systems.Frame{
		Tick:   g.tick,
		DT:     dt,
		Input:  in,
		Camera: g.camera,
	}
	for _, st := range g.pipeline {
		g.perfCollector.StartPhase(st.id)
		st.run(&g.frame)
	}
	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.Advance(dt)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// Resize updates the play-field between ticks.
func (g *Game) Resize(w, h float64) {
	g.camera.Resize(w, h)
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int64 {
	return g.tick
}

// Camera returns the shared viewport.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Player returns the player entity.
func (g *Game) Player() ecs.Entity {
	return g.player
}

// World returns the underlying ECS world.
func (g *Game) World() *ecs.World {
	return g.world
}

// Events returns the collision events of the last tick.
func (g *Game) Events() []systems.CollisionEvent {
	return g.events
}

// OutputDir returns the directory run output is written to, or "" when disabled.
func (g *Game) OutputDir() string {
	return g.outputManager.Dir()
}

// Unload flushes and closes run output. Safe to call more than once.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}

func projectileRadius(cfg *config.Config) float64 {
	fp := components.Footprint{Width: cfg.Weapon.Footprint.Width, Height: cfg.Weapon.Footprint.Height}
	return components.ProxyRadius(fp, 1, cfg.Weapon.FallbackRadius)
}

func obstacleRadius(cfg *config.Config) float64 {
	fp := components.Footprint{Width: cfg.Spawner.Footprint.Width, Height: cfg.Spawner.Footprint.Height}
	return components.ProxyRadius(fp, cfg.Spawner.Scale, cfg.Spawner.FallbackRadius)
}
