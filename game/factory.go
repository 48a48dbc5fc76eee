package game

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/systems"
)

// SpawnPlayer creates the ship at (x, y), aimed along +Y, armed from config.
func (g *Game) SpawnPlayer(x, y float64) ecs.Entity {
	cfg := g.cfg

	tr := components.Transform{Position: r3.Vec{X: x, Y: y}, Scale: cfg.Player.Scale}
	vel := components.Velocity{}
	aim := components.TargetDirection{Vec: r3.Vec{Y: 1}}
	weapon := components.Weapon{Name: cfg.Weapon.Name, RateOfFire: cfg.Weapon.RateOfFire}
	fp := components.Footprint{Width: cfg.Player.Footprint.Width, Height: cfg.Player.Footprint.Height}

	return g.playerMapper.NewEntity(&tr, &vel, &aim, &weapon, &fp, &components.Player{})
}

// SpawnSpawner creates an obstacle spawner with the given period.
// The first obstacle appears one full period after startup.
func (g *Game) SpawnSpawner(period float64) ecs.Entity {
	return g.spawnerMapper.NewEntity(&components.SpawnTimer{Remaining: period, Period: period})
}

// SpawnProjectile creates a projectile immediately.
func (g *Game) SpawnProjectile(p systems.ProjectileSpawn) ecs.Entity {
	cfg := g.cfg

	tr := components.Transform{Position: p.Position, Rotation: systems.HeadingFor(p.Velocity), Scale: 1}
	vel := components.Velocity{Vec: p.Velocity}
	proxy := components.SpatialProxy{Center: r2.Vec{X: p.Position.X, Y: p.Position.Y}, Radius: p.Radius}
	fp := components.Footprint{Width: cfg.Weapon.Footprint.Width, Height: cfg.Weapon.Footprint.Height}

	e := g.projectileMapper.NewEntity(&tr, &vel, &proxy, &fp, &components.Projectile{})
	if p.Lifetime > 0 {
		g.lifetimeMap.Add(e, &components.Lifetime{Remaining: p.Lifetime})
	}
	return e
}

// SpawnObstacle creates an obstacle immediately.
func (g *Game) SpawnObstacle(o systems.ObstacleSpawn) ecs.Entity {
	cfg := g.cfg

	tr := components.Transform{Position: o.Position, Scale: cfg.Spawner.Scale}
	proxy := components.SpatialProxy{Center: r2.Vec{X: o.Position.X, Y: o.Position.Y}, Radius: o.Radius}
	fp := components.Footprint{Width: cfg.Spawner.Footprint.Width, Height: cfg.Spawner.Footprint.Height}

	return g.obstacleMapper.NewEntity(&tr, &proxy, &fp, &components.Obstacle{})
}

// flushCommands creates every entity queued during the tick.
// Runs after the sweep so new entities are never observed mid-tick.
func (g *Game) flushCommands() {
	for _, p := range g.commands.Projectiles {
		g.SpawnProjectile(p)
	}
	for _, o := range g.commands.Obstacles {
		g.SpawnObstacle(o)
	}
	g.commands.Reset()
}
