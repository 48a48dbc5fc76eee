package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/components"
)

// ProjectileSpec describes what a weapon fires.
type ProjectileSpec struct {
	Speed    float64
	Radius   float64
	Lifetime float64
}

// WeaponSystem ticks weapon cooldowns and fires on the primary input.
type WeaponSystem struct {
	filter     *ecs.Filter3[components.Transform, components.Weapon, components.TargetDirection]
	projectile ProjectileSpec
}

// NewWeaponSystem creates a new weapon system.
func NewWeaponSystem(w *ecs.World, projectile ProjectileSpec) *WeaponSystem {
	return &WeaponSystem{
		filter:     ecs.NewFilter3[components.Transform, components.Weapon, components.TargetDirection](w),
		projectile: projectile,
	}
}

// Update decrements every cooldown, then queues at most one shot per ready weapon.
// Returns the number of shots queued.
func (s *WeaponSystem) Update(f *Frame, cmd *Commands) int {
	shots := 0

	query := s.filter.Query()
	for query.Next() {
		tr, weapon, aim := query.Get()

		weapon.Cooldown -= f.DT

		if !f.Input.Fire || !weapon.Ready() {
			continue
		}
		spawn, ok := s.fire(tr, aim.Vec)
		if !ok {
			continue
		}
		cmd.SpawnProjectile(spawn)
		// Overshoot below zero is dropped, no catch-up shots
		weapon.Cooldown = weapon.Period()
		shots++
	}

	return shots
}

// fire builds the projectile for a shot along aim. ok is false for a zero aim.
func (s *WeaponSystem) fire(tr *components.Transform, aim r3.Vec) (ProjectileSpawn, bool) {
	dir, ok := unitPlanar(aim)
	if !ok {
		return ProjectileSpawn{}, false
	}
	return ProjectileSpawn{
		Position: tr.Position,
		Velocity: r3.Scale(s.projectile.Speed, dir),
		Radius:   s.projectile.Radius,
		Lifetime: s.projectile.Lifetime,
	}, true
}
