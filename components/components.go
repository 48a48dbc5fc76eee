// Package components defines ECS components for the simulation.
package components

// Kind identifies what an entity is for counting and drawing.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindProjectile
	KindObstacle
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Player tag component for the controlled ship.
type Player struct{}

// Projectile tag component for fired shots.
type Projectile struct{}

// Obstacle tag component for spawned obstacles.
type Obstacle struct{}

// Weapon gates firing by a rate-of-fire cooldown.
type Weapon struct {
	Name       string
	RateOfFire float64 // shots per second
	Cooldown   float64 // seconds until the next shot, may dip below zero by one tick
}

// Ready reports whether the weapon may fire this tick.
// A non-positive rate of fire is never ready.
func (w *Weapon) Ready() bool {
	return w.RateOfFire > 0 && w.Cooldown <= 0
}

// Period returns the seconds between shots.
func (w *Weapon) Period() float64 {
	if w.RateOfFire <= 0 {
		return 0
	}
	return 1.0 / w.RateOfFire
}

// SpawnTimer counts down to the next obstacle.
type SpawnTimer struct {
	Remaining float64
	Period    float64
}

// Lifetime expires an entity after Remaining seconds.
type Lifetime struct {
	Remaining float64
}

// DestroyedMark tags an entity for removal at the end of the tick.
type DestroyedMark struct{}
