package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/components"
)

// MovementSystem steers the player and integrates every velocity.
type MovementSystem struct {
	players *ecs.Filter4[components.Transform, components.Velocity, components.TargetDirection, components.Player]
	movers  *ecs.Filter2[components.Transform, components.Velocity]

	acceleration float64
	strafeSpeed  float64
}

// NewMovementSystem creates a new movement system.
func NewMovementSystem(w *ecs.World, acceleration, strafeSpeed float64) *MovementSystem {
	return &MovementSystem{
		players:      ecs.NewFilter4[components.Transform, components.Velocity, components.TargetDirection, components.Player](w),
		movers:       ecs.NewFilter2[components.Transform, components.Velocity](w),
		acceleration: acceleration,
		strafeSpeed:  strafeSpeed,
	}
}

// Update runs player steering, integration, then player screen-wrap.
func (s *MovementSystem) Update(f *Frame) {
	s.steer(f)
	s.integrate(f.DT)
	s.wrap(f)
}

// steer turns the ship toward its aim and applies thrust and strafe input.
func (s *MovementSystem) steer(f *Frame) {
	in := f.Input

	query := s.players.Query()
	for query.Next() {
		tr, vel, aim, _ := query.Get()

		dir, ok := unitPlanar(aim.Vec)
		if !ok {
			continue
		}
		tr.Rotation = HeadingFor(dir)

		thrust := r3.Scale(s.acceleration*f.DT, dir)
		if in.Forward {
			vel.Vec = r3.Add(vel.Vec, thrust)
		}
		if in.Backward {
			vel.Vec = r3.Sub(vel.Vec, thrust)
		}

		// Strafe is an impulse on the press edge, not a held force
		if in.StrafeLeftPressed {
			vel.Vec = r3.Add(vel.Vec, StrafeImpulse(dir, true, s.strafeSpeed))
		}
		if in.StrafeRightPressed {
			vel.Vec = r3.Add(vel.Vec, StrafeImpulse(dir, false, s.strafeSpeed))
		}
	}
}

// integrate applies position += velocity * dt to every moving entity.
func (s *MovementSystem) integrate(dt float64) {
	query := s.movers.Query()
	for query.Next() {
		tr, vel := query.Get()
		Integrate(tr, vel.Vec, dt)
	}
}

// wrap teleports players that left the play-field to the opposite edge.
func (s *MovementSystem) wrap(f *Frame) {
	hw, hh := f.Camera.HalfExtents()

	query := s.players.Query()
	for query.Next() {
		tr, _, _, _ := query.Get()
		if f.Camera.Contains(r2.Vec{X: tr.Position.X, Y: tr.Position.Y}) {
			continue
		}
		tr.Position = Wrap(tr.Position, hw, hh)
	}
}

// Integrate advances a transform by velocity over dt.
func Integrate(tr *components.Transform, vel r3.Vec, dt float64) {
	tr.Position = r3.Add(tr.Position, r3.Scale(dt, vel))
}

// StrafeImpulse returns the sideways velocity change for a strafe press.
// Left is the forward vector turned a quarter turn counter-clockwise.
func StrafeImpulse(forward r3.Vec, left bool, speed float64) r3.Vec {
	angle := -math.Pi / 2
	if left {
		angle = math.Pi / 2
	}
	return r3.Scale(speed, r3.Rotate(forward, angle, zAxis))
}

// Wrap maps a position into the half-open play-field [-hw, hw) x [-hh, hh).
// A coordinate on the upper bound wraps; one on the lower bound stays.
func Wrap(p r3.Vec, hw, hh float64) r3.Vec {
	p.X = wrapAxis(p.X, hw)
	p.Y = wrapAxis(p.Y, hh)
	return p
}

func wrapAxis(v, half float64) float64 {
	if half <= 0 || (v >= -half && v < half) {
		return v
	}
	extent := 2 * half
	v = math.Mod(v+half, extent)
	if v < 0 {
		v += extent
	}
	if v >= extent {
		v = 0
	}
	return v - half
}
