// Package input holds the per-tick view of player controls.
package input

import "gonum.org/v1/gonum/spatial/r2"

// Snapshot is a read-only view of pointer and key state for one tick.
// Pointer coordinates are viewport pixels, top-left origin, Y down.
type Snapshot struct {
	Pointer    r2.Vec
	HasPointer bool // false when the pointer is outside the capture area

	Forward  bool
	Backward bool

	StrafeLeft         bool // held
	StrafeRight        bool // held
	StrafeLeftPressed  bool // went down this tick
	StrafeRightPressed bool // went down this tick

	Fire bool
}

// WithPointer returns a copy of s with the pointer set at (x, y).
func (s Snapshot) WithPointer(x, y float64) Snapshot {
	s.Pointer = r2.Vec{X: x, Y: y}
	s.HasPointer = true
	return s
}

// Scripted returns the unattended input: fire held, no pointer, no movement keys.
func Scripted() Snapshot {
	return Snapshot{Fire: true}
}
