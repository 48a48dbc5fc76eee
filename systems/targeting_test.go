package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/input"
)

func TestAim(t *testing.T) {
	tests := []struct {
		name    string
		player  r3.Vec
		pointer r2.Vec
		want    r3.Vec
		ok      bool
	}{
		{"right", r3.Vec{}, r2.Vec{X: 10}, r3.Vec{X: 1}, true},
		{"up", r3.Vec{X: 5, Y: 5}, r2.Vec{X: 5, Y: 50}, r3.Vec{Y: 1}, true},
		{"ignores layer", r3.Vec{Z: 3}, r2.Vec{X: -2}, r3.Vec{X: -1}, true},
		{"on ship", r3.Vec{X: 1, Y: 1}, r2.Vec{X: 1, Y: 1}, r3.Vec{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Aim(tt.player, tt.pointer)
			require.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
			assert.Zero(t, got.Z)
		})
	}
}

func TestTargetingConvertsPointer(t *testing.T) {
	w := ecs.NewWorld()
	p := newPlayer(w, r3.Vec{}, r3.Vec{Y: 1})
	sys := NewTargetingSystem(w)

	// Screen (50, 40) on a 100x100 view is world (0, 10): straight up
	sys.Update(testFrame(0.1, input.Snapshot{}.WithPointer(50, 40)))
	dir := ecs.NewMap1[components.TargetDirection](w).Get(p)
	assert.InDelta(t, 0, dir.X, 1e-12)
	assert.InDelta(t, 1, dir.Y, 1e-12)

	// Screen (60, 50) is world (10, 0)
	sys.Update(testFrame(0.1, input.Snapshot{}.WithPointer(60, 50)))
	assert.InDelta(t, 1, dir.X, 1e-12)
	assert.InDelta(t, 0, dir.Y, 1e-12)
}

func TestTargetingKeepsAimWithoutPointer(t *testing.T) {
	w := ecs.NewWorld()
	p := newPlayer(w, r3.Vec{}, r3.Vec{X: -1})
	sys := NewTargetingSystem(w)

	sys.Update(testFrame(0.1, input.Snapshot{}))

	dir := ecs.NewMap1[components.TargetDirection](w).Get(p)
	assert.Equal(t, r3.Vec{X: -1}, dir.Vec)
}

func TestTargetingSkipsPointerOnShip(t *testing.T) {
	w := ecs.NewWorld()
	p := newPlayer(w, r3.Vec{X: 10}, r3.Vec{Y: 1})
	sys := NewTargetingSystem(w)

	// World (10, 0) is screen (60, 50)
	sys.Update(testFrame(0.1, input.Snapshot{}.WithPointer(60, 50)))

	dir := ecs.NewMap1[components.TargetDirection](w).Get(p)
	assert.Equal(t, r3.Vec{Y: 1}, dir.Vec)
}

func TestTargetingWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewTargetingSystem(w)

	assert.NotPanics(t, func() {
		sys.Update(testFrame(0.1, input.Snapshot{}.WithPointer(10, 10)))
	})
}
