package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/input"
)

func newSpawner(w *ecs.World, period float64) *components.SpawnTimer {
	m := ecs.NewMap1[components.SpawnTimer](w)
	e := m.NewEntity(&components.SpawnTimer{Remaining: period, Period: period})
	return m.Get(e)
}

func TestSpawnOncePerPeriod(t *testing.T) {
	w := ecs.NewWorld()
	timer := newSpawner(w, 1.0)
	sys := NewSpawnSystem(w, rand.New(rand.NewSource(1)), 24)

	var cmd Commands
	total := 0
	for i := 0; i < 3; i++ {
		total += sys.Update(testFrame(0.25, input.Snapshot{}), &cmd)
	}
	assert.Equal(t, 0, total, "0.75s of a 1s period")

	total += sys.Update(testFrame(0.25, input.Snapshot{}), &cmd)
	assert.Equal(t, 1, total, "spawns when the period has fully elapsed")
	assert.Equal(t, 1.0, timer.Remaining)
	require.Len(t, cmd.Obstacles, 1)
	assert.Equal(t, 24.0, cmd.Obstacles[0].Radius)
}

func TestSpawnNoCatchUpBurst(t *testing.T) {
	w := ecs.NewWorld()
	timer := newSpawner(w, 1.0)
	sys := NewSpawnSystem(w, rand.New(rand.NewSource(1)), 24)

	var cmd Commands
	spawned := sys.Update(testFrame(3.5, input.Snapshot{}), &cmd)

	assert.Equal(t, 1, spawned)
	assert.Equal(t, 1.0, timer.Remaining)

	spawned = sys.Update(testFrame(0.5, input.Snapshot{}), &cmd)
	assert.Equal(t, 0, spawned)
}

func TestSpawnPositionsInBounds(t *testing.T) {
	w := ecs.NewWorld()
	newSpawner(w, 0.01)
	sys := NewSpawnSystem(w, rand.New(rand.NewSource(7)), 5)

	var cmd Commands
	for i := 0; i < 500; i++ {
		sys.Update(testFrame(0.01, input.Snapshot{}), &cmd)
	}
	require.NotEmpty(t, cmd.Obstacles)

	for _, o := range cmd.Obstacles {
		assert.GreaterOrEqual(t, o.Position.X, -50.0)
		assert.Less(t, o.Position.X, 50.0)
		assert.GreaterOrEqual(t, o.Position.Y, -50.0)
		assert.Less(t, o.Position.Y, 50.0)
		assert.Zero(t, o.Position.Z)
	}
}

func TestSpawnWithoutTimer(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewSpawnSystem(w, rand.New(rand.NewSource(1)), 5)

	var cmd Commands
	assert.Equal(t, 0, sys.Update(testFrame(10, input.Snapshot{}), &cmd))
	assert.Equal(t, 0, cmd.Len())
}

func TestSpawnNonPositivePeriodNeverSpawns(t *testing.T) {
	w := ecs.NewWorld()
	newSpawner(w, 0)
	sys := NewSpawnSystem(w, rand.New(rand.NewSource(1)), 5)

	var cmd Commands
	assert.Equal(t, 0, sys.Update(testFrame(1, input.Snapshot{}), &cmd))
}
