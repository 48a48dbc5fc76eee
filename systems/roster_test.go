package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/input"
)

func TestRosterFiresOnce(t *testing.T) {
	w := ecs.NewWorld()
	m := ecs.NewMap1[components.Weapon](w)
	m.NewEntity(&components.Weapon{Name: "Railgun"})
	m.NewEntity(&components.Weapon{Name: "Autocannon"})
	sys := NewRosterSystem(w, 2)

	f := testFrame(1, input.Snapshot{})

	names, ok := sys.Update(f)
	assert.False(t, ok)
	assert.Nil(t, names)

	names, ok = sys.Update(f)
	assert.True(t, ok)
	assert.Equal(t, []string{"Autocannon", "Railgun"}, names)
	assert.True(t, sys.Done())

	_, ok = sys.Update(f)
	assert.False(t, ok)
}

func TestRosterDisabled(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewRosterSystem(w, 0)

	assert.True(t, sys.Done())
	_, ok := sys.Update(testFrame(5, input.Snapshot{}))
	assert.False(t, ok)
}

func TestRosterNoWeapons(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewRosterSystem(w, 0.1)

	names, ok := sys.Update(testFrame(1, input.Snapshot{}))
	assert.True(t, ok)
	assert.Empty(t, names)
}
