package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryTickOrder(t *testing.T) {
	reg := NewSystemRegistry()

	assert.Equal(t, []string{
		StageTargeting, StageWeapon, StageMovement, StageSpawn, StageCollision,
		StageLifetime, StageMark, StageSweep, StageFlush, StageRoster,
	}, reg.IDs())
}

func TestRegistryLookup(t *testing.T) {
	reg := NewSystemRegistry()

	info, ok := reg.Get(StageCollision)
	assert.True(t, ok)
	assert.Equal(t, "physics", info.Category)
	_, ok = reg.Get("nope")
	assert.False(t, ok)

	assert.Len(t, reg.ByCategory("lifecycle"), 4)
	assert.Equal(t, []string{"control", "physics", "world", "lifecycle", "report"}, reg.Categories())
}
