package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
)

// markPhase tags every entity named by a collision event or an expired lifetime.
func (g *Game) markPhase() {
	g.lifecycle.MarkEvents(g.events)
	g.collector.RecordExpired(g.lifecycle.MarkAll(g.expired))
}

// sweepPhase removes every tagged entity.
func (g *Game) sweepPhase() {
	g.lifecycle.Sweep(g.onRemove)
}

// onRemove sees each entity just before the sweep removes it.
func (g *Game) onRemove(e ecs.Entity) {
	if kind, ok := g.kindOf(e); ok {
		g.collector.RecordRemoved(kind)
	}
}

// kindOf classifies a live entity by its tag.
func (g *Game) kindOf(e ecs.Entity) (components.Kind, bool) {
	switch {
	case e == g.player:
		return components.KindPlayer, true
	case g.projectileTag.HasAll(e):
		return components.KindProjectile, true
	case g.obstacleTag.HasAll(e):
		return components.KindObstacle, true
	}
	return 0, false
}
