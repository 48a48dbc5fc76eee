package game

import "log/slog"

// logRoster reports the weapon names once, after the roster delay.
func logRoster(tick int64, names []string) {
	slog.Info("weapon_roster", "tick", tick, "count", len(names), "names", names)
}

// LogPipeline logs the tick stages in execution order.
func (g *Game) LogPipeline() {
	for i, st := range g.pipeline {
		info, _ := g.registry.Get(st.id)
		slog.Debug("pipeline_stage",
			"order", i,
			"id", st.id,
			"name", info.Name,
			"category", info.Category,
			"description", info.Description,
		)
	}
	for _, cat := range g.registry.Categories() {
		var ids []string
		for _, info := range g.registry.ByCategory(cat) {
			ids = append(ids, info.ID)
		}
		slog.Debug("pipeline_category", "category", cat, "stages", ids)
	}
}

// StageIDs returns the pipeline stage IDs in execution order.
func (g *Game) StageIDs() []string {
	ids := make([]string, len(g.pipeline))
	for i, st := range g.pipeline {
		ids[i] = st.id
	}
	return ids
}
