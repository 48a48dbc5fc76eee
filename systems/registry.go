package systems

// Stage IDs, one per pipeline step.
const (
	StageTargeting = "targeting"
	StageWeapon    = "weapon"
	StageMovement  = "movement"
	StageSpawn     = "spawn"
	StageCollision = "collision"
	StageLifetime  = "lifetime"
	StageMark      = "mark"
	StageSweep     = "sweep"
	StageFlush     = "flush"
	StageRoster    = "roster"
)

// SystemInfo describes a simulation system for logs and perf output.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "control", "physics", "lifecycle")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so logs and the perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry, in tick order.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	// Control
	r.Register(SystemInfo{ID: StageTargeting, Name: "Targeting", Description: "Aims the player at the pointer", Category: "control"})
	r.Register(SystemInfo{ID: StageWeapon, Name: "Weapon", Description: "Ticks cooldowns and fires projectiles", Category: "control"})

	// Physics
	r.Register(SystemInfo{ID: StageMovement, Name: "Movement", Description: "Applies thrust, integrates velocity, wraps the player", Category: "physics"})
	r.Register(SystemInfo{ID: StageSpawn, Name: "Spawn", Description: "Creates obstacles on a timer", Category: "world"})
	r.Register(SystemInfo{ID: StageCollision, Name: "Collision", Description: "Syncs proxies and tests circle pairs", Category: "physics"})
	r.Register(SystemInfo{ID: StageLifetime, Name: "Lifetime", Description: "Expires short-lived projectiles", Category: "lifecycle"})

	// Life cycle
	r.Register(SystemInfo{ID: StageMark, Name: "Mark", Description: "Tags collided and expired entities", Category: "lifecycle"})
	r.Register(SystemInfo{ID: StageSweep, Name: "Sweep", Description: "Removes tagged entities", Category: "lifecycle"})
	r.Register(SystemInfo{ID: StageFlush, Name: "Flush", Description: "Creates entities queued this tick", Category: "lifecycle"})

	// Reporting
	r.Register(SystemInfo{ID: StageRoster, Name: "Roster", Description: "Lists weapons once after startup", Category: "report"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// ByCategory returns systems filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// Categories returns all unique categories.
func (r *SystemRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, info := range r.systems {
		if !seen[info.Category] {
			seen[info.Category] = true
			cats = append(cats, info.Category)
		}
	}
	return cats
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
