package telemetry

import (
	"log/slog"
	"time"
)

// PhaseTelemetry is the window bookkeeping that follows the pipeline stages.
const PhaseTelemetry = "telemetry"

// PerfCollector keeps a ring of per-tick timings split by phase.
// Phases are identified by the IDs passed to StartPhase; IDs given to the
// constructor fix the reporting order and unknown IDs are appended on first use.
type PerfCollector struct {
	phases []string
	index  map[string]int

	ticks  []time.Duration
	spent  [][]time.Duration
	next   int
	filled int

	current    []time.Duration
	active     int
	tickStart  time.Time
	phaseStart time.Time

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks.
func NewPerfCollector(window int, phases []string) *PerfCollector {
	if window < 1 {
		window = 60
	}
	p := &PerfCollector{
		index:  make(map[string]int, len(phases)),
		ticks:  make([]time.Duration, window),
		spent:  make([][]time.Duration, window),
		active: -1,
	}
	for _, id := range phases {
		p.slot(id)
	}
	return p
}

// Phases returns the phase IDs in reporting order.
func (p *PerfCollector) Phases() []string {
	return append([]string(nil), p.phases...)
}

func (p *PerfCollector) slot(id string) int {
	if i, ok := p.index[id]; ok {
		return i
	}
	p.index[id] = len(p.phases)
	p.phases = append(p.phases, id)
	p.current = append(p.current, 0)
	return len(p.phases) - 1
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	clear(p.current)
	p.active = -1
}

// StartPhase closes the running phase, if any, and starts timing id.
func (p *PerfCollector) StartPhase(id string) {
	now := time.Now()
	p.closePhase(now)
	p.active = p.slot(id)
	p.phaseStart = now
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.active >= 0 {
		p.current[p.active] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and stores the tick in the ring.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.active = -1

	p.ticks[p.next] = now.Sub(p.tickStart)
	p.spent[p.next] = append(p.spent[p.next][:0], p.current...)
	p.next = (p.next + 1) % len(p.ticks)
	if p.filled < len(p.ticks) {
		p.filled++
	}
}

// RecordFrame marks a rendered frame; the gap to the previous call is the frame time.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats is the rolling-window summary of a PerfCollector.
type PerfStats struct {
	Phases []string // reporting order

	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	TicksPerSecond  float64

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of the average tick, 0-100

	FrameDuration time.Duration
	FPS           float64
}

// Stats summarizes the samples currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Phases:        p.Phases(),
		PhaseAvg:      make(map[string]time.Duration, len(p.phases)),
		PhasePct:      make(map[string]float64, len(p.phases)),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	sums := make([]time.Duration, len(p.phases))
	for i := 0; i < p.filled; i++ {
		d := p.ticks[i]
		total += d
		if i == 0 || d < s.MinTickDuration {
			s.MinTickDuration = d
		}
		s.MaxTickDuration = max(s.MaxTickDuration, d)
		for j, spent := range p.spent[i] {
			sums[j] += spent
		}
	}

	n := time.Duration(p.filled)
	s.AvgTickDuration = total / n
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	for j, id := range p.phases {
		if sums[j] == 0 {
			continue
		}
		avg := sums[j] / n
		s.PhaseAvg[id] = avg
		if s.AvgTickDuration > 0 {
			s.PhasePct[id] = float64(avg) / float64(s.AvgTickDuration) * 100
		}
	}
	return s
}

// LogStats logs the summary as a "perf" event, skipping phases under 0.1%.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, id := range s.Phases {
		if pct := s.PhasePct[id]; pct > 0.1 {
			attrs = append(attrs, id+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, id := range s.Phases {
		if pct, ok := s.PhasePct[id]; ok {
			attrs = append(attrs, slog.Float64(id+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfRowTick is the phase name of the whole-tick row in perf.csv.
const PerfRowTick = "tick"

// PerfRow is one line of perf.csv. Each window yields a whole-tick row
// followed by one row per phase in reporting order.
type PerfRow struct {
	RunID       string  `csv:"run_id"`
	WindowEnd   int64   `csv:"window_end"`
	Phase       string  `csv:"phase"`
	AvgUS       int64   `csv:"avg_us"`
	MinUS       int64   `csv:"min_us"`
	MaxUS       int64   `csv:"max_us"`
	Pct         float64 `csv:"pct"`
	TicksPerSec float64 `csv:"ticks_per_sec"`
	FPS         float64 `csv:"fps"`
}

// Rows flattens the summary into perf.csv rows.
func (s PerfStats) Rows(runID string, windowEnd int64) []PerfRow {
	rows := make([]PerfRow, 0, len(s.Phases)+1)
	rows = append(rows, PerfRow{
		RunID:       runID,
		WindowEnd:   windowEnd,
		Phase:       PerfRowTick,
		AvgUS:       s.AvgTickDuration.Microseconds(),
		MinUS:       s.MinTickDuration.Microseconds(),
		MaxUS:       s.MaxTickDuration.Microseconds(),
		Pct:         100,
		TicksPerSec: s.TicksPerSecond,
		FPS:         s.FPS,
	})
	for _, id := range s.Phases {
		rows = append(rows, PerfRow{
			RunID:     runID,
			WindowEnd: windowEnd,
			Phase:     id,
			AvgUS:     s.PhaseAvg[id].Microseconds(),
			Pct:       s.PhasePct[id],
		})
	}
	return rows
}
