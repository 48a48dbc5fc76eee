package telemetry

import (
	"slices"
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10, nil)

	// Simulate a few ticks
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("collision")
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase("movement")
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Verify we got timing data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}

	// Verify phases are tracked
	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg["collision"]; !ok {
		t.Error("expected collision phase to be tracked")
	}

	if _, ok := stats.PhaseAvg["movement"]; !ok {
		t.Error("expected movement phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5, nil) // Small window

	// Fill window completely
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase("collision")
		pc.EndTick()
	}

	stats := pc.Stats()

	// Should have data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}

	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10, nil)

	// Simulate with uneven phase durations
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	fastPct := stats.PhasePct["fast"]
	slowPct := stats.PhasePct["slow"]

	// Slow phase should take more % than fast
	if slowPct <= fastPct {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", slowPct, fastPct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10, nil)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}

	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}

	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10, nil)

	// First call establishes baseline
	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond) // ~60fps frame time
	// Second call measures duration
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}

	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}

	// With 16ms frames, expect ~60 FPS (allow range 40-80)
	if stats.FPS < 40 || stats.FPS > 80 {
		t.Errorf("expected FPS between 40-80 with 16ms frame time, got %v", stats.FPS)
	}
}

func TestPerfCollector_PhaseOrder(t *testing.T) {
	pc := NewPerfCollector(4, []string{"targeting", "collision", PhaseTelemetry})

	pc.StartTick()
	pc.StartPhase("late")
	pc.StartPhase("collision")
	pc.EndTick()

	want := []string{"targeting", "collision", PhaseTelemetry, "late"}
	if got := pc.Phases(); !slices.Equal(got, want) {
		t.Errorf("Phases() = %v, want %v", got, want)
	}
	if got := pc.Stats().Phases; !slices.Equal(got, want) {
		t.Errorf("Stats().Phases = %v, want %v", got, want)
	}
}

func TestPerfStats_Rows(t *testing.T) {
	stats := PerfStats{
		Phases:          []string{"collision", "sweep"},
		AvgTickDuration: 250 * time.Microsecond,
		PhaseAvg:        map[string]time.Duration{"collision": 150 * time.Microsecond},
		PhasePct:        map[string]float64{"collision": 60},
	}

	rows := stats.Rows("run-1", 600)

	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	for _, r := range rows {
		if r.RunID != "run-1" || r.WindowEnd != 600 {
			t.Errorf("unexpected identity columns: %+v", r)
		}
	}
	if rows[0].Phase != PerfRowTick || rows[0].AvgUS != 250 || rows[0].Pct != 100 {
		t.Errorf("unexpected tick row: %+v", rows[0])
	}
	if rows[1].Phase != "collision" || rows[1].AvgUS != 150 || rows[1].Pct != 60 {
		t.Errorf("unexpected collision row: %+v", rows[1])
	}
	if rows[2].Phase != "sweep" || rows[2].Pct != 0 {
		t.Errorf("unexpected sweep row: %+v", rows[2])
	}
}
