package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/drift/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	// A nil manager swallows writes
	assert.NoError(t, om.WriteTelemetry(WindowStats{}))
	assert.NoError(t, om.WritePerf(PerfStats{}, "", 0))
	assert.NoError(t, om.Close())
	assert.Equal(t, "", om.Dir())
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteTelemetry(WindowStats{RunID: "r", WindowEndTick: 10, ShotsFired: 3}))
	require.NoError(t, om.WriteTelemetry(WindowStats{RunID: "r", WindowEndTick: 20, Collisions: 1}))
	require.NoError(t, om.WritePerf(PerfStats{Phases: []string{"collision"}}, "r", 10))
	require.NoError(t, om.WritePerf(PerfStats{Phases: []string{"collision"}}, "r", 20))
	require.NoError(t, om.Close())

	f, err := os.Open(filepath.Join(dir, "telemetry.csv"))
	require.NoError(t, err)
	defer f.Close()

	var rows []WindowStats
	require.NoError(t, gocsv.UnmarshalFile(f, &rows))
	require.Len(t, rows, 2, "header is written once")
	assert.Equal(t, int64(10), rows[0].WindowEndTick)
	assert.Equal(t, 3, rows[0].ShotsFired)
	assert.Equal(t, 1, rows[1].Collisions)

	pf, err := os.Open(filepath.Join(dir, "perf.csv"))
	require.NoError(t, err)
	defer pf.Close()

	var perf []PerfRow
	require.NoError(t, gocsv.UnmarshalFile(pf, &perf))
	require.Len(t, perf, 4)
	assert.Equal(t, PerfRowTick, perf[0].Phase)
	assert.Equal(t, "collision", perf[1].Phase)
	assert.Equal(t, int64(20), perf[3].WindowEnd)
}

func TestOutputManagerWriteConfig(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	om, err := NewOutputManager(t.TempDir())
	require.NoError(t, err)
	defer om.Close()

	require.NoError(t, om.WriteConfig(cfg))

	back, err := config.Load(filepath.Join(om.Dir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, cfg.Derived.Fingerprint, back.Derived.Fingerprint)
}
