package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RecordRecord(DirectionWrite, true)
	m.RecordRecord(DirectionWrite, true)
	m.RecordRecord(DirectionWrite, false)
	m.RecordRecord(DirectionRead, true)
	m.RecordSkippedFields(DirectionWrite, 3)
	m.RecordSkippedFields(DirectionWrite, 0)
	m.RecordIgnoredLine()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recordsTotal.WithLabelValues(DirectionWrite, statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsTotal.WithLabelValues(DirectionWrite, statusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsTotal.WithLabelValues(DirectionRead, statusSuccess)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.fieldsSkippedTotal.WithLabelValues(DirectionWrite)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.linesIgnoredTotal))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	first := NewMetrics()
	second := NewMetrics()

	first.RecordRecord(DirectionRead, true)

	assert.Equal(t, 0.0, testutil.ToFloat64(second.recordsTotal.WithLabelValues(DirectionRead, statusSuccess)))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RecordRecord(DirectionRead, true)
	m.ObserveRun(DirectionRead, 1500*time.Millisecond)

	path := filepath.Join(t.TempDir(), "avrotool.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `avrotool_records_total{direction="read",status="success"} 1`)
	assert.Contains(t, string(data), `avrotool_run_duration_seconds{direction="read"} 1.5`)
}

func TestMetrics_WriteTextfileError(t *testing.T) {
	m := NewMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "avrotool.prom"))
	assert.Error(t, err)
}
