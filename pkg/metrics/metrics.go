// Package metrics counts records processed by a run and exports the counts
// in the Prometheus text format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Directions label whether records were decoded from or encoded to a container.
const (
	DirectionRead  = "read"
	DirectionWrite = "write"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus collectors for one run
type Metrics struct {
	registry *prometheus.Registry

	recordsTotal       *prometheus.CounterVec
	fieldsSkippedTotal *prometheus.CounterVec
	linesIgnoredTotal  prometheus.Counter
	runDuration        *prometheus.GaugeVec
}

// NewMetrics creates the collectors on a private registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		recordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "avrotool_records_total",
				Help: "Total number of records processed",
			},
			[]string{"direction", "status"},
		),

		fieldsSkippedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "avrotool_fields_skipped_total",
				Help: "Total number of fields left out because their type is unsupported or their value is missing",
			},
			[]string{"direction"},
		),

		linesIgnoredTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "avrotool_input_lines_ignored_total",
				Help: "Total number of blank input lines ignored by write",
			},
		),

		runDuration: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "avrotool_run_duration_seconds",
				Help: "Wall clock duration of the last run",
			},
			[]string{"direction"},
		),
	}
}

// RecordRecord records one processed record
func (m *Metrics) RecordRecord(direction string, success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.recordsTotal.WithLabelValues(direction, status).Inc()
}

// RecordSkippedFields adds n skipped fields
func (m *Metrics) RecordSkippedFields(direction string, n int) {
	if n <= 0 {
		return
	}
	m.fieldsSkippedTotal.WithLabelValues(direction).Add(float64(n))
}

// RecordIgnoredLine counts a blank input line
func (m *Metrics) RecordIgnoredLine() {
	m.linesIgnoredTotal.Inc()
}

// ObserveRun records the duration of a run
func (m *Metrics) ObserveRun(direction string, duration time.Duration) {
	m.runDuration.WithLabelValues(direction).Set(duration.Seconds())
}

// Gatherer exposes the registry, mainly for tests
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics to path in the node exporter textfile
// format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
