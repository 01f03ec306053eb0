package pipeline

import (
	"time"

	"github.com/c360studio/semstreams/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for conversion runs. A nil *Metrics
// records nothing.
type Metrics struct {
	rowsTotal     *prometheus.CounterVec
	entitiesTotal *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
}

// NewMetrics creates run metrics registered with the given registry. It
// returns nil when registry is nil.
func NewMetrics(registry *metric.MetricsRegistry) (*Metrics, error) {
	if registry == nil {
		return nil, nil
	}

	m := &Metrics{
		rowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dwcgraph_pipeline_rows_total",
				Help: "Total number of rows processed, by outcome",
			},
			[]string{"status"},
		),
		entitiesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dwcgraph_pipeline_entities_total",
				Help: "Total number of entities merged into the graph, by kind",
			},
			[]string{"kind"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dwcgraph_pipeline_run_duration_seconds",
				Help:    "Duration of conversion runs",
				Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
			},
			[]string{"component"},
		),
	}

	if err := registry.RegisterCounterVec("pipeline", "rows_total", m.rowsTotal); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("pipeline", "entities_total", m.entitiesTotal); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogramVec("pipeline", "run_duration_seconds", m.runDuration); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) recordRow(status string) {
	if m == nil {
		return
	}
	m.rowsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) recordEntity(kind string) {
	if m == nil {
		return
	}
	m.entitiesTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) observeRun(d time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.WithLabelValues("runner").Observe(d.Seconds())
}
