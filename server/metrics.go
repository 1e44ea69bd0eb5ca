package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/phantomkit/design"
)

// Metrics holds the Prometheus collectors of one server.
type Metrics struct {
	queries  *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	reloads  *prometheus.CounterVec
	families prometheus.Gauge
	excluded prometheus.Gauge
	samples  prometheus.Gauge
}

// NewMetrics registers collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// queries counts design queries by mode and outcome
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "phantom_design_queries_total",
			Help: "Design queries by mode (auto|family) and outcome (recipe|gap|invalid|error).",
		}, []string{"mode", "outcome"}),

		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "phantom_design_duration_seconds",
			Help:    "Design query latency in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12), // 10µs to ~20ms
		}, []string{"mode"}),

		reloads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "phantom_dataset_reloads_total",
			Help: "Dataset reloads by result (ok|error).",
		}, []string{"result"}),

		families: f.NewGauge(prometheus.GaugeOpts{
			Name: "phantom_dataset_families",
			Help: "Families usable for design in the live snapshot.",
		}),
		excluded: f.NewGauge(prometheus.GaugeOpts{
			Name: "phantom_dataset_excluded_families",
			Help: "Families excluded for failing monotonicity validation.",
		}),
		samples: f.NewGauge(prometheus.GaugeOpts{
			Name: "phantom_dataset_samples",
			Help: "Validated samples in the live snapshot.",
		}),
	}
}

func (m *Metrics) observeSnapshot(d *design.Designer) {
	ex := len(d.Excluded())
	m.families.Set(float64(len(d.Families()) - ex))
	m.excluded.Set(float64(ex))
	m.samples.Set(float64(d.Samples()))
}
