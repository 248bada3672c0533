// Package metrics exposes performance and section measurements as Prometheus
// collectors. A Metrics value satisfies conductor.Recorder and also serves
// as the sink for metrics logged by the choir section.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/orchestraigo/internal/conductor"
)

const namespace = "orchestraigo"

// Metrics holds the registered collectors.
type Metrics struct {
	sectionResults  *prometheus.CounterVec
	sectionDuration *prometheus.HistogramVec
	performances    *prometheus.CounterVec
	choir           *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sectionResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_results_total",
			Help:      "Sections cued, by section name and outcome.",
		}, []string{"section", "outcome"}),
		sectionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "section_duration_seconds",
			Help:      "Time spent in a section's Perform.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"section"}),
		performances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "performances_total",
			Help:      "Performance passes, labelled by whether any section failed.",
		}, []string{"status"}),
		choir: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "choir_metric",
			Help:      "Latest value of each metric logged by a choir section.",
		}, []string{"section", "key"}),
	}
	reg.MustRegister(m.sectionResults, m.sectionDuration, m.performances, m.choir)
	return m
}

// ObserveSection implements conductor.Recorder.
func (m *Metrics) ObserveSection(name string, outcome conductor.Outcome, d time.Duration) {
	m.sectionResults.WithLabelValues(name, outcome.String()).Inc()
	if outcome != conductor.Skipped {
		m.sectionDuration.WithLabelValues(name).Observe(d.Seconds())
	}
}

// ObservePerformance implements conductor.Recorder.
func (m *Metrics) ObservePerformance(r *conductor.Report) {
	status := "ok"
	if len(r.Failed()) > 0 {
		status = "failed"
	}
	m.performances.WithLabelValues(status).Inc()
}

// SetMetric records a choir metric.
func (m *Metrics) SetMetric(section, key string, value float64) {
	m.choir.WithLabelValues(section, key).Set(value)
}
