package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// outage monitor.
type Metrics struct {
	CyclesTotal     prometheus.Counter
	CycleErrors     prometheus.Counter
	ChangesDetected prometheus.Counter
	EmailsSent      prometheus.Counter
	MatchingOutages prometheus.Gauge
	MonitorRunning  prometheus.Gauge

	CycleDuration prometheus.Histogram
	FetchDuration prometheus.Histogram
}

// NewMetrics creates and registers all monitor metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "water_outage",
			Name:      "cycles_total",
			Help:      "Total poll cycles attempted.",
		}),
		CycleErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "water_outage",
			Name:      "cycle_errors_total",
			Help:      "Total poll cycles that failed and were skipped.",
		}),
		ChangesDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "water_outage",
			Name:      "changes_detected_total",
			Help:      "Total cycles whose outage digest differed from the previous cycle.",
		}),
		EmailsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "water_outage",
			Name:      "emails_sent_total",
			Help:      "Total change notification emails delivered.",
		}),
		MatchingOutages: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "water_outage",
			Name:      "matching_outages",
			Help:      "Outages matching the configured filters in the last completed cycle.",
		}),
		MonitorRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "water_outage",
			Name:      "monitor_running",
			Help:      "1 while the poll loop is active, 0 when shut down.",
		}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "water_outage",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of a complete fetch-normalize-fingerprint cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "water_outage",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the ArcGIS feature query.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.CyclesTotal,
		m.CycleErrors,
		m.ChangesDetected,
		m.EmailsSent,
		m.MatchingOutages,
		m.MonitorRunning,
		m.CycleDuration,
		m.FetchDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CyclesTotal:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "water_outage", Name: "cycles_total"}),
		CycleErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "water_outage", Name: "cycle_errors_total"}),
		ChangesDetected: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "water_outage", Name: "changes_detected_total"}),
		EmailsSent:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "water_outage", Name: "emails_sent_total"}),
		MatchingOutages: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "water_outage", Name: "matching_outages"}),
		MonitorRunning:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "water_outage", Name: "monitor_running"}),
		CycleDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "water_outage", Name: "cycle_duration_seconds"}),
		FetchDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "water_outage", Name: "fetch_duration_seconds"}),
	}
}
