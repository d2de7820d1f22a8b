package trepw

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects the counters of a conversion run.
type Metrics struct {
	registry *prometheus.Registry

	FilesConverted    prometheus.Counter
	FilesFailed       prometheus.Counter
	Records           prometheus.Counter
	PvSubstitutions   prometheus.Counter
	KtFallbacks       prometheus.Counter
	SkyCoverFallbacks prometheus.Counter
	ConvertDuration   prometheus.Histogram
}

// NewMetrics creates the counters on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FilesConverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trepw",
			Name:      "files_converted_total",
			Help:      "Input files converted to EPW",
		}),
		FilesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trepw",
			Name:      "files_failed_total",
			Help:      "Input files that could not be converted",
		}),
		Records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trepw",
			Name:      "records_total",
			Help:      "Hourly records read, leap days excluded",
		}),
		PvSubstitutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trepw",
			Name:      "pv_substitutions_total",
			Help:      "Vapor pressures below the validity threshold replaced in the dew point",
		}),
		KtFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trepw",
			Name:      "kt_fallbacks_total",
			Help:      "Clearness indexes set to the fallback value after interpolation",
		}),
		SkyCoverFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trepw",
			Name:      "sky_cover_fallbacks_total",
			Help:      "Sky covers set to the fallback value for lack of a usable root",
		}),
		ConvertDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "trepw",
			Name:      "convert_duration_seconds",
			Help:      "Time to convert one file",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.FilesConverted,
		m.FilesFailed,
		m.Records,
		m.PvSubstitutions,
		m.KtFallbacks,
		m.SkyCoverFallbacks,
		m.ConvertDuration,
	)
	return m
}

// ObserveFile records a converted file.
func (m *Metrics) ObserveFile(diag Diagnostics, elapsed time.Duration) {
	m.FilesConverted.Inc()
	m.Records.Add(float64(diag.Records))
	m.PvSubstitutions.Add(float64(diag.PvSubstitutions))
	m.KtFallbacks.Add(float64(diag.KtFallbacks))
	m.SkyCoverFallbacks.Add(float64(diag.SkyCoverFallback))
	m.ConvertDuration.Observe(elapsed.Seconds())
}

// WriteToTextfile writes the counters in the Prometheus text format (node_exporter textfile collector).
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
