// Package metrics records what an analysis computed, in Prometheus form.
//
// The tools are short-lived, so metrics aren't served over HTTP. Instead they
// can be written to a file in the text exposition format, as consumed by the
// textfile collector of the node exporter.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"honnef.co/go/pathlen"
)

// Recorder holds the metrics of one run. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	lengths   prometheus.Counter
	segments  prometheus.Counter
	duration  *prometheus.HistogramVec
	final     prometheus.Gauge
	reference prometheus.Gauge
	reports   *prometheus.CounterVec
}

// New returns a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		lengths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathlen_lengths_computed_total",
			Help: "Number of arc lengths computed.",
		}),
		segments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathlen_segments_integrated_total",
			Help: "Total number of segments integrated over.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathlen_compute_duration_seconds",
			Help:    "Time spent computing lengths, by operation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op"}),
		final: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathlen_final_length",
			Help: "Arc length used for the travel time estimate.",
		}),
		reference: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathlen_reference_length",
			Help: "Gauss-Legendre reference arc length.",
		}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pathlen_reports_total",
			Help: "Reports written, by report and outcome.",
		}, []string{"report", "outcome"}),
	}
	r.registry.MustRegister(r.lengths, r.segments, r.duration, r.final, r.reference, r.reports)
	return r
}

// Registry returns the registry the metrics are registered with.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Length computes iv.Length(n) and records it.
func (r *Recorder) Length(iv pathlen.Interval, n int) float64 {
	start := time.Now()
	l := iv.Length(n)
	r.observe("length", time.Since(start), n)
	return l
}

// Converge runs [pathlen.Converge] and records every row.
func (r *Recorder) Converge(iv pathlen.Interval, counts []int) pathlen.ConvergenceTable {
	start := time.Now()
	table := pathlen.Converge(iv, counts)
	r.observe("converge", time.Since(start), counts...)
	return table
}

func (r *Recorder) observe(op string, d time.Duration, counts ...int) {
	if r == nil {
		return
	}
	for _, n := range counts {
		r.lengths.Inc()
		r.segments.Add(float64(max(n, 0)))
	}
	r.duration.WithLabelValues(op).Observe(d.Seconds())
}

// SetFinal records the final and reference lengths.
func (r *Recorder) SetFinal(final, reference float64) {
	if r == nil {
		return
	}
	r.final.Set(final)
	r.reference.Set(reference)
}

// Report records the outcome of writing a report.
func (r *Recorder) Report(name string, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.reports.WithLabelValues(name, outcome).Inc()
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
