package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors updated by a batch run.
type Metrics struct {
	// Pairs counts computed tree pairs.
	Pairs prometheus.Counter
	// Errors counts failed pair computations.
	Errors prometheus.Counter
	// Distance observes each computed distance.
	Distance prometheus.Histogram
	// Duration observes the wall time of whole runs.
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Pairs: f.NewCounter(prometheus.CounterOpts{
			Name: "rnashape_batch_pairs_total",
			Help: "Tree pairs whose edit distance was computed",
		}),
		Errors: f.NewCounter(prometheus.CounterOpts{
			Name: "rnashape_batch_errors_total",
			Help: "Tree pairs whose edit distance failed",
		}),
		Distance: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rnashape_batch_distance",
			Help:    "Computed tree edit distances",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rnashape_batch_run_duration_seconds",
			Help:    "Wall time of pairwise distance runs",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4min
		}),
	}
}
