package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pscheid92/reviewpulse/internal/domain"
)

// AnalysisMetrics holds Prometheus metrics for review classification.
type AnalysisMetrics struct {
	AnalysesTotal    *prometheus.CounterVec
	ReviewLength     prometheus.Histogram
	TallyStoreErrors *prometheus.CounterVec
}

func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of reviews classified, by sentiment.",
		}, []string{"sentiment"}),
		ReviewLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "review_length_bytes",
			Help:      "Size of classified reviews in bytes.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
		TallyStoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tally_store",
			Name:      "errors_total",
			Help:      "Total number of tally store failures, by operation.",
		}, []string{"operation"}),
	}

	// Pre-create label values so dashboards show zeros before the first review.
	for _, c := range domain.Classifications() {
		m.AnalysesTotal.WithLabelValues(c.String())
	}

	reg.MustRegister(m.AnalysesTotal, m.ReviewLength, m.TallyStoreErrors)
	return m
}

func (m *AnalysisMetrics) ObserveAnalysis(c domain.Classification, reviewBytes int) {
	m.AnalysesTotal.WithLabelValues(c.String()).Inc()
	m.ReviewLength.Observe(float64(reviewBytes))
}

func (m *AnalysisMetrics) ObserveTallyError(operation string) {
	m.TallyStoreErrors.WithLabelValues(operation).Inc()
}
