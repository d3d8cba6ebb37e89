package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat endpoint.
type ChatMetrics struct {
	requestsTotal     *prometheus.CounterVec
	completionLatency prometheus.Histogram
	contactTotal      *prometheus.CounterVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total chat requests by outcome",
		}, []string{"outcome"}),
		completionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "chat",
			Name:      "completion_latency_seconds",
			Help:      "Latency of upstream completion calls",
			Buckets:   prometheus.DefBuckets,
		}),
		contactTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Total contact form submissions by status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.completionLatency, m.contactTotal)
	return m
}

// ObserveRequest records a chat request outcome: faq_hit, fallback,
// completion, completion_error, rate_limited, or invalid.
func (m *ChatMetrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

func (m *ChatMetrics) ObserveCompletionLatency(seconds float64) {
	if m == nil {
		return
	}
	m.completionLatency.Observe(seconds)
}

// ObserveContact records a contact submission status: accepted, invalid,
// or failed.
func (m *ChatMetrics) ObserveContact(status string) {
	if m == nil {
		return
	}
	m.contactTotal.WithLabelValues(status).Inc()
}
