package metrics

import "github.com/prometheus/client_golang/prometheus"

// LLM and retrieval Prometheus metrics.
var (
	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinerag",
			Name:      "llm_requests_total",
			Help:      "Total number of chat-completion requests",
		},
		[]string{"provider", "model", "status"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dinerag",
			Name:      "llm_request_duration_seconds",
			Help:      "Chat-completion request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	LLMParseFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dinerag",
			Name:      "llm_parse_failures_total",
			Help:      "Model replies that fell back to the top-ranked candidate",
		},
	)

	RetrievalCandidatesTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dinerag",
			Name:      "retrieval_candidates",
			Help:      "Number of candidates returned by the hybrid ranker",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
	)
)

var llmMetricsRegistered bool

// RegisterLLMMetrics registers Prometheus LLM metrics. Must be called once from main.
func RegisterLLMMetrics() {
	if llmMetricsRegistered {
		return
	}
	prometheus.MustRegister(LLMRequestsTotal)
	prometheus.MustRegister(LLMRequestDuration)
	prometheus.MustRegister(LLMParseFailuresTotal)
	prometheus.MustRegister(RetrievalCandidatesTotal)
	llmMetricsRegistered = true
}
