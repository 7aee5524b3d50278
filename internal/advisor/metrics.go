package advisor

import "github.com/prometheus/client_golang/prometheus"

// Prometheus advisor metrics.
var (
	questionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clau_questions_total",
			Help: "Total number of questions answered, by category.",
		},
		[]string{"category"},
	)
	upstreamRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clau_upstream_retries_total",
			Help: "Total number of retried upstream generation attempts.",
		},
	)
	upstreamFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clau_upstream_failures_total",
			Help: "Total number of failed generation requests, by error code.",
		},
		[]string{"code"},
	)
)

func init() {
	prometheus.MustRegister(questionsTotal)
	prometheus.MustRegister(upstreamRetriesTotal)
	prometheus.MustRegister(upstreamFailuresTotal)
}
