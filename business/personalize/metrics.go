package personalize

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeSuccess          = "success"
	outcomeDisabled         = "disabled"
	outcomeTransportError   = "transport_error"
	outcomeTimeout          = "timeout"
	outcomeParseError       = "parse_error"
	outcomeInvalidSelection = "invalid_selection"
	outcomePlanBDropped     = "plan_b_dropped"
)

var (
	OutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "personalization_outcomes_total",
			Help: "Personalization attempts by outcome. Everything except success falls back to deterministic ranking.",
		},
		[]string{"outcome"},
	)

	CallLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "personalization_call_latency_seconds",
		Help:    "Latency of the generative text call",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16},
	})
)

func init() {
	prometheus.MustRegister(OutcomesTotal, CallLatency)
}
