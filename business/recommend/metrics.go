package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Completed recommendations by explanation source and whether a decision was recorded.",
		},
		[]string{"source", "recorded"},
	)

	NoCandidatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_no_candidates_total",
			Help: "Requests whose filtered candidate set was empty.",
		},
	)

	CandidatePoolSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidate_pool_size",
			Help:    "Number of candidates surviving the catalog filter.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 35, 50},
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsTotal, NoCandidatesTotal, CandidatePoolSize)
}
