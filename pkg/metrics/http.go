package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the POST /recommend handler, including personalization
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Requests by route and final status code
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"route", "status"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		HTTPRequests,
	)
}
