// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipematch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipematch_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipematch_match_requests_total",
			Help: "Total number of recipe match requests by outcome",
		},
		[]string{"outcome"}, // "ok", "error"
	)

	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipematch_match_duration_seconds",
			Help:    "Time spent matching and ranking recipes",
			Buckets: prometheus.DefBuckets,
		},
	)

	MatchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipematch_match_results",
			Help:    "Number of recipes returned per match request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	SeededRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipematch_seeded_recipes",
			Help: "Number of recipes inserted by the last catalog seed",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordMatch(duration time.Duration, results int, err error) {
	MatchDuration.Observe(duration.Seconds())
	if err != nil {
		MatchRequestsTotal.WithLabelValues("error").Inc()
		return
	}
	MatchRequestsTotal.WithLabelValues("ok").Inc()
	MatchResults.Observe(float64(results))
}

func SetSeededRecipes(n int) {
	SeededRecipes.Set(float64(n))
}
