package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_http_requests_total",
			Help: "Total number of HTTP requests by route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movies_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Store metrics
var (
	StoreQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_store_queries_total",
			Help: "Total number of movie store queries by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	StoreQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movies_store_query_duration_seconds",
			Help:    "Movie store query latency by operation.",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)
)

// Cache metrics
var CacheLookupsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "movies_cache_lookups_total",
		Help: "Response cache lookups by result (hit, miss).",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		StoreQueriesTotal,
		StoreQueryDuration,
		CacheLookupsTotal,
	)
}
