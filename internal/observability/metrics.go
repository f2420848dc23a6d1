// Package observability provides prometheus metrics and tracing setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matchday_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// UpstreamRequests counts football-data requests by endpoint and outcome.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matchday_upstream_requests_total",
		Help: "Total number of football-data API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	// UpstreamLatency records football-data request latency by endpoint.
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "matchday_upstream_latency_seconds",
		Help:    "Football-data API request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	// CacheHits counts cache-aside hits and misses by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matchday_cache_requests_total",
		Help: "Cache-aside lookups by key prefix and result",
	}, []string{"prefix", "result"})
)
