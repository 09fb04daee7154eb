// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogwave_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// PostViews counts view-counter increments by source (detail read or explicit ping).
	PostViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogwave_post_views_total",
		Help: "Total number of post view increments",
	}, []string{"source"})

	// CommentModerations counts moderation transitions by resulting status.
	CommentModerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogwave_comment_moderations_total",
		Help: "Total number of comment moderation transitions by new status",
	}, []string{"status"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blogwave_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
