package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

var (
	PostViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nativeblog",
		Name:      "post_views_total",
		Help:      "Post view increments.",
	})

	LikesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nativeblog",
		Name:      "likes_total",
		Help:      "Like attempts by outcome.",
	}, []string{"result"})

	CommentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nativeblog",
		Name:      "comments_total",
		Help:      "Comment mutations by action.",
	}, []string{"action"})

	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nativeblog",
		Name:      "auth_attempts_total",
		Help:      "Sign-in attempts by account kind and outcome.",
	}, []string{"kind", "result"})

	UploadedBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nativeblog",
		Name:      "upload_bytes",
		Help:      "Size of stored uploads.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 7),
	})

	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nativeblog",
		Name:      "cache_lookups_total",
		Help:      "In-process cache lookups by key and outcome.",
	}, []string{"key", "result"})
)
