package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	CacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_cache_hits_total",
			Help: "Total number of Redis cache hits",
		},
		[]string{"cache"},
	)
	CacheMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_cache_misses_total",
			Help: "Total number of Redis cache misses",
		},
		[]string{"cache"},
	)
	MongoOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_operation_duration_seconds",
			Help:    "MongoDB operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)
	MongoErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_errors_total",
			Help: "Total number of MongoDB operation errors",
		},
		[]string{"operation", "collection"},
	)
	RedisOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	RedisErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_errors_total",
			Help: "Total number of Redis operation errors",
		},
		[]string{"operation"},
	)
	MediaRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_upstream_requests_total",
			Help: "Media catalog lookups by outcome",
		},
		[]string{"outcome"},
	)
	MediaRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_upstream_request_duration_seconds",
			Help:    "Media catalog lookup duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
	ListingsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listings_search_results",
			Help:    "Number of listings returned per search",
			Buckets: []float64{0, 1, 3, 10, 25, 50},
		},
		[]string{"mode"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(CacheHitsTotal)
		prometheus.MustRegister(CacheMissesTotal)
		prometheus.MustRegister(MongoOperationDuration)
		prometheus.MustRegister(MongoErrorsTotal)
		prometheus.MustRegister(RedisOperationDuration)
		prometheus.MustRegister(RedisErrorsTotal)
		prometheus.MustRegister(MediaRequestsTotal)
		prometheus.MustRegister(MediaRequestDuration)
		prometheus.MustRegister(ListingsReturned)
	})
}
