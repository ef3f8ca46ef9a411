package utils

import (
	"time"

	"homeinsight-listings/pkg/metrics"
)

func RecordMongoOperationDuration(operation, collection string, start time.Time) {
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues(operation, collection).Observe(duration)
}

func RecordMongoError(operation, collection string) {
	metrics.MongoErrorsTotal.WithLabelValues(operation, collection).Inc()
}

func RecordCacheLookup(cache string, hit bool) {
	if hit {
		metrics.CacheHitsTotal.WithLabelValues(cache).Inc()
		return
	}
	metrics.CacheMissesTotal.WithLabelValues(cache).Inc()
}
