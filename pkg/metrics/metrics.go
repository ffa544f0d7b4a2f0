package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, endpoint and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestDuration observes HTTP request latency by method, endpoint
	// and status.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// CacheHitsTotal counts insight cache hits by view.
	CacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_cache_hits_total",
			Help: "Total number of insight cache hits",
		},
		[]string{"view"},
	)

	// CacheMissesTotal counts insight cache misses by view.
	CacheMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_cache_misses_total",
			Help: "Total number of insight cache misses",
		},
		[]string{"view"},
	)

	// RedisOperationDuration observes Redis operation latency by operation.
	RedisOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// RedisErrorsTotal counts Redis errors by operation.
	RedisErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_errors_total",
			Help: "Total number of Redis errors",
		},
		[]string{"operation"},
	)

	// MongoOperationDuration observes MongoDB operation latency by operation
	// and collection.
	MongoOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_operation_duration_seconds",
			Help:    "MongoDB operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	// MongoErrorsTotal counts MongoDB errors by operation and collection.
	MongoErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_errors_total",
			Help: "Total number of MongoDB errors",
		},
		[]string{"operation", "collection"},
	)

	// DatasetRowsLoaded reports the number of listings loaded from the
	// housing dataset at startup.
	DatasetRowsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows_loaded",
			Help: "Number of listings loaded from the housing dataset",
		},
	)

	// DatasetRowsSkipped reports the number of malformed dataset rows that
	// were skipped during loading.
	DatasetRowsSkipped = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows_skipped",
			Help: "Number of malformed dataset rows skipped during loading",
		},
	)

	// DatasetLoadDuration observes how long loading the housing dataset took.
	DatasetLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Housing dataset load duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RateLimitRejectionsTotal counts requests rejected by the rate limiter.
	RateLimitRejectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Init registers all metrics with the default Prometheus registry.
func Init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(RedisOperationDuration)
	prometheus.MustRegister(RedisErrorsTotal)
	prometheus.MustRegister(MongoOperationDuration)
	prometheus.MustRegister(MongoErrorsTotal)
	prometheus.MustRegister(DatasetRowsLoaded)
	prometheus.MustRegister(DatasetRowsSkipped)
	prometheus.MustRegister(DatasetLoadDuration)
	prometheus.MustRegister(RateLimitRejectionsTotal)
}
