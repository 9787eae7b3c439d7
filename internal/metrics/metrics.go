// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Snapshot load results.
const (
	SnapshotLoaded  = "loaded"
	SnapshotMissing = "missing"
	SnapshotCorrupt = "corrupt"
)

// Geolocation lookup sources.
const (
	GeoSourcePrivate  = "private"
	GeoSourceStatic   = "static"
	GeoSourceFallback = "fallback"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Aggregation Metrics
	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Time to aggregate a date range into a report",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	AggregationRangeDays = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_range_days",
			Help:    "Number of calendar days covered by an aggregation request",
			Buckets: []float64{1, 2, 7, 14, 31, 90, 180, 366},
		},
	)

	AggregationSessions = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_sessions",
			Help:    "Number of sessions merged into a single report",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	AggregationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregation_errors_total",
			Help: "Aggregations rejected before any snapshot was read",
		},
		[]string{"reason"}, // "invalid_date_range", "canceled"
	)

	TimestampsUnparsable = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_timestamps_unparsable_total",
			Help: "Sessions skipped by attack timing because their timestamp could not be parsed",
		},
	)

	// Snapshot Metrics
	SnapshotLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_loads_total",
			Help: "Daily snapshot load attempts by result",
		},
		[]string{"result"}, // "loaded", "missing", "corrupt"
	)

	SnapshotLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_load_duration_seconds",
			Help:    "Time to read and decode one daily snapshot",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Geolocation Metrics
	GeolocationLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolocation_lookups_total",
			Help: "Geolocation resolutions that missed the cache, by source and result",
		},
		[]string{"source", "result"}, // source: private, static, maxmind, ipapi, fallback
	)

	GeolocationLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geolocation_lookup_duration_seconds",
			Help:    "Duration of external geolocation lookups",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	GeolocationDeduplicated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geolocation_inflight_deduplicated_total",
			Help: "Lookups that joined an in-flight resolution of the same IP",
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of LRU evictions",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAggregation records a completed aggregation.
func RecordAggregation(duration time.Duration, days, sessions int) {
	AggregationDuration.Observe(duration.Seconds())
	AggregationRangeDays.Observe(float64(days))
	AggregationSessions.Observe(float64(sessions))
}

// RecordSnapshotLoad records one daily snapshot read.
func RecordSnapshotLoad(result string, duration time.Duration) {
	SnapshotLoads.WithLabelValues(result).Inc()
	if result != SnapshotMissing {
		SnapshotLoadDuration.Observe(duration.Seconds())
	}
}

// RecordGeolocationLookup records a cache-miss resolution. duration is only
// observed for external sources.
func RecordGeolocationLookup(source string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	GeolocationLookups.WithLabelValues(source, result).Inc()
	switch source {
	case GeoSourcePrivate, GeoSourceStatic, GeoSourceFallback:
	default:
		GeolocationLookupDuration.WithLabelValues(source).Observe(duration.Seconds())
	}
}

// RecordCacheAccess records a hit or miss for cacheType.
func RecordCacheAccess(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}
