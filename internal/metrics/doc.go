// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package metrics registers Honeystat's Prometheus collectors.

Collectors are created with promauto on the default registry and exported by
the /metrics route:

	curl http://localhost:5000/metrics

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Aggregation:
  - aggregation_duration_seconds, aggregation_range_days, aggregation_sessions
  - aggregation_errors_total{reason}
  - session_timestamps_unparsable_total

Snapshots:
  - snapshot_loads_total{result} (loaded, missing, corrupt)
  - snapshot_load_duration_seconds

Geolocation:
  - geolocation_lookups_total{source,result}
  - geolocation_lookup_duration_seconds{source}
  - geolocation_inflight_deduplicated_total
  - cache_hits_total, cache_misses_total, cache_entries, cache_evictions_total
    with cache_type="geolocation"
  - circuit_breaker_* for the remote lookup breaker
*/
package metrics
