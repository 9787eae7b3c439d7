// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status         string           `json:"status"`
	DataReady      bool             `json:"data_ready"`
	AvailableDates int              `json:"available_dates"`
	Uptime         float64          `json:"uptime_seconds"`
	GeoCache       *GeoCacheSummary `json:"geolocation_cache,omitempty"`
}

// GeoCacheSummary reports the resolved-IP cache counters.
type GeoCacheSummary struct {
	Size      int   `json:"size"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

// Health reports overall status. It always answers 200; a missing data
// directory shows up as status "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status: "healthy",
		Uptime: time.Since(h.startTime).Seconds(),
	}

	if err := h.store.Ready(); err != nil {
		health.Status = "degraded"
		loggerFor(r).Warn().Err(err).Msg("Data directory not ready")
	} else {
		health.DataReady = true
		if dates, err := h.store.AvailableDates(); err == nil {
			health.AvailableDates = len(dates)
		}
	}

	if h.geoStats != nil {
		s := h.geoStats.CacheStats()
		health.GeoCache = &GeoCacheSummary{
			Size:      s.Size,
			Hits:      s.Hits,
			Misses:    s.Misses,
			Evictions: s.Evictions,
		}
	}

	NewResponseWriter(w, r).Success(health)
}

// HealthLive answers 200 while the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 when the data directory can be listed, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ready(); err != nil {
		loggerFor(r).Warn().Err(err).Msg("Readiness check failed")
		NewResponseWriter(w, r).ServiceUnavailable("Data directory unavailable", map[string]interface{}{
			"ready": false,
		})
		return
	}
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"ready": true,
	})
}
