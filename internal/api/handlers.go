// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package api

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeystat/internal/cache"
	"github.com/tomtom215/honeystat/internal/models"
)

// Aggregator builds a report for an inclusive YYYYMMDD range.
type Aggregator interface {
	Aggregate(ctx context.Context, start, end string) (*models.Report, error)
}

// SnapshotStore is the read side of the snapshot directory.
type SnapshotStore interface {
	LoadStatic() (json.RawMessage, error)
	AvailableDates() ([]string, error)
	FindSession(ctx context.Context, id, date string) (*models.SessionLookup, error)
	Ready() error
}

// CacheStatsProvider exposes geolocation cache counters for the health report.
type CacheStatsProvider interface {
	CacheStats() cache.Stats
}

// Handler serves the dashboard and health endpoints.
type Handler struct {
	engine    Aggregator
	store     SnapshotStore
	geoStats  CacheStatsProvider
	startTime time.Time
}

// NewHandler wires the handler. geoStats may be nil.
func NewHandler(engine Aggregator, store SnapshotStore, geoStats CacheStatsProvider) *Handler {
	return &Handler{
		engine:    engine,
		store:     store,
		geoStats:  geoStats,
		startTime: time.Now(),
	}
}
