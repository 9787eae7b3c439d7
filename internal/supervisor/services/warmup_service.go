// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/honeystat/internal/daterange"
	"github.com/tomtom215/honeystat/internal/logging"
	"github.com/tomtom215/honeystat/internal/models"
)

// DateLister lists the snapshot dates on disk, oldest first.
type DateLister interface {
	AvailableDates() ([]string, error)
}

// SnapshotLoader returns one day's snapshot, empty when absent.
type SnapshotLoader interface {
	Load(ctx context.Context, date time.Time) *models.Snapshot
}

// IPResolver resolves a batch of IPs, filling its cache as a side effect.
type IPResolver interface {
	ResolveAll(ctx context.Context, ips []string) map[string]models.Location
}

// GeoWarmupService resolves the top IPs of the newest snapshots once at
// startup so the first dashboard request does not pay for remote lookups.
// It finishes with suture.ErrDoNotRestart; a failure to list the data
// directory is returned as an error and retried with suture's backoff.
type GeoWarmupService struct {
	dates     DateLister
	snapshots SnapshotLoader
	resolver  IPResolver
	days      int
	name      string
}

// NewGeoWarmupService creates the service. days is the number of newest
// snapshot dates to cover.
func NewGeoWarmupService(dates DateLister, snapshots SnapshotLoader, resolver IPResolver, days int) *GeoWarmupService {
	return &GeoWarmupService{
		dates:     dates,
		snapshots: snapshots,
		resolver:  resolver,
		days:      days,
		name:      "geolocation-warmup",
	}
}

// Serve implements suture.Service.
func (s *GeoWarmupService) Serve(ctx context.Context) error {
	if s.days <= 0 {
		return suture.ErrDoNotRestart
	}

	start := time.Now()
	dates, err := s.dates.AvailableDates()
	if err != nil {
		return fmt.Errorf("list snapshot dates: %w", err)
	}
	if len(dates) > s.days {
		dates = dates[len(dates)-s.days:]
	}

	ips := s.collectIPs(ctx, dates)
	if err := ctx.Err(); err != nil {
		return err
	}

	resolved := s.resolver.ResolveAll(ctx, ips)
	if err := ctx.Err(); err != nil {
		return err
	}

	logging.Info().
		Int("days", len(dates)).
		Int("ips", len(resolved)).
		Dur("duration", time.Since(start)).
		Msg("Geolocation cache warmed")
	return suture.ErrDoNotRestart
}

// collectIPs returns the distinct top IPs of dates, newest day first.
func (s *GeoWarmupService) collectIPs(ctx context.Context, dates []string) []string {
	seen := make(map[string]struct{})
	var ips []string
	for i := len(dates) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			return ips
		}
		day, err := daterange.ParseDate(dates[i])
		if err != nil {
			continue
		}
		for _, entry := range s.snapshots.Load(ctx, day).TopIPs {
			if entry.IP == "" {
				continue
			}
			if _, dup := seen[entry.IP]; dup {
				continue
			}
			seen[entry.IP] = struct{}{}
			ips = append(ips, entry.IP)
		}
	}
	return ips
}

// String names the service in suture events.
func (s *GeoWarmupService) String() string {
	return s.name
}
