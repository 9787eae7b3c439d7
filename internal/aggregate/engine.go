// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package aggregate

import (
	"context"
	"time"

	"github.com/tomtom215/honeystat/internal/daterange"
	"github.com/tomtom215/honeystat/internal/logging"
	"github.com/tomtom215/honeystat/internal/metrics"
	"github.com/tomtom215/honeystat/internal/models"
)

// SnapshotSource loads one day of activity. Missing or unreadable days must
// come back as an empty snapshot, never nil.
type SnapshotSource interface {
	Load(ctx context.Context, date time.Time) *models.Snapshot
}

// LocationResolver resolves a batch of addresses. It must return an entry
// for every address it is given.
type LocationResolver interface {
	ResolveAll(ctx context.Context, ips []string) map[string]models.Location
}

// Engine merges daily snapshots into a Report.
type Engine struct {
	snapshots SnapshotSource
	resolver  LocationResolver
	maxDays   int
}

// NewEngine creates an engine reading from snapshots and enriching IPs via resolver.
func NewEngine(snapshots SnapshotSource, resolver LocationResolver) *Engine {
	return &Engine{snapshots: snapshots, resolver: resolver}
}

// SetMaxDays caps the number of days one Aggregate call may span. Zero,
// the default, leaves the span unlimited. Call before serving requests.
func (e *Engine) SetMaxDays(n int) {
	e.maxDays = n
}

// Aggregate builds the report for the inclusive YYYYMMDD range [start, end].
//
// Only a malformed date or a range wider than the SetMaxDays cap
// (models.ErrInvalidDateRange) or a canceled context fails the call.
// Missing and corrupt days contribute zero.
func (e *Engine) Aggregate(ctx context.Context, start, end string) (*models.Report, error) {
	began := time.Now()
	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}
	log := logging.Ctx(ctx)

	from, to, err := daterange.ParseRange(start, end)
	if err != nil {
		metrics.AggregationErrors.WithLabelValues("invalid_date_range").Inc()
		return nil, err
	}
	if err := daterange.CheckSpan(from, to, e.maxDays); err != nil {
		metrics.AggregationErrors.WithLabelValues("range_too_wide").Inc()
		return nil, err
	}

	dates := daterange.EnumerateDates(from, to)
	acc := newAccumulator(len(dates))
	for _, date := range dates {
		if err := ctx.Err(); err != nil {
			metrics.AggregationErrors.WithLabelValues("canceled").Inc()
			return nil, err
		}
		acc.addDay(daterange.Key(date), e.snapshots.Load(ctx, date))
	}

	geo := e.resolver.ResolveAll(ctx, acc.ips.Keys())
	if geo == nil {
		geo = map[string]models.Location{}
	}

	sessions := acc.sessions
	if sessions == nil {
		sessions = []models.Session{}
	}
	failed, successful := tallyLogins(sessions)

	report := assemble(acc, sessions, derived{
		geo:           geo,
		totalCommands: countCommands(sessions),
		failed:        failed,
		successful:    successful,
		passwords:     analyzePasswords(sessions),
		timing:        analyzeTiming(ctx, sessions),
	})
	report.DateRange = &models.DateRange{Start: start, End: end}

	metrics.RecordAggregation(time.Since(began), len(dates), len(report.Sessions))
	log.Info().
		Str("start", start).
		Str("end", end).
		Int("days", len(dates)).
		Int("sessions", len(report.Sessions)).
		Int("unique_ips", report.Statistics.UniqueIPs).
		Dur("duration", time.Since(began)).
		Msg("Aggregated date range")

	return report, nil
}

// countCommands sums the per-session command list lengths.
func countCommands(sessions []models.Session) int {
	n := 0
	for i := range sessions {
		n += len(sessions[i].Commands)
	}
	return n
}
