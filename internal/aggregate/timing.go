// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/honeystat/internal/daterange"
	"github.com/tomtom215/honeystat/internal/logging"
	"github.com/tomtom215/honeystat/internal/metrics"
	"github.com/tomtom215/honeystat/internal/models"
)

// timestampLayouts are tried in order. Layouts without a zone parse as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	daterange.KeyLayout,
}

// ParseTimestamp parses an ISO-8601 session timestamp. A trailing Z means
// UTC; the returned time keeps the offset written in the timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", models.ErrTimestampUnparsable, s)
}

// weekdayIndex numbers weekdays Monday=0 through Sunday=6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// analyzeTiming buckets sessions by hour, weekday and hour x date. Sessions
// with an empty timestamp are skipped silently; unparsable ones are logged.
func analyzeTiming(ctx context.Context, sessions []models.Session) models.AttackTiming {
	timing := models.AttackTiming{
		HourlyDistribution: make(map[int]int),
		DailyDistribution:  make(map[int]int),
		TimelineHeatmap:    make(map[int]map[string]int),
	}

	for i := range sessions {
		ts := sessions[i].Timestamp
		if ts == "" {
			continue
		}
		t, err := ParseTimestamp(ts)
		if err != nil {
			metrics.TimestampsUnparsable.Inc()
			logging.Ctx(ctx).Warn().Err(err).Str("session_id", sessions[i].SessionID).Msg("Skipping session timestamp")
			continue
		}

		hour := t.Hour()
		timing.HourlyDistribution[hour]++
		timing.DailyDistribution[weekdayIndex(t)]++

		row, ok := timing.TimelineHeatmap[hour]
		if !ok {
			row = make(map[string]int)
			timing.TimelineHeatmap[hour] = row
		}
		row[t.Format(daterange.KeyLayout)]++
	}
	return timing
}
