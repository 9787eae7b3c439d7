// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package snapshot

import (
	"context"
	"fmt"

	"github.com/tomtom215/honeystat/internal/daterange"
	"github.com/tomtom215/honeystat/internal/models"
)

// FindSession looks up a session by ID. With a non-empty date only that
// day's snapshot is searched; otherwise every available day is scanned,
// newest first. Session IDs are unique within a day, so the first match wins.
func (l *Loader) FindSession(ctx context.Context, id, date string) (*models.SessionLookup, error) {
	var dates []string
	if date != "" {
		if !daterange.Valid(date) {
			return nil, fmt.Errorf("%w: date %q", models.ErrInvalidDateRange, date)
		}
		dates = []string{date}
	} else {
		available, err := l.AvailableDates()
		if err != nil {
			return nil, err
		}
		dates = available
	}

	for i := len(dates) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d, _ := daterange.ParseDate(dates[i])
		snap := l.Load(ctx, d)
		for _, entry := range snap.SessionDetails {
			if entry.ID == id {
				return &models.SessionLookup{Date: dates[i], Session: entry.Flatten()}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrSessionNotFound, id)
}
