// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

// Package daterange parses YYYYMMDD dates and walks inclusive calendar ranges.
package daterange

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/honeystat/internal/models"
)

const (
	// Layout is the compact form used in query parameters and snapshot file names.
	Layout = "20060102"

	// KeyLayout is the form used for daily_sessions and heatmap keys.
	KeyLayout = "2006-01-02"
)

// ErrInvalidFormat is returned by ParseDate for anything that is not an
// eight digit calendar date.
var ErrInvalidFormat = errors.New("invalid date format, use YYYYMMDD")

// ErrRangeTooWide marks a range spanning more days than a caller allows.
var ErrRangeTooWide = errors.New("date range too wide")

const secondsPerDay = 24 * 60 * 60

// ParseDate parses s as a UTC calendar date in YYYYMMDD form.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(Layout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return t, nil
}

// Valid reports whether s is a YYYYMMDD calendar date.
func Valid(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseRange parses both bounds. Either failing yields models.ErrInvalidDateRange.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	s, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date: %w", models.ErrInvalidDateRange, err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date: %w", models.ErrInvalidDateRange, err)
	}
	return s, e, nil
}

// EnumerateDates returns every calendar day from start to end inclusive, in
// order. The result is empty when end is before start. Times are truncated to
// midnight UTC first.
func EnumerateDates(start, end time.Time) []time.Time {
	start = midnight(start)
	end = midnight(end)
	if end.Before(start) {
		return []time.Time{}
	}

	dates := make([]time.Time, 0, Days(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Days returns the number of days EnumerateDates would produce. It counts
// calendar days, so any span between years 1 and 9999 is exact.
func Days(start, end time.Time) int {
	first := midnight(start).Unix() / secondsPerDay
	last := midnight(end).Unix() / secondsPerDay
	if last < first {
		return 0
	}
	return int(last-first) + 1
}

// CheckSpan returns an error wrapping both models.ErrInvalidDateRange and
// ErrRangeTooWide when [start, end] covers more than maxDays days. A
// maxDays of zero or less disables the check.
func CheckSpan(start, end time.Time, maxDays int) error {
	if maxDays <= 0 {
		return nil
	}
	if n := Days(start, end); n > maxDays {
		return fmt.Errorf("%w: %w: %d days, at most %d allowed",
			models.ErrInvalidDateRange, ErrRangeTooWide, n, maxDays)
	}
	return nil
}

// Compact formats t as YYYYMMDD.
func Compact(t time.Time) string {
	return t.Format(Layout)
}

// Key formats t as YYYY-MM-DD.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
