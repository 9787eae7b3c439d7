// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package models

import "errors"

// Only ErrInvalidDateRange, ErrNoFallbackData and ErrSessionNotFound reach
// API callers. The rest are logged and degrade to empty or sample data.
var (
	// ErrInvalidDateRange is returned when a start or end date is not a
	// YYYYMMDD calendar date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrSnapshotUnavailable means no snapshot file exists for a date.
	ErrSnapshotUnavailable = errors.New("snapshot unavailable")

	// ErrSnapshotCorrupt means a snapshot file exists but could not be decoded.
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")

	// ErrTimestampUnparsable means a session timestamp is not ISO-8601.
	ErrTimestampUnparsable = errors.New("timestamp unparsable")

	// ErrGeolocationLookupFailed covers any failed external IP lookup.
	ErrGeolocationLookupFailed = errors.New("geolocation lookup failed")

	// ErrNoFallbackData means analysis.json is missing.
	ErrNoFallbackData = errors.New("no data available")

	// ErrSessionNotFound means no snapshot contains the requested session ID.
	ErrSessionNotFound = errors.New("session not found")
)
