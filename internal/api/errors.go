// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/honeystat/internal/daterange"
	"github.com/tomtom215/honeystat/internal/models"
)

// Client-facing messages. The dashboard matches on the first two.
const (
	msgInvalidDate      = "Invalid date format. Use YYYYMMDD"
	msgNoData           = "No data available"
	msgRangeTooWide     = "Date range spans too many days"
	msgEndpointNotFound = "Endpoint not found"
	msgMethodNotAllowed = "Method not allowed"
	msgSessionNotFound  = "Session not found"
	msgRateLimited      = "Too many requests, please slow down"
	msgCanceled         = "Request canceled before the report was complete"
	msgInternal         = "Internal server error"
)

// errorResponse maps a domain error to status, code and message.
func errorResponse(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, daterange.ErrRangeTooWide):
		return http.StatusBadRequest, ErrCodeValidation, msgRangeTooWide
	case errors.Is(err, models.ErrInvalidDateRange):
		return http.StatusBadRequest, ErrCodeValidation, msgInvalidDate
	case errors.Is(err, models.ErrNoFallbackData):
		return http.StatusNotFound, ErrCodeNotFound, msgNoData
	case errors.Is(err, models.ErrSessionNotFound):
		return http.StatusNotFound, ErrCodeNotFound, msgSessionNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgCanceled
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, msgInternal
	}
}

// respondError writes the envelope for err, logging server-side faults.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logEvent := loggerFor(r).Error()
		if status == http.StatusServiceUnavailable {
			logEvent = loggerFor(r).Warn()
		}
		logEvent.Err(err).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("code", code).
			Msg("API request failed")
	}
	NewResponseWriter(w, r).Error(status, code, message, nil)
}
