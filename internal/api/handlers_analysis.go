// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/honeystat/internal/validation"
)

// analysisQuery holds the optional range parameters of /api/analysis.
type analysisQuery struct {
	StartDate string `query:"start_date" validate:"required,yyyymmdd"`
	EndDate   string `query:"end_date" validate:"required,yyyymmdd"`
}

// sessionQuery holds the optional day filter of /api/session/{session_id}.
type sessionQuery struct {
	SessionID string `query:"session_id" validate:"required,max=256"`
	Date      string `query:"date" validate:"omitempty,yyyymmdd"`
}

// AvailableDatesResponse lists the snapshot dates on disk.
type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

// Analysis serves the aggregated report for start_date..end_date. When
// either date is missing the undated analysis.json is served verbatim.
func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	if !hasQueryValue(r, "start_date") || !hasQueryValue(r, "end_date") {
		h.staticAnalysis(w, r)
		return
	}

	q := analysisQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		NewResponseWriter(w, r).BadRequest(msgInvalidDate, verr.ToAPIError().Details)
		return
	}

	report, err := h.engine.Aggregate(r.Context(), q.StartDate, q.EndDate)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, report)
}

func (h *Handler) staticAnalysis(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.LoadStatic()
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondRaw(w, r, http.StatusOK, data)
}

// AvailableDates lists every date with a snapshot file.
func (h *Handler) AvailableDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.store.AvailableDates()
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, AvailableDatesResponse{Dates: dates})
}

// Session returns one session by ID, optionally restricted to ?date=.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	q := sessionQuery{
		SessionID: chi.URLParam(r, "session_id"),
		Date:      r.URL.Query().Get("date"),
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		apiErr := verr.ToAPIError()
		NewResponseWriter(w, r).BadRequest(apiErr.Message, apiErr.Details)
		return
	}

	lookup, err := h.store.FindSession(r.Context(), q.SessionID, q.Date)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, lookup)
}
