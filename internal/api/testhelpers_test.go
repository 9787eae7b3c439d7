// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeystat/internal/cache"
	"github.com/tomtom215/honeystat/internal/models"
)

type aggregateCall struct {
	start, end string
}

type fakeAggregator struct {
	mu     sync.Mutex
	calls  []aggregateCall
	report *models.Report
	err    error
	panic  bool
}

func (f *fakeAggregator) Aggregate(_ context.Context, start, end string) (*models.Report, error) {
	f.mu.Lock()
	f.calls = append(f.calls, aggregateCall{start, end})
	f.mu.Unlock()
	if f.panic {
		panic("aggregation exploded")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func (f *fakeAggregator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeStore struct {
	static   json.RawMessage
	staticEr error
	dates    []string
	datesErr error
	sessions map[string]*models.SessionLookup
	readyErr error

	lastDate string
}

func (f *fakeStore) LoadStatic() (json.RawMessage, error) {
	if f.staticEr != nil {
		return nil, f.staticEr
	}
	if f.static == nil {
		return nil, models.ErrNoFallbackData
	}
	return f.static, nil
}

func (f *fakeStore) AvailableDates() ([]string, error) {
	if f.datesErr != nil {
		return nil, f.datesErr
	}
	if f.dates == nil {
		return []string{}, nil
	}
	return f.dates, nil
}

func (f *fakeStore) FindSession(_ context.Context, id, date string) (*models.SessionLookup, error) {
	f.lastDate = date
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, models.ErrSessionNotFound
}

func (f *fakeStore) Ready() error { return f.readyErr }

type fakeGeoStats struct{ stats cache.Stats }

func (f fakeGeoStats) CacheStats() cache.Stats { return f.stats }

func newTestServer(agg Aggregator, store SnapshotStore, mwCfg *ChiMiddlewareConfig) http.Handler {
	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.RateLimitDisabled = true
	}
	h := NewHandler(agg, store, fakeGeoStats{stats: cache.Stats{Hits: 4, Misses: 2, Size: 2}})
	return NewRouter(h, NewChiMiddleware(mwCfg)).SetupChi()
}

func do(t *testing.T, h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return resp
}

func sampleReport() *models.Report {
	return &models.Report{
		DailySessions: map[string]int{"2024-01-15": 3},
		Statistics:    models.ReportStatistics{TotalSessions: 3, UniqueIPs: 2, TotalCommands: 3},
		DateRange:     &models.DateRange{Start: "20240115", End: "20240115"},
	}
}
