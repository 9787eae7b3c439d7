// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package api

import (
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/honeystat/internal/config"
)

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	m := NewChiMiddleware(nil)

	if m.config == nil {
		t.Fatal("config is nil")
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	tests := []struct {
		name     string
		sec      config.SecurityConfig
		requests int
		window   time.Duration
		disabled bool
	}{
		{
			name:     "explicit",
			sec:      config.SecurityConfig{CORSOrigins: []string{"https://dash.example"}, RateLimitRequests: 20, RateLimitWindow: 30 * time.Second},
			requests: 20,
			window:   30 * time.Second,
		},
		{
			name:     "zero values keep defaults",
			sec:      config.SecurityConfig{},
			requests: 100,
			window:   time.Minute,
		},
		{
			name:     "disabled",
			sec:      config.SecurityConfig{RateLimitDisabled: true},
			requests: 100,
			window:   time.Minute,
			disabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ChiMiddlewareConfigFromSecurity(tt.sec)
			if cfg.RateLimitRequests != tt.requests || cfg.RateLimitWindow != tt.window || cfg.RateLimitDisabled != tt.disabled {
				t.Errorf("got %d/%v disabled=%v", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
			}
			if len(tt.sec.CORSOrigins) > 0 && !reflect.DeepEqual(cfg.CORSAllowedOrigins, tt.sec.CORSOrigins) {
				t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
			}
		})
	}
}

func TestRateLimit_Exceeded(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv := newTestServer(&fakeAggregator{}, &fakeStore{}, cfg)

	for i := 0; i < 2; i++ {
		if rec := do(t, srv, http.MethodGet, "/api/available-dates", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i+1, rec.Code)
		}
	}

	rec := do(t, srv, http.MethodGet, "/api/available-dates", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Error == nil || resp.Error.Code != ErrCodeRateLimitExceeded {
		t.Errorf("envelope = %+v", resp)
	}

	// /metrics sits outside the limited group.
	if rec := do(t, srv, http.MethodGet, "/metrics", nil); rec.Code != http.StatusOK {
		t.Errorf("/metrics status = %d", rec.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	srv := newTestServer(&fakeAggregator{}, &fakeStore{}, cfg)

	for i := 0; i < 5; i++ {
		if rec := do(t, srv, http.MethodGet, "/api/available-dates", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i+1, rec.Code)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://dash.example"}
	cfg.RateLimitDisabled = true
	srv := newTestServer(&fakeAggregator{}, &fakeStore{}, cfg)

	rec := do(t, srv, http.MethodOptions, "/api/analysis", map[string]string{
		"Origin":                        "https://dash.example",
		"Access-Control-Request-Method": http.MethodGet,
	})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example" {
		t.Errorf("allowed origin = %q", got)
	}

	rec = do(t, srv, http.MethodGet, "/api/available-dates", map[string]string{"Origin": "https://evil.example"})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin allowed: %q", got)
	}
}
