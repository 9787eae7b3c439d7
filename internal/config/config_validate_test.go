// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "port"},
		{"empty data dir", func(c *Config) { c.Data.Dir = "" }, "dir is required"},
		{"bad environment", func(c *Config) { c.Server.Environment = "qa" }, "environment"},
		{"unknown provider", func(c *Config) { c.Geolocation.Providers = []string{"ipinfo"} }, "unknown provider"},
		{"maxmind without path", func(c *Config) { c.Geolocation.Providers = []string{"maxmind"} }, "MAXMIND_DB_PATH"},
		{"duplicate provider", func(c *Config) { c.Geolocation.Providers = []string{"ipapi", "IPAPI"} }, "more than once"},
		{"no providers", func(c *Config) { c.Geolocation.Providers = nil }, ""},
		{"zero timeout", func(c *Config) { c.Geolocation.Timeout = 0 }, "GEOIP_TIMEOUT"},
		{"zero cache", func(c *Config) { c.Geolocation.CacheSize = 0 }, "cache_size"},
		{"negative max range", func(c *Config) { c.Data.MaxRangeDays = -1 }, "max_range_days"},
		{"unlimited range", func(c *Config) { c.Data.MaxRangeDays = 0 }, ""},
		{"no cors", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitRequests = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestServerConfigAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 5000}
	if s.Addr() != "127.0.0.1:5000" {
		t.Errorf("Addr() = %q", s.Addr())
	}
}

func TestToLogging(t *testing.T) {
	l := LoggingConfig{Level: "debug", Format: "console", Caller: true}.ToLogging()
	if l.Level != "debug" || l.Format != "console" || !l.Caller || !l.Timestamp {
		t.Errorf("ToLogging() = %+v", l)
	}
}
