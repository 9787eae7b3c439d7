// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package config

import (
	"net"
	"path/filepath"
	"strconv"
	"time"
)

// Config is the complete runtime configuration.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Data        DataConfig        `koanf:"data"`
	Geolocation GeolocationConfig `koanf:"geolocation"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DataConfig locates the snapshot files.
type DataConfig struct {
	// Dir holds analysis_YYYYMMDD.json files.
	Dir string `koanf:"dir" validate:"required"`

	// FallbackFile is served when a request names no date range.
	FallbackFile string `koanf:"fallback_file" validate:"required"`

	// MaxRangeDays rejects analysis ranges spanning more days. Zero disables.
	MaxRangeDays int `koanf:"max_range_days" validate:"gte=0"`
}

// FallbackPath joins Dir and FallbackFile.
func (d DataConfig) FallbackPath() string {
	return filepath.Join(d.Dir, d.FallbackFile)
}

// GeolocationConfig controls IP enrichment.
type GeolocationConfig struct {
	// Providers lists external sources in lookup order: maxmind, ipapi.
	// An empty list disables external lookups; unknown IPs then get sample data.
	Providers []string `koanf:"providers"`

	// RemoteURL is the ipapi.co compatible base URL.
	RemoteURL string `koanf:"remote_url" validate:"omitempty,url"`

	// Timeout bounds each remote lookup.
	Timeout time.Duration `koanf:"timeout"`

	// LookupDelay is slept after each fresh remote lookup.
	LookupDelay time.Duration `koanf:"lookup_delay"`

	// CacheSize caps the resolved-IP cache.
	CacheSize int `koanf:"cache_size" validate:"min=1"`

	// Concurrency caps parallel lookups within one aggregation.
	Concurrency int `koanf:"concurrency" validate:"min=1,max=64"`

	// RequestsPerSecond and Burst throttle outbound remote calls. Zero disables.
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	Burst             int     `koanf:"burst" validate:"gte=0"`

	// BreakerFailures consecutive failures open the circuit for BreakerTimeout.
	BreakerFailures uint32        `koanf:"breaker_failures" validate:"min=1"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`

	// MaxMindDBPath points to a GeoLite2/GeoIP2 City database.
	MaxMindDBPath string `koanf:"maxmind_db_path"`

	// Seed fixes the random sample fallback; zero seeds from the clock.
	Seed uint64 `koanf:"seed"`

	// WarmupDays pre-resolves the top IPs of the newest N snapshots at
	// startup. Zero disables the warm-up.
	WarmupDays int `koanf:"warmup_days" validate:"gte=0,lte=366"`
}

// SecurityConfig holds CORS and inbound rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	// Level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format: json or console.
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`

	// Caller adds file:line to each entry.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, file, .env and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
