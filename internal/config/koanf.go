// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/honeystat/config.yaml",
	"/etc/honeystat/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvFiles are read into the environment before the env layer.
var DotEnvFiles = []string{".env", ".env.local"}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Data: DataConfig{
			Dir:          "data",
			FallbackFile: "analysis.json",
			MaxRangeDays: 366,
		},
		Geolocation: GeolocationConfig{
			Providers:         []string{"ipapi"},
			RemoteURL:         "https://ipapi.co",
			Timeout:           5 * time.Second,
			LookupDelay:       100 * time.Millisecond,
			CacheSize:         1000,
			Concurrency:       8,
			RequestsPerSecond: 10,
			Burst:             1,
			BreakerFailures:   5,
			BreakerTimeout:    60 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf builds a Config from, in increasing precedence: defaults,
// the YAML file, and the environment (after .env files are applied).
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := loadDotEnv(DotEnvFiles...); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadDotEnv applies every existing file; missing files are skipped.
// godotenv.Load never overrides variables already in the environment.
func loadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"geolocation.providers",
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for list settings.
// Values already decoded as lists (YAML) are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"http_host":              "server.host",
	"http_port":              "server.port",
	"http_read_timeout":      "server.read_timeout",
	"http_write_timeout":     "server.write_timeout",
	"http_idle_timeout":      "server.idle_timeout",
	"http_shutdown_timeout":  "server.shutdown_timeout",
	"environment":            "server.environment",
	"data_dir":               "data.dir",
	"data_fallback_file":     "data.fallback_file",
	"data_max_range_days":    "data.max_range_days",
	"geoip_providers":        "geolocation.providers",
	"geoip_remote_url":       "geolocation.remote_url",
	"geoip_timeout":          "geolocation.timeout",
	"geoip_lookup_delay":     "geolocation.lookup_delay",
	"geoip_cache_size":       "geolocation.cache_size",
	"geoip_concurrency":      "geolocation.concurrency",
	"geoip_rate_limit":       "geolocation.requests_per_second",
	"geoip_rate_burst":       "geolocation.burst",
	"geoip_breaker_failures": "geolocation.breaker_failures",
	"geoip_breaker_timeout":  "geolocation.breaker_timeout",
	"geoip_seed":             "geolocation.seed",
	"geoip_warmup_days":      "geolocation.warmup_days",
	"maxmind_db_path":        "geolocation.maxmind_db_path",
	"cors_origins":           "security.cors_origins",
	"rate_limit_requests":    "security.rate_limit_requests",
	"rate_limit_window":      "security.rate_limit_window",
	"disable_rate_limit":     "security.rate_limit_disabled",
	"log_level":              "logging.level",
	"log_format":             "logging.format",
	"log_caller":             "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped names return "" and are dropped.
//
//	HTTP_PORT       -> server.port
//	GEOIP_PROVIDERS -> geolocation.providers
//	MAXMIND_DB_PATH -> geolocation.maxmind_db_path
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
