// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/honeystat/internal/logging"
	"github.com/tomtom215/honeystat/internal/validation"
)

// Geolocation provider names accepted in geolocation.providers.
const (
	ProviderMaxMind = "maxmind"
	ProviderIPAPI   = "ipapi"
)

// Validate checks struct tags first, then cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateGeolocation(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("HTTP read, write and idle timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateGeolocation() error {
	g := &c.Geolocation
	seen := make(map[string]bool, len(g.Providers))
	for i, p := range g.Providers {
		p = strings.ToLower(strings.TrimSpace(p))
		g.Providers[i] = p
		switch p {
		case ProviderMaxMind:
			if g.MaxMindDBPath == "" {
				return fmt.Errorf("MAXMIND_DB_PATH is required when the maxmind provider is enabled")
			}
		case ProviderIPAPI:
			if g.RemoteURL == "" {
				return fmt.Errorf("GEOIP_REMOTE_URL is required when the ipapi provider is enabled")
			}
		default:
			return fmt.Errorf("GEOIP_PROVIDERS contains unknown provider %q (valid: %s, %s)",
				p, ProviderMaxMind, ProviderIPAPI)
		}
		if seen[p] {
			return fmt.Errorf("GEOIP_PROVIDERS lists %q more than once", p)
		}
		seen[p] = true
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("GEOIP_TIMEOUT must be positive")
	}
	if g.LookupDelay < 0 {
		return fmt.Errorf("GEOIP_LOOKUP_DELAY must not be negative")
	}
	if g.BreakerTimeout <= 0 {
		return fmt.Errorf("GEOIP_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// HasProvider reports whether name is enabled.
func (g GeolocationConfig) HasProvider(name string) bool {
	for _, p := range g.Providers {
		if p == name {
			return true
		}
	}
	return false
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * to allow all)")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitRequests < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 unless DISABLE_RATE_LIMIT=true")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// ToLogging converts to the logging package's Config.
func (l LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
