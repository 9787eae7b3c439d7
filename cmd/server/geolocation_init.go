// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package main

import (
	"fmt"

	"github.com/tomtom215/honeystat/internal/cache"
	"github.com/tomtom215/honeystat/internal/config"
	"github.com/tomtom215/honeystat/internal/geolocation"
	"github.com/tomtom215/honeystat/internal/logging"
	"github.com/tomtom215/honeystat/internal/models"
)

// initGeolocation builds the resolver with its external sources in the
// configured provider order. The returned cleanup closes opened databases
// and is safe to call when initialization failed.
func initGeolocation(cfg *config.GeolocationConfig) (*geolocation.Resolver, func(), error) {
	var (
		sources []geolocation.Source
		closers []func() error
	)
	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logging.Warn().Err(err).Msg("Error closing geolocation source")
			}
		}
	}

	for _, provider := range cfg.Providers {
		switch provider {
		case config.ProviderMaxMind:
			mm, err := geolocation.OpenMaxMind(cfg.MaxMindDBPath)
			if err != nil {
				cleanup()
				return nil, func() {}, fmt.Errorf("open maxmind database: %w", err)
			}
			sources = append(sources, mm)
			closers = append(closers, mm.Close)
			logging.Info().Str("path", cfg.MaxMindDBPath).Msg("MaxMind geolocation source enabled")

		case config.ProviderIPAPI:
			sources = append(sources, geolocation.NewRemoteSource(geolocation.RemoteConfig{
				BaseURL:           cfg.RemoteURL,
				Timeout:           cfg.Timeout,
				RequestsPerSecond: cfg.RequestsPerSecond,
				Burst:             cfg.Burst,
				BreakerFailures:   cfg.BreakerFailures,
				BreakerTimeout:    cfg.BreakerTimeout,
			}))
			logging.Info().Str("url", cfg.RemoteURL).Msg("Remote geolocation source enabled")

		default:
			cleanup()
			return nil, func() {}, fmt.Errorf("unknown geolocation provider %q", provider)
		}
	}

	if len(sources) == 0 {
		logging.Warn().Msg("No external geolocation providers configured, using static table and samples only")
	}

	resolver := geolocation.NewResolver(
		cache.NewLRU[models.Location](cfg.CacheSize),
		geolocation.Options{
			Delay:       cfg.LookupDelay,
			Concurrency: cfg.Concurrency,
			Seed:        cfg.Seed,
		},
		sources...,
	)
	return resolver, cleanup, nil
}
