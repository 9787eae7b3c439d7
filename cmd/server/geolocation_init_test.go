// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/honeystat/internal/config"
)

func testGeoConfig(providers ...string) config.GeolocationConfig {
	return config.GeolocationConfig{
		Providers:       providers,
		RemoteURL:       "http://127.0.0.1:1",
		Timeout:         100 * time.Millisecond,
		CacheSize:       16,
		Concurrency:     2,
		BreakerFailures: 1,
		BreakerTimeout:  time.Minute,
		Seed:            7,
	}
}

func TestInitGeolocationNoProviders(t *testing.T) {
	cfg := testGeoConfig()
	resolver, cleanup, err := initGeolocation(&cfg)
	if err != nil {
		t.Fatalf("initGeolocation() error = %v", err)
	}
	defer cleanup()

	if loc := resolver.Resolve(context.Background(), "8.8.8.8"); loc.City != "Mountain View" {
		t.Errorf("Resolve(8.8.8.8) = %+v, want static table entry", loc)
	}
}

func TestInitGeolocationRemote(t *testing.T) {
	cfg := testGeoConfig(config.ProviderIPAPI)
	resolver, cleanup, err := initGeolocation(&cfg)
	if err != nil {
		t.Fatalf("initGeolocation() error = %v", err)
	}
	defer cleanup()

	// The remote endpoint is unreachable, so resolution degrades to a sample.
	if loc := resolver.Resolve(context.Background(), "203.0.113.9"); loc.Country == "" {
		t.Errorf("Resolve() returned empty location")
	}
}

func TestInitGeolocationMissingMaxMind(t *testing.T) {
	cfg := testGeoConfig(config.ProviderIPAPI, config.ProviderMaxMind)
	cfg.MaxMindDBPath = filepath.Join(t.TempDir(), "missing.mmdb")

	_, cleanup, err := initGeolocation(&cfg)
	if err == nil {
		t.Fatal("initGeolocation() succeeded with a missing database")
	}
	cleanup()
}

func TestInitGeolocationUnknownProvider(t *testing.T) {
	cfg := testGeoConfig("carrier-pigeon")
	if _, _, err := initGeolocation(&cfg); err == nil {
		t.Fatal("initGeolocation() accepted an unknown provider")
	}
}
