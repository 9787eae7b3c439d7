// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/honeystat/internal/aggregate"
	"github.com/tomtom215/honeystat/internal/api"
	"github.com/tomtom215/honeystat/internal/config"
	"github.com/tomtom215/honeystat/internal/logging"
	"github.com/tomtom215/honeystat/internal/snapshot"
	"github.com/tomtom215/honeystat/internal/supervisor"
	"github.com/tomtom215/honeystat/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLogging())

	logging.Info().Msg("Starting Honeystat with supervisor tree")
	logging.Info().
		Str("data_dir", cfg.Data.Dir).
		Str("fallback", cfg.Data.FallbackPath()).
		Strs("geo_providers", cfg.Geolocation.Providers).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	resolver, closeGeo, err := initGeolocation(&cfg.Geolocation)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize geolocation")
	}
	defer closeGeo()

	loader := snapshot.NewLoader(cfg.Data.Dir, cfg.Data.FallbackFile)
	if err := loader.Ready(); err != nil {
		// Not fatal: the directory may be populated after startup.
		logging.Warn().Err(err).Str("dir", cfg.Data.Dir).Msg("Data directory not ready")
	}
	engine := aggregate.NewEngine(loader, resolver)
	engine.SetMaxDays(cfg.Data.MaxRangeDays)

	handler := api.NewHandler(engine, loader, resolver)
	chiMiddleware := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	router := api.NewRouter(handler, chiMiddleware)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slogLogger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Data layer services
	tree.AddDataService(services.NewGeoWarmupService(loader, loader, resolver, cfg.Geolocation.WarmupDays))
	if cfg.Geolocation.WarmupDays > 0 {
		logging.Info().Int("days", cfg.Geolocation.WarmupDays).Msg("Geolocation warm-up service added")
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
