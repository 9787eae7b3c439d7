// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package services provides suture.Service wrappers for honeystat components.

Each wrapper implements suture's Serve(ctx context.Context) error and a
String method naming it in supervisor events.

HTTPServerService runs *http.Server, translating ListenAndServe into Serve
and shutting down gracefully with its own timeout when the context ends.

GeoWarmupService resolves the top IPs of the newest snapshots once at
startup, then returns suture.ErrDoNotRestart.

	tree.AddDataService(services.NewGeoWarmupService(loader, loader, resolver, cfg.Geolocation.WarmupDays))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
*/
package services
