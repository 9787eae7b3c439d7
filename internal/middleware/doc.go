// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package middleware provides chi-compatible HTTP middleware for the API server.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by route pattern
  - Compression: gzip for clients that accept it

Middleware Stack:

The API router installs them in this order:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors)
	r.Route("/api", func(r chi.Router) {
	    r.Use(rateLimit)
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.Compression)
	    ...
	})

PrometheusMetrics must run inside the router (after route matching has begun)
so chi.RouteContext carries the pattern by the time the handler returns.
*/
package middleware
