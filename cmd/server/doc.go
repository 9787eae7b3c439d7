// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package main is the entry point for the Honeystat server.

Honeystat reads the daily honeypot analysis snapshots a collector writes to
the data directory (analysis_YYYYMMDD.json), merges any requested date range
into a single report, geolocates the attacking addresses and serves the result
to the dashboard over a small JSON API.

# Application Architecture

The process runs under a Suture v4 supervisor tree:

	RootSupervisor ("honeystat")
	├── DataSupervisor ("data-layer")
	│   └── Geolocation warm-up (one-shot, GEOIP_WARMUP_DAYS > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml, .env and environment
 2. Logging: zerolog with JSON/console output modes
 3. Geolocation: LRU cache, MaxMind and/or ipapi.co sources, static table
 4. Snapshot loader and aggregation engine
 5. HTTP Router: chi with request ID, CORS, rate limiting and gzip
 6. Supervisor Tree: warm-up and HTTP server services

# Configuration

Common environment variables:

	HTTP_PORT           listen port (default 5000)
	DATA_DIR            snapshot directory (default data)
	DATA_FALLBACK_FILE  static report served without a date range (default analysis.json)
	DATA_MAX_RANGE_DAYS widest analysis range in days, 0 for no limit (default 366)
	GEOIP_PROVIDERS     comma separated external sources in order: maxmind, ipapi
	MAXMIND_DB_PATH     GeoLite2/GeoIP2 City database, required for maxmind
	GEOIP_LOOKUP_DELAY  pause after each remote lookup (default 100ms)
	GEOIP_WARMUP_DAYS   newest days whose top IPs are resolved at startup
	CORS_ORIGINS        allowed origins (default *)
	LOG_LEVEL           trace, debug, info, warn, error

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then
any MaxMind database is closed.

# Example Usage

	export DATA_DIR=/var/lib/honeypot/reports
	export GEOIP_PROVIDERS=maxmind,ipapi
	export MAXMIND_DB_PATH=/usr/share/GeoIP/GeoLite2-City.mmdb
	./honeystat

Test data for a dashboard without a live honeypot can be generated with
cmd/honeygen.
*/
package main
