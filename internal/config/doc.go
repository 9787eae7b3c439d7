// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package config loads Honeystat configuration with koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, else config.yaml / config.yml / /etc/honeystat/config.yaml
 3. .env / .env.local files, read into the process environment by godotenv
    without overriding variables that are already set
 4. Environment variables, mapped explicitly by envTransformFunc

Example config.yaml:

	server:
	  port: 5000
	data:
	  dir: /var/lib/honeystat/data
	geolocation:
	  providers: [maxmind, ipapi]
	  maxmind_db_path: /usr/share/GeoIP/GeoLite2-City.mmdb
	  cache_size: 1000
	logging:
	  level: debug
	  format: console

Commonly used environment variables:

	HTTP_PORT, HTTP_HOST, DATA_DIR, GEOIP_PROVIDERS, GEOIP_REMOTE_URL,
	GEOIP_TIMEOUT, GEOIP_LOOKUP_DELAY, GEOIP_CACHE_SIZE, MAXMIND_DB_PATH,
	CORS_ORIGINS, RATE_LIMIT_REQUESTS, LOG_LEVEL, LOG_FORMAT

Comma-separated values are accepted for list settings (GEOIP_PROVIDERS,
CORS_ORIGINS). Unknown environment variables are ignored.
*/
package config
