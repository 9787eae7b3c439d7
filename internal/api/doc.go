// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package api serves the dashboard's HTTP interface on a chi router.

Endpoints:

	GET /api/analysis?start_date=YYYYMMDD&end_date=YYYYMMDD
	    Aggregated report for the inclusive range. Without both dates the
	    undated analysis.json is returned verbatim.
	GET /api/available-dates
	    {"dates": [...]} for every snapshot file on disk, oldest first.
	GET /api/session/{session_id}?date=YYYYMMDD
	    One flattened session and the day it was recorded.
	GET /api/v1/health, /api/v1/health/live, /api/v1/health/ready
	GET /metrics

Dashboard payloads are written bare so the report schema stays top-level.
Errors and health probes use the APIResponse envelope:

	{
	  "success": false,
	  "error": {"code": "VALIDATION_ERROR", "message": "Invalid date format. Use YYYYMMDD"},
	  "metadata": {"request_id": "...", "timestamp": "..."}
	}

Middleware order: request ID, real IP, panic recovery and CORS apply to every
route; rate limiting, Prometheus instrumentation, security headers and gzip
apply to the /api group.
*/
package api
