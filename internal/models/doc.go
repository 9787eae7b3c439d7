// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package models defines the data structures shared across Honeystat.

Input models mirror the daily snapshot files written by the honeypot log
analyzer (analysis_YYYYMMDD.json):

  - Snapshot: one day of activity (statistics, top_ips, dangerous_commands,
    session_details)
  - SessionRecord: a single attacker session as stored in a snapshot
  - SessionDetails: session_details decoded with file order preserved

Output models form the JSON contract consumed by the dashboard:

  - Report: the aggregation of a date range
  - Session: a flattened session row
  - Location: geolocation of an attacking IP
  - PasswordAnalysis, AttackTiming: derived analytics blocks

Sentinel errors for the whole pipeline live in errors.go.
*/
package models
