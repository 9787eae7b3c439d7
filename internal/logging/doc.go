// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

// Package logging provides the process-wide zerolog logger for Honeystat.
//
// The logger is usable before Init is called; main reconfigures it from the
// loaded configuration.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(ctx).Warn().Err(err).Str("date", d).Msg("Snapshot skipped")
//
// Request-scoped fields (request_id, correlation_id) are attached by Ctx when
// present in the context. Chains must end with Msg or Send or nothing is
// written.
//
// NewSlogLogger bridges to log/slog for libraries that only speak slog, such
// as sutureslog.
package logging
