// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package supervisor runs honeystat's long-lived services under a suture v4 tree.

	honeystat (root)
	├── data-layer
	│   └── geolocation-warmup
	└── api-layer
	    └── http-server

Supervisor events (restarts, backoff, panics) are logged through sutureslog
with the zerolog-backed slog logger from the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	...
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}
*/
package supervisor
