// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package geolocation

import (
	"context"
	"errors"

	"github.com/tomtom215/honeystat/internal/metrics"
	"github.com/tomtom215/honeystat/internal/models"
)

// Source names, also used as the "source" metric label.
const (
	SourcePrivate  = metrics.GeoSourcePrivate
	SourceStatic   = metrics.GeoSourceStatic
	SourceFallback = metrics.GeoSourceFallback
	SourceMaxMind  = "maxmind"
	SourceIPAPI    = "ipapi"
)

// ErrNotFound is returned by a Source that has no answer for an address.
// The resolver moves on to the next source without logging a failure.
var ErrNotFound = errors.New("address not found")

// Source defines a geolocation lookup backend.
type Source interface {
	// Lookup returns the location for ip, or an error. Implementations must
	// not retain or mutate the returned Location afterwards.
	Lookup(ctx context.Context, ip string) (models.Location, error)

	// Name returns the source name for logging and metrics.
	Name() string
}

// networkSource is implemented by sources that make outbound requests.
// The resolver paces itself after each attempt against such a source.
type networkSource interface {
	Source
	outbound() bool
}

func isNetwork(s Source) bool {
	ns, ok := s.(networkSource)
	return ok && ns.outbound()
}
