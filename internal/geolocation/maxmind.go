// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package geolocation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"

	"github.com/tomtom215/honeystat/internal/models"
)

// MaxMindSource answers from a local GeoLite2/GeoIP2 City database.
// City databases carry no ISP, so ISP is always "Unknown".
type MaxMindSource struct {
	reader *geoip2.Reader
}

// OpenMaxMind opens the database at path.
func OpenMaxMind(path string) (*MaxMindSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("maxmind: empty database path")
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maxmind: open database: %w", err)
	}
	return &MaxMindSource{reader: reader}, nil
}

// Name implements Source.
func (s *MaxMindSource) Name() string { return SourceMaxMind }

// Lookup implements Source. Addresses absent from the database return ErrNotFound.
func (s *MaxMindSource) Lookup(_ context.Context, ip string) (models.Location, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return models.Location{}, fmt.Errorf("%w: invalid IP address %q", ErrNotFound, ip)
	}
	record, err := s.reader.City(parsed)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: maxmind: %w", models.ErrGeolocationLookupFailed, err)
	}
	if record == nil || record.Country.IsoCode == "" {
		return models.Location{}, fmt.Errorf("%w: %s", ErrNotFound, ip)
	}

	region := ""
	if len(record.Subdivisions) > 0 {
		region = record.Subdivisions[0].Names["en"]
	}
	lat, lon := record.Location.Latitude, record.Location.Longitude

	return models.Location{
		Country:     orDefault(record.Country.Names["en"], unknownField),
		CountryCode: record.Country.IsoCode,
		City:        orDefault(record.City.Names["en"], unknownField),
		Region:      orDefault(region, unknownField),
		Latitude:    &lat,
		Longitude:   &lon,
		ISP:         unknownField,
		Timezone:    orDefault(record.Location.TimeZone, unknownField),
	}, nil
}

// Close releases the database.
func (s *MaxMindSource) Close() error {
	if s == nil || s.reader == nil {
		return nil
	}
	return s.reader.Close()
}
