// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package geolocation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/honeystat/internal/models"
)

// sampleEntry pairs a well-known address with its fixed location.
type sampleEntry struct {
	ip  string
	loc models.Location
}

func coord(v float64) *float64 { return &v }

// samples is the fixed sample table. Order matters: private addresses are
// remapped by index and the first entry doubles as the malformed-IP default.
var samples = []sampleEntry{
	{"8.8.8.8", models.Location{Country: "United States", CountryCode: "US", City: "Mountain View", Region: "California",
		Latitude: coord(37.4056), Longitude: coord(-122.0775), ISP: "Google LLC", Timezone: "America/Los_Angeles"}},
	{"1.1.1.1", models.Location{Country: "Australia", CountryCode: "AU", City: "Sydney", Region: "New South Wales",
		Latitude: coord(-33.8688), Longitude: coord(151.2093), ISP: "Cloudflare Inc", Timezone: "Australia/Sydney"}},
	{"208.67.222.222", models.Location{Country: "United States", CountryCode: "US", City: "San Francisco", Region: "California",
		Latitude: coord(37.7749), Longitude: coord(-122.4194), ISP: "OpenDNS LLC", Timezone: "America/Los_Angeles"}},
	{"185.228.168.9", models.Location{Country: "Russia", CountryCode: "RU", City: "Moscow", Region: "Moscow",
		Latitude: coord(55.7558), Longitude: coord(37.6176), ISP: "Yandex LLC", Timezone: "Europe/Moscow"}},
	{"114.114.114.114", models.Location{Country: "China", CountryCode: "CN", City: "Beijing", Region: "Beijing",
		Latitude: coord(39.9042), Longitude: coord(116.4074), ISP: "China Telecom", Timezone: "Asia/Shanghai"}},
	{"203.0.113.1", models.Location{Country: "Japan", CountryCode: "JP", City: "Tokyo", Region: "Tokyo",
		Latitude: coord(35.6762), Longitude: coord(139.6503), ISP: "NTT Communications", Timezone: "Asia/Tokyo"}},
	{"80.80.80.80", models.Location{Country: "Germany", CountryCode: "DE", City: "Berlin", Region: "Berlin",
		Latitude: coord(52.5200), Longitude: coord(13.4050), ISP: "Deutsche Telekom", Timezone: "Europe/Berlin"}},
	{"9.9.9.9", models.Location{Country: "United Kingdom", CountryCode: "GB", City: "London", Region: "England",
		Latitude: coord(51.5074), Longitude: coord(-0.1278), ISP: "Quad9", Timezone: "Europe/London"}},
	{"208.67.220.220", models.Location{Country: "Canada", CountryCode: "CA", City: "Toronto", Region: "Ontario",
		Latitude: coord(43.6532), Longitude: coord(-79.3832), ISP: "Rogers Communications", Timezone: "America/Toronto"}},
	{"77.88.8.8", models.Location{Country: "France", CountryCode: "FR", City: "Paris", Region: "Île-de-France",
		Latitude: coord(48.8566), Longitude: coord(2.3522), ISP: "Orange S.A.", Timezone: "Europe/Paris"}},
}

var sampleIndex = func() map[string]int {
	m := make(map[string]int, len(samples))
	for i, s := range samples {
		m[s.ip] = i
	}
	return m
}()

// SampleIPs returns the sample table addresses in table order.
func SampleIPs() []string {
	out := make([]string, len(samples))
	for i, s := range samples {
		out[i] = s.ip
	}
	return out
}

// SampleCount is the size of the sample table.
func SampleCount() int { return len(samples) }

// SampleAt returns a copy of the i-th sample location.
func SampleAt(i int) models.Location {
	return samples[i].loc.Clone()
}

// Sample returns the table entry for ip, if any.
func Sample(ip string) (models.Location, bool) {
	i, ok := sampleIndex[ip]
	if !ok {
		return models.Location{}, false
	}
	return SampleAt(i), true
}

// IsPrivate reports whether ip is treated as a private or loopback address.
//
// This is a textual prefix rule, not a CIDR check: every "172." address
// matches, and "localhost" is accepted as an address.
func IsPrivate(ip string) bool {
	switch {
	case strings.HasPrefix(ip, "192.168."),
		strings.HasPrefix(ip, "10."),
		strings.HasPrefix(ip, "172."):
		return true
	case ip == "127.0.0.1", ip == "localhost":
		return true
	}
	return false
}

// PrivateLocation maps a private address onto the sample table using its
// last dot-separated component modulo the table size. Addresses without a
// dot use 1. A non-numeric last component yields the first sample.
func PrivateLocation(ip string) models.Location {
	last := 1
	if i := strings.LastIndexByte(ip, '.'); i >= 0 {
		n, err := strconv.Atoi(ip[i+1:])
		if err != nil {
			return SampleAt(0)
		}
		last = n
	}
	size := len(samples)
	return SampleAt(((last % size) + size) % size)
}

// StaticSource answers from the sample table only.
type StaticSource struct{}

// NewStaticSource returns the sample table source.
func NewStaticSource() *StaticSource { return &StaticSource{} }

// Name implements Source.
func (*StaticSource) Name() string { return SourceStatic }

// Lookup implements Source. Addresses outside the table return ErrNotFound.
func (*StaticSource) Lookup(_ context.Context, ip string) (models.Location, error) {
	if loc, ok := Sample(ip); ok {
		return loc, nil
	}
	return models.Location{}, fmt.Errorf("%w: %s", ErrNotFound, ip)
}
