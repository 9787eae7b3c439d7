// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package models

// Location is the geolocation attached to an attacking IP in geo_data.
// Latitude and Longitude are nil when the provider did not report them.
type Location struct {
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	City        string   `json:"city"`
	Region      string   `json:"region"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ISP         string   `json:"isp"`
	Timezone    string   `json:"timezone"`
}

// Clone returns a deep copy so cached entries are never shared with callers.
func (l Location) Clone() Location {
	out := l
	if l.Latitude != nil {
		lat := *l.Latitude
		out.Latitude = &lat
	}
	if l.Longitude != nil {
		lon := *l.Longitude
		out.Longitude = &lon
	}
	return out
}

// Coordinates returns latitude and longitude, reporting false if either is missing.
func (l Location) Coordinates() (lat, lon float64, ok bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return 0, 0, false
	}
	return *l.Latitude, *l.Longitude, true
}
