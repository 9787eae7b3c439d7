// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package models

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Session is a flattened session row as consumed by the dashboard tables.
type Session struct {
	SessionID         string     `json:"session_id"`
	IPAddress         string     `json:"ip_address"`
	Timestamp         string     `json:"timestamp"`
	Username          string     `json:"username"`
	Password          string     `json:"password"`
	LoginStatus       string     `json:"login_status"`
	Commands          []string   `json:"commands"`
	DangerousCommands []string   `json:"dangerous_commands"`
	Downloads         []Download `json:"downloads"`
}

// Report is the aggregation of every snapshot in a date range.
type Report struct {
	Sessions          []Session           `json:"sessions"`
	AllSessions       []Session           `json:"all_sessions"`
	Statistics        ReportStatistics    `json:"statistics"`
	TopIPs            map[string]int      `json:"top_ips"`
	TopUsernames      map[string]int      `json:"top_usernames"`
	DangerousCommands map[string]int      `json:"dangerous_commands"`
	DailySessions     map[string]int      `json:"daily_sessions"`
	GeoData           map[string]Location `json:"geo_data"`
	FailedLogins      map[string]int      `json:"failed_logins"`
	SuccessfulLogins  map[string]int      `json:"successful_logins"`
	PasswordAnalysis  PasswordAnalysis    `json:"password_analysis"`
	AttackTiming      AttackTiming        `json:"attack_timing"`
	DateRange         *DateRange          `json:"date_range,omitempty"`
}

// ReportStatistics holds the headline counters.
type ReportStatistics struct {
	TotalSessions int `json:"total_sessions"`
	UniqueIPs     int `json:"unique_ips"`
	TotalCommands int `json:"total_commands"`
}

// DateRange echoes the requested bounds in YYYYMMDD form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PasswordAnalysis summarizes the credentials tried across all sessions.
type PasswordAnalysis struct {
	LengthDistribution  map[int]int         `json:"length_distribution"`
	PatternDistribution PatternDistribution `json:"pattern_distribution"`
	TopPasswords        RankedCounts        `json:"top_passwords"`
	LengthSummary       *LengthSummary      `json:"length_summary,omitempty"`
}

// PatternDistribution counts passwords per character-class bucket.
// NumericOnly, AlphaOnly, Alphanumeric and SpecialChars are exclusive;
// CommonWeak overlaps them and Empty counts blank passwords only.
type PatternDistribution struct {
	NumericOnly  int `json:"numeric_only"`
	AlphaOnly    int `json:"alpha_only"`
	Alphanumeric int `json:"alphanumeric"`
	SpecialChars int `json:"special_chars"`
	Empty        int `json:"empty"`
	CommonWeak   int `json:"common_weak"`
}

// LengthSummary describes the length distribution of non-empty passwords.
type LengthSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
}

// AttackTiming buckets sessions by when they happened.
type AttackTiming struct {
	// HourlyDistribution maps hour of day (0-23) to session count.
	HourlyDistribution map[int]int `json:"hourly_distribution"`
	// DailyDistribution maps weekday (Monday=0 .. Sunday=6) to session count.
	DailyDistribution map[int]int `json:"daily_distribution"`
	// TimelineHeatmap maps hour of day to YYYY-MM-DD to session count.
	TimelineHeatmap map[int]map[string]int `json:"timeline_heatmap"`
}

// RankedCount is one key of a ranked frequency table.
type RankedCount struct {
	Key   string
	Count int
}

// RankedCounts marshals as a JSON object whose keys keep slice order, so a
// top-N list stays sorted on the wire.
type RankedCounts []RankedCount

// MarshalJSON implements json.Marshaler.
func (r RankedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rc := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rc.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(rc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map returns the counts keyed by value, dropping order.
func (r RankedCounts) Map() map[string]int {
	m := make(map[string]int, len(r))
	for _, rc := range r {
		m[rc.Key] = rc.Count
	}
	return m
}

// SessionLookup is the response of a single-session query.
type SessionLookup struct {
	Date    string  `json:"date"`
	Session Session `json:"session"`
}
