// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package aggregate

import (
	"slices"

	"github.com/tomtom215/honeystat/internal/models"
)

// accumulator is the mutable state shared across the days of one request.
type accumulator struct {
	totalSessions int
	ips           *Counter
	usernames     *Counter
	commands      *Counter
	daily         map[string]int
	sessions      []models.Session
}

func newAccumulator(days int) *accumulator {
	return &accumulator{
		ips:       NewCounter(),
		usernames: NewCounter(),
		commands:  NewCounter(),
		daily:     make(map[string]int, days),
	}
}

// addDay merges one snapshot. key is the YYYY-MM-DD daily_sessions key; it
// is always recorded, with 0 unless the snapshot reports statistics.
func (a *accumulator) addDay(key string, snap *models.Snapshot) {
	a.daily[key] = 0
	if snap == nil {
		return
	}

	if snap.Statistics != nil {
		a.totalSessions += snap.Statistics.TotalSessions
		a.daily[key] = snap.Statistics.TotalSessions
	}

	for _, ip := range snap.TopIPs {
		a.ips.Add(ip.IP, ip.Count)
	}

	for _, cmd := range snap.DangerousCommands {
		if cmd.Valid() {
			a.commands.Add(cmd.Command, cmd.Count)
		}
	}

	for _, entry := range snap.SessionDetails {
		s := entry.Flatten()
		a.sessions = append(a.sessions, s)
		if s.Username != "" {
			a.usernames.Add(s.Username, 1)
		}
	}
}

// derived holds the session-level analyses computed by the engine.
type derived struct {
	geo           map[string]models.Location
	totalCommands int
	failed        map[string]int
	successful    map[string]int
	passwords     models.PasswordAnalysis
	timing        models.AttackTiming
}

// assemble packs accumulated and derived values into the report shape. It
// computes nothing.
func assemble(acc *accumulator, sessions []models.Session, d derived) *models.Report {
	return &models.Report{
		Sessions:    sessions,
		AllSessions: slices.Clone(sessions),
		Statistics: models.ReportStatistics{
			TotalSessions: acc.totalSessions,
			UniqueIPs:     acc.ips.Len(),
			TotalCommands: d.totalCommands,
		},
		TopIPs:            acc.ips.Map(),
		TopUsernames:      acc.usernames.Map(),
		DangerousCommands: acc.commands.Map(),
		DailySessions:     acc.daily,
		GeoData:           d.geo,
		FailedLogins:      d.failed,
		SuccessfulLogins:  d.successful,
		PasswordAnalysis:  d.passwords,
		AttackTiming:      d.timing,
	}
}
