// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package main

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeystat/internal/models"
)

func TestSessionsFor(t *testing.T) {
	g := NewGenerator(1)
	weekday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) // Monday
	weekend := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC) // Saturday

	for i := 0; i < 200; i++ {
		if n := g.SessionsFor(weekday); n < 3 || n > 35 {
			t.Fatalf("weekday SessionsFor = %d, want within [3, 35]", n)
		}
		if n := g.SessionsFor(weekend); n < 1 || n > 22 {
			t.Fatalf("weekend SessionsFor = %d, want within [1, 22]", n)
		}
	}
}

func TestDay(t *testing.T) {
	g := NewGenerator(42)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		snap := g.Day(date, 20)

		if n := len(snap.TopIPs); n < 3 || n > 8 || snap.Statistics.UniqueIPs != n {
			t.Fatalf("top_ips = %d, unique_ips = %d", n, snap.Statistics.UniqueIPs)
		}
		if snap.Statistics.TotalSessions != 20 {
			t.Errorf("total_sessions = %d, want 20", snap.Statistics.TotalSessions)
		}

		hits := 0
		for j, ipc := range snap.TopIPs {
			if ipc.Count < 1 || ipc.Count > 10 {
				t.Errorf("top_ips[%d].count = %d", j, ipc.Count)
			}
			if j > 0 && ipc.Count > snap.TopIPs[j-1].Count {
				t.Errorf("top_ips not sorted descending: %v", snap.TopIPs)
			}
			hits += ipc.Count
		}
		if len(snap.SessionDetails) != hits {
			t.Errorf("sessions = %d, want one per hit (%d)", len(snap.SessionDetails), hits)
		}

		if n := len(snap.DangerousCommands); n > 4 {
			t.Errorf("dangerous_commands = %d entries", n)
		}
		for _, dc := range snap.DangerousCommands {
			if !dc.Valid() || dc.Count < 1 || dc.Count > 5 || !slices.Contains(dangerousCommands, dc.Command) {
				t.Errorf("dangerous command entry = %+v", dc)
			}
		}

		for j, e := range snap.SessionDetails {
			rec := e.Record
			if !strings.HasPrefix(rec.Timestamp, "2024-01-15T") || !strings.HasSuffix(rec.Timestamp, "Z") {
				t.Errorf("timestamp = %q", rec.Timestamp)
			}
			if j > 0 && e.ID <= snap.SessionDetails[j-1].ID {
				t.Errorf("session IDs not increasing: %s after %s", e.ID, snap.SessionDetails[j-1].ID)
			}
			normal := len(rec.Commands) - len(rec.DangerousCommands)
			if normal < 1 || normal > 10 || len(rec.DangerousCommands) > 2 {
				t.Errorf("commands = %v, dangerous = %v", rec.Commands, rec.DangerousCommands)
			}
			if len(rec.Downloads) > 1 {
				t.Errorf("downloads = %v", rec.Downloads)
			}
		}
	}
}

func TestDaySeeded(t *testing.T) {
	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	a, err := json.Marshal(NewGenerator(7).Day(date, 12))
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(NewGenerator(7).Day(date, 12))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("same seed produced different snapshots")
	}
}

func TestDayRoundTripsThroughSnapshot(t *testing.T) {
	snap := NewGenerator(3).Day(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), 10)
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}

	var got models.Snapshot
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(got.SessionDetails) != len(snap.SessionDetails) {
		t.Fatalf("sessions = %d, want %d", len(got.SessionDetails), len(snap.SessionDetails))
	}
	for i := range got.SessionDetails {
		if got.SessionDetails[i].ID != snap.SessionDetails[i].ID {
			t.Fatalf("session order changed at %d", i)
		}
	}
}
