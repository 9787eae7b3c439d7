// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package models

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	"github.com/goccy/go-json"
)

// Snapshot is one day of honeypot activity as written to analysis_YYYYMMDD.json.
// Absent sections decode to their zero value.
type Snapshot struct {
	Metadata          *SnapshotMetadata   `json:"metadata,omitempty"`
	Statistics        *SnapshotStatistics `json:"statistics,omitempty"`
	TopIPs            []IPCount           `json:"top_ips,omitempty"`
	DangerousCommands []CommandCount      `json:"dangerous_commands,omitempty"`
	SessionDetails    SessionDetails      `json:"session_details,omitempty"`
}

// SnapshotMetadata describes how the snapshot was produced. Informational only.
type SnapshotMetadata struct {
	ReportDate     string          `json:"report_date,omitempty"`
	AnalysisPeriod *AnalysisPeriod `json:"analysis_period,omitempty"`
}

// AnalysisPeriod is the time window a snapshot covers.
type AnalysisPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SnapshotStatistics holds the producer's per-day counters.
type SnapshotStatistics struct {
	TotalSessions int `json:"total_sessions"`
	UniqueIPs     int `json:"unique_ips"`
}

// IPCount is one entry of top_ips.
type IPCount struct {
	IP    string `json:"ip"`
	Count int    `json:"count"`
}

// CommandCount is one entry of dangerous_commands. Entries that are not
// objects, or lack either field, decode without error but report !Valid().
type CommandCount struct {
	Command string
	Count   int
	valid   bool
}

// Valid reports whether both command and count were present.
func (c CommandCount) Valid() bool { return c.valid }

// NewCommandCount builds a valid entry.
func NewCommandCount(command string, count int) CommandCount {
	return CommandCount{Command: command, Count: count, valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CommandCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*c = CommandCount{}
		return nil
	}
	var raw struct {
		Command *string `json:"command"`
		Count   *int    `json:"count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = CommandCount{}
	if raw.Command != nil && raw.Count != nil {
		*c = NewCommandCount(*raw.Command, *raw.Count)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c CommandCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Command string `json:"command"`
		Count   int    `json:"count"`
	}{c.Command, c.Count})
}

// SessionRecord is a single session as stored under session_details.
type SessionRecord struct {
	IP                string       `json:"ip"`
	Timestamp         string       `json:"timestamp"`
	Login             LoginAttempt `json:"login"`
	Commands          []string     `json:"commands"`
	DangerousCommands []string     `json:"dangerous_commands"`
	Downloads         []Download   `json:"downloads"`
}

// LoginAttempt holds the credentials an attacker tried.
type LoginAttempt struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

// Download is a file fetched during a session.
type Download struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// SessionEntry pairs a session ID with its record.
type SessionEntry struct {
	ID     string
	Record SessionRecord
}

// SessionDetails is the session_details object kept in file order, so that
// first-seen tie breaks downstream are reproducible.
type SessionDetails []SessionEntry

// UnmarshalJSON implements json.Unmarshaler. Object keys are streamed with
// encoding/json's tokenizer; goccy/go-json exposes no ordered key walk.
func (d *SessionDetails) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = nil
		return nil
	}

	dec := stdjson.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(stdjson.Delim); !ok || delim != '{' {
		return fmt.Errorf("session_details: expected object, got %v", tok)
	}

	entries := make(SessionDetails, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("session_details: expected string key, got %v", keyTok)
		}
		var raw stdjson.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("session_details[%s]: %w", id, err)
		}
		var rec SessionRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("session_details[%s]: %w", id, err)
		}
		entries = append(entries, SessionEntry{ID: id, Record: rec})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = entries
	return nil
}

// MarshalJSON implements json.Marshaler, writing entries in slice order.
func (d SessionDetails) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.ID)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Record)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Flatten converts the entry into the row shape used by reports. Missing
// lists become empty slices so they encode as [] rather than null.
func (e SessionEntry) Flatten() Session {
	s := Session{
		SessionID:         e.ID,
		IPAddress:         e.Record.IP,
		Timestamp:         e.Record.Timestamp,
		Username:          e.Record.Login.Username,
		Password:          e.Record.Login.Password,
		LoginStatus:       e.Record.Login.Status,
		Commands:          e.Record.Commands,
		DangerousCommands: e.Record.DangerousCommands,
		Downloads:         e.Record.Downloads,
	}
	if s.Commands == nil {
		s.Commands = []string{}
	}
	if s.DangerousCommands == nil {
		s.DangerousCommands = []string{}
	}
	if s.Downloads == nil {
		s.Downloads = []Download{}
	}
	return s
}
