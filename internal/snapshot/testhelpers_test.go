// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package snapshot

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const daySnapshot = `{
  "statistics": {"total_sessions": 2, "unique_ips": 1},
  "top_ips": [{"ip": "9.9.9.9", "count": 2}],
  "dangerous_commands": [{"command": "rm -rf /", "count": 1}],
  "session_details": {
    "s-1": {"ip": "9.9.9.9", "timestamp": "2024-01-15T01:00:00Z",
            "login": {"username": "root", "password": "toor", "status": "failed"},
            "commands": ["uname -a"]},
    "s-2": {"ip": "9.9.9.9", "timestamp": "2024-01-15T02:00:00Z",
            "login": {"username": "root", "password": "root", "status": "success"}}
  }
}`
