// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package geolocation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMaxMindErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "GeoLite2-City.mmdb")
	if err := os.WriteFile(garbage, []byte("not a maxmind database"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(dir, "missing.mmdb")},
		{"invalid file", garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := OpenMaxMind(tt.path)
			if err == nil {
				_ = src.Close()
				t.Fatalf("OpenMaxMind(%q) succeeded, want error", tt.path)
			}
		})
	}
}

func TestMaxMindSourceCloseNil(t *testing.T) {
	var src *MaxMindSource
	if err := src.Close(); err != nil {
		t.Errorf("Close() on nil source = %v", err)
	}
}
