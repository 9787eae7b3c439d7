// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/honeystat/internal/models"
)

func TestLoader_FindSession(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "analysis_20240115.json", daySnapshot)
	writeFile(t, dir, "analysis_20240116.json", `{"session_details": {"s-1": {"ip": "1.1.1.1"}}}`)
	l := NewLoader(dir, "")
	ctx := context.Background()

	t.Run("newest day wins without a date", func(t *testing.T) {
		got, err := l.FindSession(ctx, "s-1", "")
		if err != nil {
			t.Fatalf("FindSession() error = %v", err)
		}
		if got.Date != "20240116" || got.Session.IPAddress != "1.1.1.1" {
			t.Errorf("unexpected lookup: %+v", got)
		}
	})

	t.Run("date restricts the search", func(t *testing.T) {
		got, err := l.FindSession(ctx, "s-1", "20240115")
		if err != nil {
			t.Fatalf("FindSession() error = %v", err)
		}
		if got.Session.Username != "root" || got.Session.Password != "toor" {
			t.Errorf("unexpected session: %+v", got.Session)
		}
		if len(got.Session.Commands) != 1 {
			t.Errorf("expected 1 command, got %v", got.Session.Commands)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := l.FindSession(ctx, "nope", ""); !errors.Is(err, models.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		if _, err := l.FindSession(ctx, "s-1", "2024-01-15"); !errors.Is(err, models.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := l.FindSession(cctx, "s-1", ""); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
