// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package daterange

import (
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/honeystat/internal/models"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"valid", "20240115", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"leap day", "20240229", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"not a leap year", "20230229", time.Time{}, true},
		{"month 13", "20241301", time.Time{}, true},
		{"dashed", "2024-01-15", time.Time{}, true},
		{"short", "2024115", time.Time{}, true},
		{"letters", "2024O115", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseDate(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRange_InvalidDateRange(t *testing.T) {
	t.Parallel()

	if _, _, err := ParseRange("2024-13-01", "20240105"); !errors.Is(err, models.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for malformed start, got %v", err)
	}
	if _, _, err := ParseRange("20240101", "20241301"); !errors.Is(err, models.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for month 13 end, got %v", err)
	}
	if _, _, err := ParseRange("20240105", "20240101"); err != nil {
		t.Errorf("reversed range should parse, got %v", err)
	}
}

func TestEnumerateDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     string
		end       string
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{"single day", "20240115", "20240115", 1, "2024-01-15", "2024-01-15"},
		{"month rollover", "20240130", "20240202", 4, "2024-01-30", "2024-02-02"},
		{"year rollover", "20231230", "20240102", 4, "2023-12-30", "2024-01-02"},
		{"leap february", "20240227", "20240301", 4, "2024-02-27", "2024-03-01"},
		{"full leap year", "20240101", "20241231", 366, "2024-01-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, _ := ParseDate(tt.start)
			end, _ := ParseDate(tt.end)

			dates := EnumerateDates(start, end)
			if len(dates) != tt.wantLen {
				t.Fatalf("expected %d dates, got %d", tt.wantLen, len(dates))
			}
			if Days(start, end) != tt.wantLen {
				t.Errorf("Days = %d, want %d", Days(start, end), tt.wantLen)
			}
			if Key(dates[0]) != tt.wantFirst || Key(dates[len(dates)-1]) != tt.wantLast {
				t.Errorf("range = %s..%s, want %s..%s",
					Key(dates[0]), Key(dates[len(dates)-1]), tt.wantFirst, tt.wantLast)
			}
			for i := 1; i < len(dates); i++ {
				if !dates[i].After(dates[i-1]) {
					t.Errorf("dates not increasing at %d: %v then %v", i, dates[i-1], dates[i])
				}
			}
		})
	}
}

func TestEnumerateDates_EndBeforeStart(t *testing.T) {
	t.Parallel()

	start, _ := ParseDate("20240110")
	end, _ := ParseDate("20240101")
	dates := EnumerateDates(start, end)
	if dates == nil || len(dates) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", dates)
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if Compact(d) != "20240309" {
		t.Errorf("Compact = %s", Compact(d))
	}
	if Key(d) != "2024-03-09" {
		t.Errorf("Key = %s", Key(d))
	}
	if !Valid("20240309") || Valid("2024-03-09") {
		t.Error("Valid returned unexpected result")
	}
}

func TestDaysWideSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"whole calendar", "00010101", "99991231", 3652059},
		{"five centuries", "15000101", "19991231", 182621},
		{"pre epoch", "19691231", "19700101", 2},
		{"reversed", "99991231", "00010101", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, err := ParseDate(tt.start)
			if err != nil {
				t.Fatal(err)
			}
			end, err := ParseDate(tt.end)
			if err != nil {
				t.Fatal(err)
			}
			if got := Days(start, end); got != tt.want {
				t.Errorf("Days(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestCheckSpan(t *testing.T) {
	t.Parallel()

	start, _ := ParseDate("20240101")
	leapEnd, _ := ParseDate("20241231")
	farEnd, _ := ParseDate("99991231")

	if err := CheckSpan(start, leapEnd, 366); err != nil {
		t.Errorf("366 day range with max 366: %v", err)
	}
	err := CheckSpan(start, leapEnd, 365)
	if !errors.Is(err, ErrRangeTooWide) || !errors.Is(err, models.ErrInvalidDateRange) {
		t.Errorf("366 day range with max 365: got %v, want ErrRangeTooWide and ErrInvalidDateRange", err)
	}
	if err := CheckSpan(start, farEnd, 0); err != nil {
		t.Errorf("zero max should disable the check, got %v", err)
	}
	if err := CheckSpan(leapEnd, start, 1); err != nil {
		t.Errorf("reversed range is empty, got %v", err)
	}
}
