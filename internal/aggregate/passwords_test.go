// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package aggregate

import (
	"fmt"
	"testing"

	"github.com/tomtom215/honeystat/internal/models"
)

func sessionsWithPasswords(passwords ...string) []models.Session {
	out := make([]models.Session, len(passwords))
	for i, p := range passwords {
		out[i] = models.Session{SessionID: fmt.Sprintf("s%d", i), Password: p}
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		password string
		want     pattern
	}{
		{"123456", patternNumeric},
		{"٣٤٥", patternNumeric}, // Arabic-Indic digits
		{"²³", patternNumeric},
		{"①②", patternNumeric},
		{"₁⁰❶", patternNumeric},
		{"x²", patternAlphanumeric},
		{"⑩", patternAlphanumeric}, // numeric but not a digit
		{"password", patternAlpha},
		{"pässwörd", patternAlpha},
		{"admin123", patternAlphanumeric},
		{"p@ssw0rd!", patternSpecial},
		{"a-b", patternSpecial},
		{"pass word", patternNone},
		{"tab\there", patternNone},
		{"~~~", patternNone},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			if got := classify(tt.password); got != tt.want {
				t.Errorf("classify(%q) = %d, want %d", tt.password, got, tt.want)
			}
		})
	}
}

func TestIsWeakPassword(t *testing.T) {
	for _, p := range []string{"admin", "ADMIN", "Root", "123456", "toor", "debian"} {
		if !IsWeakPassword(p) {
			t.Errorf("IsWeakPassword(%q) = false", p)
		}
	}
	for _, p := range []string{"", "admin1", "password123", "hunter2"} {
		if IsWeakPassword(p) {
			t.Errorf("IsWeakPassword(%q) = true", p)
		}
	}
}

func TestAnalyzePasswords(t *testing.T) {
	sessions := sessionsWithPasswords("123456", "admin", "", "p@ss!", "admin", "Admin1", "123456", "", "pass word", "123456")
	got := analyzePasswords(sessions)

	dist := got.PatternDistribution
	want := models.PatternDistribution{
		NumericOnly:  3, // 123456 x3
		AlphaOnly:    2, // admin x2
		Alphanumeric: 1, // Admin1
		SpecialChars: 1, // p@ss!
		Empty:        2,
		CommonWeak:   5, // 123456 x3, admin x2
	}
	if dist != want {
		t.Errorf("PatternDistribution = %+v, want %+v", dist, want)
	}

	// Every non-empty password lands in at most one exclusive bucket.
	nonEmpty := len(sessions) - dist.Empty
	bucketed := dist.NumericOnly + dist.AlphaOnly + dist.Alphanumeric + dist.SpecialChars
	if bucketed != nonEmpty-1 { // "pass word" matches no bucket
		t.Errorf("bucketed = %d, want %d", bucketed, nonEmpty-1)
	}

	wantLengths := map[int]int{6: 4, 5: 3, 9: 1}
	for n, c := range wantLengths {
		if got.LengthDistribution[n] != c {
			t.Errorf("LengthDistribution[%d] = %d, want %d", n, got.LengthDistribution[n], c)
		}
	}
	if len(got.LengthDistribution) != len(wantLengths) {
		t.Errorf("LengthDistribution = %v", got.LengthDistribution)
	}

	top := got.TopPasswords
	if len(top) != 5 {
		t.Fatalf("TopPasswords = %v, want 5 distinct", top)
	}
	if top[0].Key != "123456" || top[0].Count != 3 || top[1].Key != "admin" || top[1].Count != 2 {
		t.Errorf("TopPasswords head = %v", top[:2])
	}
	// Ties at 1 keep first-seen order.
	if top[2].Key != "p@ss!" || top[3].Key != "Admin1" || top[4].Key != "pass word" {
		t.Errorf("TopPasswords tail = %v", top[2:])
	}

	if got.LengthSummary == nil {
		t.Fatal("LengthSummary is nil")
	}
	if got.LengthSummary.Mean != 6.0 {
		t.Errorf("LengthSummary.Mean = %v, want 6", got.LengthSummary.Mean)
	}
	if got.LengthSummary.Median != 6.0 {
		t.Errorf("LengthSummary.Median = %v, want 6", got.LengthSummary.Median)
	}
	if p := got.LengthSummary.P95; p < 5 || p > 9 {
		t.Errorf("LengthSummary.P95 = %v, want within [5, 9]", p)
	}
}

func TestAnalyzePasswordsTopLimitAndRunes(t *testing.T) {
	var passwords []string
	for i := 0; i < 30; i++ {
		passwords = append(passwords, fmt.Sprintf("pw%02d", i))
	}
	passwords = append(passwords, "pw29", "密码密码")
	got := analyzePasswords(sessionsWithPasswords(passwords...))

	if len(got.TopPasswords) != TopPasswordsLimit {
		t.Errorf("len(TopPasswords) = %d, want %d", len(got.TopPasswords), TopPasswordsLimit)
	}
	if got.TopPasswords[0].Key != "pw29" || got.TopPasswords[1].Key != "pw00" {
		t.Errorf("TopPasswords head = %v", got.TopPasswords[:2])
	}
	for i := 1; i < len(got.TopPasswords); i++ {
		if got.TopPasswords[i].Count > got.TopPasswords[i-1].Count {
			t.Fatalf("TopPasswords not sorted descending at %d: %v", i, got.TopPasswords)
		}
	}
	if got.LengthDistribution[4] != 32 {
		t.Errorf("LengthDistribution[4] = %d, want 32 (rune length)", got.LengthDistribution[4])
	}
}

func TestAnalyzePasswordsAllEmpty(t *testing.T) {
	got := analyzePasswords(sessionsWithPasswords("", ""))
	if got.PatternDistribution.Empty != 2 {
		t.Errorf("Empty = %d, want 2", got.PatternDistribution.Empty)
	}
	if len(got.LengthDistribution) != 0 || len(got.TopPasswords) != 0 {
		t.Errorf("empty passwords leaked into tallies: %+v", got)
	}
	if got.LengthSummary != nil {
		t.Errorf("LengthSummary = %+v, want nil", got.LengthSummary)
	}
}
