// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package aggregate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/montanaflynn/stats"

	"github.com/tomtom215/honeystat/internal/models"
)

// TopPasswordsLimit caps password_analysis.top_passwords.
const TopPasswordsLimit = 20

// specialChars is the punctuation that qualifies a password for special_chars.
const specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// weakPasswords is matched case-insensitively.
var weakPasswords = map[string]struct{}{
	"admin": {}, "root": {}, "password": {}, "123456": {}, "12345": {}, "qwerty": {},
	"test": {}, "guest": {}, "1234": {}, "administrator": {}, "user": {}, "login": {},
	"123": {}, "pass": {}, "default": {}, "toor": {}, "oracle": {}, "postgres": {},
	"mysql": {}, "ubuntu": {}, "centos": {}, "redhat": {}, "debian": {},
}

type pattern int

const (
	patternNone pattern = iota
	patternNumeric
	patternAlpha
	patternAlphanumeric
	patternSpecial
)

// classify places a non-empty password in the first matching bucket:
// all digits, all letters, all letters or numbers, then any specialChars.
// Digits include superscript, subscript and circled forms, not only Nd.
// Passwords matching none (for example letters plus a space) get patternNone.
func classify(p string) pattern {
	switch {
	case all(p, isDigit):
		return patternNumeric
	case all(p, unicode.IsLetter):
		return patternAlpha
	case all(p, isAlnum):
		return patternAlphanumeric
	case strings.ContainsAny(p, specialChars):
		return patternSpecial
	default:
		return patternNone
	}
}

// digitForms holds the characters with a digit value outside category Nd
// (Unicode Numeric_Type=Digit).
var digitForms = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(digitForms, r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func all(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// IsWeakPassword reports whether p is on the common weak password list.
func IsWeakPassword(p string) bool {
	_, ok := weakPasswords[strings.ToLower(p)]
	return ok
}

// analyzePasswords tallies every session's password. Lengths count runes.
func analyzePasswords(sessions []models.Session) models.PasswordAnalysis {
	lengths := make(map[int]int)
	counts := NewCounter()
	var dist models.PatternDistribution
	var lengthData []float64

	for i := range sessions {
		p := sessions[i].Password
		if p == "" {
			dist.Empty++
			continue
		}

		n := utf8.RuneCountInString(p)
		lengths[n]++
		lengthData = append(lengthData, float64(n))
		counts.Add(p, 1)

		switch classify(p) {
		case patternNumeric:
			dist.NumericOnly++
		case patternAlpha:
			dist.AlphaOnly++
		case patternAlphanumeric:
			dist.Alphanumeric++
		case patternSpecial:
			dist.SpecialChars++
		}
		if IsWeakPassword(p) {
			dist.CommonWeak++
		}
	}

	return models.PasswordAnalysis{
		LengthDistribution:  lengths,
		PatternDistribution: dist,
		TopPasswords:        counts.MostCommon(TopPasswordsLimit),
		LengthSummary:       summarizeLengths(lengthData),
	}
}

func summarizeLengths(data []float64) *models.LengthSummary {
	if len(data) == 0 {
		return nil
	}
	var summary models.LengthSummary
	summary.Mean, _ = stats.Mean(data)
	summary.Median, _ = stats.Median(data)
	if p95, err := stats.Percentile(data, 95); err == nil {
		summary.P95 = p95
	}
	return &summary
}
