// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package aggregate

import (
	"strings"

	"github.com/tomtom215/honeystat/internal/models"
)

// loginOutcome maps a raw login status onto the tallies it feeds.
func loginOutcome(status string) (failed, succeeded bool) {
	switch strings.ToLower(status) {
	case "failed", "failure":
		return true, false
	case "success":
		return false, true
	}
	return false, false
}

// tallyLogins counts failed and successful attempts per username. Other
// statuses are ignored. The username is used as given, empty included.
func tallyLogins(sessions []models.Session) (failed, successful map[string]int) {
	failed = make(map[string]int)
	successful = make(map[string]int)
	for i := range sessions {
		f, s := loginOutcome(sessions[i].LoginStatus)
		switch {
		case f:
			failed[sessions[i].Username]++
		case s:
			successful[sessions[i].Username]++
		}
	}
	return failed, successful
}
