// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/honeystat/internal/logging"
)

// sanitizeLogValue escapes control characters so request-supplied values
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func loggerFor(r *http.Request) *zerolog.Logger {
	return logging.Ctx(r.Context())
}

// hasQueryValue reports whether key is present with a non-empty value.
// The dashboard sends start_date= when a picker is cleared.
func hasQueryValue(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) != ""
}
