// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package aggregate merges a date range of daily honeypot snapshots into a
single models.Report.

Days are read one after another into shared counters. Every date in the range
gets a daily_sessions entry, zero when its snapshot is missing or unreadable.
Top IPs are resolved to locations as one deduplicated batch once all days
are merged. Password, login and attack timing analyses then run over the
concatenated session list.

Counters are plain sums, so the totals do not depend on the order days are
merged in. Only top_passwords tie-breaking uses first-seen order.
*/
package aggregate
