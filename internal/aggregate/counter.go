// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package aggregate

import (
	"slices"

	"github.com/tomtom215/honeystat/internal/models"
)

// Counter is a frequency table that remembers the order keys were first seen.
type Counter struct {
	index   map[string]int
	entries []models.RankedCount
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add increments key by n.
func (c *Counter) Add(key string, n int) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Count += n
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, models.RankedCount{Key: key, Count: n})
}

// Get returns the count for key.
func (c *Counter) Get(key string) int {
	if i, ok := c.index[key]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int { return len(c.entries) }

// Keys returns keys in first-seen order.
func (c *Counter) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Map returns a copy of the counts.
func (c *Counter) Map() map[string]int {
	m := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		m[e.Key] = e.Count
	}
	return m
}

// MostCommon returns the n highest counts in descending order. Equal counts
// keep first-seen order. n <= 0 returns every key.
func (c *Counter) MostCommon(n int) models.RankedCounts {
	ranked := slices.Clone(c.entries)
	slices.SortStableFunc(ranked, func(a, b models.RankedCount) int {
		return b.Count - a.Count
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = models.RankedCounts{}
	}
	return ranked
}
