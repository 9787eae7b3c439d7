// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package aggregate

import (
	"reflect"
	"testing"
)

func TestCounter(t *testing.T) {
	c := NewCounter()
	c.Add("b", 2)
	c.Add("a", 1)
	c.Add("c", 2)
	c.Add("a", 1)
	c.Add("d", 5)

	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	if c.Get("a") != 2 || c.Get("missing") != 0 {
		t.Errorf("Get: a=%d missing=%d", c.Get("a"), c.Get("missing"))
	}
	if got, want := c.Keys(), []string{"b", "a", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	ranked := c.MostCommon(0)
	var keys []string
	for _, rc := range ranked {
		keys = append(keys, rc.Key)
	}
	// b, a and c tie at 2 and keep first-seen order.
	if want := []string{"d", "b", "a", "c"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("MostCommon(0) keys = %v, want %v", keys, want)
	}

	if top := c.MostCommon(2); len(top) != 2 || top[0].Key != "d" || top[1].Key != "b" {
		t.Errorf("MostCommon(2) = %v", top)
	}

	// MostCommon must not reorder the counter itself.
	if c.Keys()[0] != "b" {
		t.Errorf("MostCommon reordered the counter: %v", c.Keys())
	}
}

func TestCounterEmpty(t *testing.T) {
	c := NewCounter()
	if got := c.MostCommon(20); got == nil || len(got) != 0 {
		t.Errorf("MostCommon on empty counter = %#v, want empty non-nil", got)
	}
	if m := c.Map(); len(m) != 0 {
		t.Errorf("Map() = %v", m)
	}
}
