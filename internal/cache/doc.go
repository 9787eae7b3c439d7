// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

// Package cache provides the bounded in-memory cache used for IP geolocation.
//
// LRU is generic over the stored value and keyed by string:
//
//	geo := cache.NewLRU[models.Location](1000)
//	geo.Add("8.8.8.8", loc)
//	if loc, ok := geo.Get("8.8.8.8"); ok {
//	    ...
//	}
//
// All methods are safe for concurrent use. The cache never expires entries by
// time; the least recently used entry is evicted once capacity is reached.
package cache
