// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

/*
Package geolocation resolves attacker IP addresses to locations.

A Resolver consults, in order:

  - the private-address rule, which maps 192.168.*, 10.*, 172.*, 127.0.0.1
    and localhost onto the sample table by last octet
  - the fixed sample table
  - each configured Source (MaxMindSource, RemoteSource)
  - a random sample entry

Every result is cached under the exact IP string in a bounded LRU, so a
failed lookup is never retried within the process. RemoteSource calls pass
through a rate limiter and a circuit breaker and are followed by a short
pacing delay.
*/
package geolocation
