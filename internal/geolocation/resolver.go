// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package geolocation

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/honeystat/internal/cache"
	"github.com/tomtom215/honeystat/internal/logging"
	"github.com/tomtom215/honeystat/internal/metrics"
	"github.com/tomtom215/honeystat/internal/models"
)

// CacheType labels the resolver cache in cache metrics.
const CacheType = "geolocation"

// Options tunes a Resolver.
type Options struct {
	// Delay is slept after every attempt against a network source.
	Delay time.Duration

	// Concurrency bounds parallel lookups in ResolveAll. Defaults to 8.
	Concurrency int

	// Seed makes fallback picks reproducible. Zero seeds randomly.
	Seed uint64
}

// Resolver maps IP addresses to locations and never fails.
//
// Resolution order for an uncached address: the private-address rule, the
// sample table, each configured source in order, then a random sample.
// Whatever is chosen is cached under the exact IP string. Concurrent misses
// for one IP share a single resolution.
type Resolver struct {
	cache   *cache.LRU[models.Location]
	static  *StaticSource
	sources []Source
	group   singleflight.Group

	delay       time.Duration
	concurrency int

	rngMu sync.Mutex
	rng   *rand.Rand

	sleep func(ctx context.Context, d time.Duration)
}

// NewResolver creates a resolver backed by c and consulting sources after
// the sample table.
func NewResolver(c *cache.LRU[models.Location], opts Options, sources ...Source) *Resolver {
	if c == nil {
		c = cache.NewLRU[models.Location](cache.DefaultCapacity)
	}
	c.OnEvict(func(string, models.Location) {
		metrics.CacheEvictions.WithLabelValues(CacheType).Inc()
	})

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 8
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &Resolver{
		cache:       c,
		static:      NewStaticSource(),
		sources:     sources,
		delay:       opts.Delay,
		concurrency: concurrency,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		sleep:       sleepContext,
	}
}

// Resolve returns the location for ip.
func (r *Resolver) Resolve(ctx context.Context, ip string) models.Location {
	if loc, ok := r.cache.Get(ip); ok {
		metrics.RecordCacheAccess(CacheType, true)
		return loc.Clone()
	}
	metrics.RecordCacheAccess(CacheType, false)

	v, _, shared := r.group.Do(ip, func() (any, error) {
		// A resolution that finished between Get and Do already cached it.
		if loc, ok := r.cache.Peek(ip); ok {
			return loc, nil
		}
		// The result is cached and shared with other callers, so it must
		// not depend on the first caller staying connected. Sources bound
		// each attempt with their own timeout.
		loc := r.resolve(context.WithoutCancel(ctx), ip)
		r.cache.Add(ip, loc)
		metrics.CacheSize.WithLabelValues(CacheType).Set(float64(r.cache.Len()))
		return loc, nil
	})
	if shared {
		metrics.GeolocationDeduplicated.Inc()
	}
	return v.(models.Location).Clone()
}

// ResolveAll resolves every distinct address in ips using at most
// Options.Concurrency parallel lookups.
func (r *Resolver) ResolveAll(ctx context.Context, ips []string) map[string]models.Location {
	out := make(map[string]models.Location, len(ips))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	seen := make(map[string]struct{}, len(ips))
	for _, ip := range ips {
		if _, dup := seen[ip]; dup {
			continue
		}
		seen[ip] = struct{}{}

		g.Go(func() error {
			loc := r.Resolve(ctx, ip)
			mu.Lock()
			out[ip] = loc
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// CacheStats exposes the underlying cache counters.
func (r *Resolver) CacheStats() cache.Stats {
	return r.cache.Stats()
}

func (r *Resolver) resolve(ctx context.Context, ip string) models.Location {
	if IsPrivate(ip) {
		metrics.RecordGeolocationLookup(SourcePrivate, true, 0)
		return PrivateLocation(ip)
	}
	if loc, err := r.static.Lookup(ctx, ip); err == nil {
		metrics.RecordGeolocationLookup(SourceStatic, true, 0)
		return loc
	}

	for _, src := range r.sources {
		start := time.Now()
		loc, err := src.Lookup(ctx, ip)
		elapsed := time.Since(start)
		if isNetwork(src) {
			r.sleep(ctx, r.delay)
		}

		if err == nil {
			metrics.RecordGeolocationLookup(src.Name(), true, elapsed)
			return loc
		}
		if errors.Is(err, ErrNotFound) {
			logging.Debug().Str("ip", ip).Str("source", src.Name()).Msg("Address not in geolocation source")
			continue
		}
		metrics.RecordGeolocationLookup(src.Name(), false, elapsed)
		logging.Ctx(ctx).Warn().Err(err).Str("ip", ip).Str("source", src.Name()).Msg("Geolocation lookup failed")
	}

	metrics.RecordGeolocationLookup(SourceFallback, true, 0)
	return r.randomSample()
}

func (r *Resolver) randomSample() models.Location {
	r.rngMu.Lock()
	i := r.rng.IntN(len(samples))
	r.rngMu.Unlock()
	return SampleAt(i)
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
