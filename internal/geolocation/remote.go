// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package geolocation

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/time/rate"

	"github.com/tomtom215/honeystat/internal/models"
)

// Defaults substituted for fields the remote service leaves out.
const (
	unknownField       = "Unknown"
	unknownCountryCode = "UN"
)

// RemoteConfig configures a RemoteSource.
type RemoteConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables outbound pacing
	Burst             int
	BreakerFailures   uint32
	BreakerTimeout    time.Duration
}

// RemoteSource looks addresses up against an ipapi.co compatible JSON
// service at {BaseURL}/{ip}/json/.
//
// Every request passes a token bucket limiter and a circuit breaker; once the
// breaker opens, lookups fail immediately until the breaker timeout elapses.
type RemoteSource struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker[models.Location]
	limiter *rate.Limiter
}

// ipapiResponse is the subset of the ipapi.co payload we consume. The service
// reports failures with HTTP 200 and an "error" member, so its presence alone
// marks the lookup failed.
type ipapiResponse struct {
	Error       json.RawMessage `json:"error"`
	Reason      string          `json:"reason"`
	CountryName string          `json:"country_name"`
	CountryCode string          `json:"country_code"`
	City        string          `json:"city"`
	Region      string          `json:"region"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Org         string          `json:"org"`
	Timezone    string          `json:"timezone"`
}

// NewRemoteSource creates a remote source from cfg.
func NewRemoteSource(cfg RemoteConfig) *RemoteSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "honeystat").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &RemoteSource{
		client:  client,
		breaker: newBreaker("geolocation-"+SourceIPAPI, cfg.BreakerFailures, cfg.BreakerTimeout),
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Name implements Source.
func (s *RemoteSource) Name() string { return SourceIPAPI }

func (s *RemoteSource) outbound() bool { return true }

// Lookup implements Source. Every failure wraps models.ErrGeolocationLookupFailed.
func (s *RemoteSource) Lookup(ctx context.Context, ip string) (models.Location, error) {
	if net.ParseIP(ip) == nil {
		return models.Location{}, fmt.Errorf("%w: invalid IP address %q", models.ErrGeolocationLookupFailed, ip)
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return models.Location{}, fmt.Errorf("%w: rate limiter: %w", models.ErrGeolocationLookupFailed, err)
	}

	loc, err := s.breaker.Execute(func() (models.Location, error) {
		return s.fetch(ctx, ip)
	})
	recordBreakerResult(s.breaker, err)
	if err != nil {
		if isRejected(err) {
			return models.Location{}, fmt.Errorf("%w: %w", models.ErrGeolocationLookupFailed, err)
		}
		return models.Location{}, err
	}
	return loc, nil
}

func (s *RemoteSource) fetch(ctx context.Context, ip string) (models.Location, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("ip", ip).
		Get("/{ip}/json/")
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: request: %w", models.ErrGeolocationLookupFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.Location{}, fmt.Errorf("%w: status %d", models.ErrGeolocationLookupFailed, resp.StatusCode())
	}

	var body ipapiResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Location{}, fmt.Errorf("%w: decode: %w", models.ErrGeolocationLookupFailed, err)
	}
	if len(body.Error) > 0 {
		return models.Location{}, fmt.Errorf("%w: service error: %s", models.ErrGeolocationLookupFailed, body.Reason)
	}

	return body.toLocation(), nil
}

func (r *ipapiResponse) toLocation() models.Location {
	return models.Location{
		Country:     orDefault(r.CountryName, unknownField),
		CountryCode: orDefault(r.CountryCode, unknownCountryCode),
		City:        orDefault(r.City, unknownField),
		Region:      orDefault(r.Region, unknownField),
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		ISP:         orDefault(r.Org, unknownField),
		Timezone:    orDefault(r.Timezone, unknownField),
	}
}

// orDefault NFC-normalizes s, substituting def when s is blank.
func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return norm.NFC.String(s)
}
