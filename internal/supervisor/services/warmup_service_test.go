// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/honeystat/internal/models"
)

type fakeDates struct {
	dates []string
	err   error
}

func (f fakeDates) AvailableDates() ([]string, error) { return f.dates, f.err }

type fakeSnapshots map[string][]string

func (f fakeSnapshots) Load(_ context.Context, date time.Time) *models.Snapshot {
	snap := &models.Snapshot{}
	for _, ip := range f[date.Format("20060102")] {
		snap.TopIPs = append(snap.TopIPs, models.IPCount{IP: ip, Count: 1})
	}
	return snap
}

type recordingResolver struct {
	calls [][]string
}

func (r *recordingResolver) ResolveAll(_ context.Context, ips []string) map[string]models.Location {
	r.calls = append(r.calls, append([]string(nil), ips...))
	out := make(map[string]models.Location, len(ips))
	for _, ip := range ips {
		out[ip] = models.Location{City: "Somewhere"}
	}
	return out
}

func TestGeoWarmupService_ResolvesNewestDays(t *testing.T) {
	dates := fakeDates{dates: []string{"20240113", "20240114", "20240115"}}
	snaps := fakeSnapshots{
		"20240113": {"203.0.113.1"},
		"20240114": {"198.51.100.2", "8.8.8.8"},
		"20240115": {"8.8.8.8", "", "192.0.2.9"},
	}
	resolver := &recordingResolver{}

	svc := NewGeoWarmupService(dates, snaps, resolver, 2)
	err := svc.Serve(context.Background())

	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() error = %v, want ErrDoNotRestart", err)
	}
	if len(resolver.calls) != 1 {
		t.Fatalf("ResolveAll calls = %d, want 1", len(resolver.calls))
	}
	want := []string{"8.8.8.8", "192.0.2.9", "198.51.100.2"}
	if !reflect.DeepEqual(resolver.calls[0], want) {
		t.Errorf("resolved %v, want %v", resolver.calls[0], want)
	}
}

func TestGeoWarmupService_Disabled(t *testing.T) {
	resolver := &recordingResolver{}
	svc := NewGeoWarmupService(fakeDates{dates: []string{"20240115"}}, fakeSnapshots{}, resolver, 0)

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() error = %v", err)
	}
	if len(resolver.calls) != 0 {
		t.Error("disabled warm-up resolved IPs")
	}
}

func TestGeoWarmupService_ListFailureIsRetried(t *testing.T) {
	listErr := errors.New("permission denied")
	svc := NewGeoWarmupService(fakeDates{err: listErr}, fakeSnapshots{}, &recordingResolver{}, 3)

	err := svc.Serve(context.Background())
	if !errors.Is(err, listErr) || errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() error = %v, want wrapped list error", err)
	}
}

func TestGeoWarmupService_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolver := &recordingResolver{}
	svc := NewGeoWarmupService(fakeDates{dates: []string{"20240115"}}, fakeSnapshots{"20240115": {"8.8.8.8"}}, resolver, 1)

	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
	if len(resolver.calls) != 0 {
		t.Error("resolver called after cancellation")
	}
}

func TestGeoWarmupService_String(t *testing.T) {
	svc := NewGeoWarmupService(fakeDates{}, fakeSnapshots{}, &recordingResolver{}, 1)
	if svc.String() != "geolocation-warmup" {
		t.Errorf("String() = %q", svc.String())
	}
}
