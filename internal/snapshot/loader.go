// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

// Package snapshot reads the per-day analysis files produced by the honeypot
// log analyzer.
//
// A data directory looks like:
//
//	data/
//	  analysis.json            static report served without a date range
//	  analysis_20240115.json   one file per calendar day
//	  analysis_20240116.json
//
// Missing or unreadable days never abort a range: Load returns an empty
// snapshot and logs why.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeystat/internal/daterange"
	"github.com/tomtom215/honeystat/internal/logging"
	"github.com/tomtom215/honeystat/internal/metrics"
	"github.com/tomtom215/honeystat/internal/models"
)

const (
	filePrefix = "analysis_"
	fileSuffix = ".json"

	// DefaultFallbackFile is the undated report name.
	DefaultFallbackFile = "analysis.json"
)

// Loader reads snapshots from a single directory.
type Loader struct {
	dir          string
	fallbackFile string
}

// NewLoader creates a Loader over dir. An empty fallbackFile means analysis.json.
func NewLoader(dir, fallbackFile string) *Loader {
	if fallbackFile == "" {
		fallbackFile = DefaultFallbackFile
	}
	return &Loader{dir: dir, fallbackFile: fallbackFile}
}

// Dir returns the data directory.
func (l *Loader) Dir() string {
	return l.dir
}

// FileName returns analysis_YYYYMMDD.json for date.
func FileName(date time.Time) string {
	return filePrefix + daterange.Compact(date) + fileSuffix
}

// Path returns the snapshot path for date.
func (l *Loader) Path(date time.Time) string {
	return filepath.Join(l.dir, FileName(date))
}

// Read loads the snapshot for date. It returns models.ErrSnapshotUnavailable
// when no file exists and models.ErrSnapshotCorrupt when the file is not
// valid UTF-8 JSON of the expected shape.
func (l *Loader) Read(date time.Time) (*models.Snapshot, error) {
	path := l.Path(date)

	data, err := os.ReadFile(path) //nolint:gosec // path is built from a validated date
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrSnapshotUnavailable, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", models.ErrSnapshotCorrupt, path, err)
	}
	return decode(path, data)
}

func decode(path string, data []byte) (*models.Snapshot, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: invalid UTF-8", models.ErrSnapshotCorrupt, path)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrSnapshotCorrupt, path, err)
	}
	return &snap, nil
}

// Load is Read with the degrade-gracefully policy applied: any failure is
// logged and yields an empty snapshot.
func (l *Loader) Load(ctx context.Context, date time.Time) *models.Snapshot {
	start := time.Now()
	snap, err := l.Read(date)

	switch {
	case err == nil:
		metrics.RecordSnapshotLoad(metrics.SnapshotLoaded, time.Since(start))
		return snap
	case errors.Is(err, models.ErrSnapshotUnavailable):
		metrics.RecordSnapshotLoad(metrics.SnapshotMissing, time.Since(start))
		logging.Ctx(ctx).Debug().Str("date", daterange.Compact(date)).Msg("No snapshot for date")
	default:
		metrics.RecordSnapshotLoad(metrics.SnapshotCorrupt, time.Since(start))
		logging.Ctx(ctx).Warn().Err(err).
			Str("date", daterange.Compact(date)).
			Str("path", l.Path(date)).
			Msg("Skipping unreadable snapshot")
	}
	return &models.Snapshot{}
}

// LoadStatic returns the raw bytes of the undated report. It returns
// models.ErrNoFallbackData when the file does not exist.
func (l *Loader) LoadStatic() (json.RawMessage, error) {
	path := filepath.Join(l.dir, l.fallbackFile)

	data, err := os.ReadFile(path) //nolint:gosec // fixed file name under the data dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.ErrNoFallbackData
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) || !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", models.ErrSnapshotCorrupt, path)
	}
	return json.RawMessage(data), nil
}

// AvailableDates lists the YYYYMMDD dates that have a snapshot file, oldest
// first. Only names of the exact form analysis_YYYYMMDD.json with a real
// calendar date count. A missing directory yields an empty list.
func (l *Loader) AvailableDates() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	dates := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if date, ok := DateFromFileName(entry.Name()); ok {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// DateFromFileName extracts YYYYMMDD from analysis_YYYYMMDD.json.
func DateFromFileName(name string) (string, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return "", false
	}
	date := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	if !daterange.Valid(date) {
		return "", false
	}
	return date, true
}

// Ready reports whether the data directory exists and can be listed.
func (l *Loader) Ready() error {
	info, err := os.Stat(l.dir)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory %s is not a directory", l.dir)
	}
	f, err := os.Open(l.dir)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("data directory: %w", err)
	}
	return nil
}
