// Honeystat - Honeypot Session Analytics and Attack Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeystat

// Command honeygen writes mock analysis_YYYYMMDD.json snapshots so the
// dashboard can be exercised without a live honeypot.
//
//	honeygen -start 20240101 -end 20240107 -out data -seed 42
//
// Without -start and -end it covers the last seven days, today included.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/honeystat/internal/daterange"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, now time.Time) error {
	var (
		startFlag string
		endFlag   string
		outFlag   string
		seedFlag  uint64
	)

	fs := flag.NewFlagSet("honeygen", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&startFlag, "start", "", "first day to generate (YYYYMMDD, default six days before -end)")
	fs.StringVar(&endFlag, "end", "", "last day to generate (YYYYMMDD, default today)")
	fs.StringVar(&outFlag, "out", "data", "output directory")
	fs.Uint64Var(&seedFlag, "seed", 0, "random seed (0 picks one)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if endFlag == "" {
		endFlag = daterange.Compact(now)
	}
	if startFlag == "" {
		end, err := daterange.ParseDate(endFlag)
		if err != nil {
			return err
		}
		startFlag = daterange.Compact(end.AddDate(0, 0, -6))
	}

	start, end, err := daterange.ParseRange(startFlag, endFlag)
	if err != nil {
		return err
	}
	dates := daterange.EnumerateDates(start, end)
	if len(dates) == 0 {
		return errors.New("-end is before -start")
	}

	if err := os.MkdirAll(outFlag, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(stdout, "Generating mock data from %s to %s\n", startFlag, endFlag)
	gen := NewGenerator(seedFlag)
	for _, date := range dates {
		n := gen.SessionsFor(date)
		data, err := json.MarshalIndent(gen.Day(date, n), "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", daterange.Compact(date), err)
		}

		path := filepath.Join(outFlag, "analysis_"+daterange.Compact(date)+".json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { //nolint:gosec // snapshots are read by the server process
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(stdout, "Generated %s with %d sessions\n", path, n)
	}
	return nil
}
