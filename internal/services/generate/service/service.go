// Package service writes the calendar snapshot to disk for the static
// dashboard build, once or on a cron schedule
package service

import (
	"context"
	"encoding/json"
	"time"

	"dashboard/internal/core/calendar"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/files"
	"dashboard/internal/platform/logger"
	caldom "dashboard/internal/services/calendar/domain"
)

// DefaultOut is where the bulk file lands when no path is given
const DefaultOut = "static_data.json"

// Result describes one written file
type Result struct {
	Path  string
	Dates int
	Bytes int
}

// Generator builds snapshots and writes them as {"calendarData": ...}
type Generator struct {
	builder caldom.BuilderPort
	out     string
}

// New constructs a generator writing to out
func New(builder caldom.BuilderPort, out string) *Generator {
	if out == "" {
		out = DefaultOut
	}
	return &Generator{builder: builder, out: out}
}

// Out returns the output path
func (g *Generator) Out() string { return g.out }

// Run builds one snapshot and replaces the output file with it
// A failed build leaves any previous file untouched
func (g *Generator) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	snap, err := g.builder.Build(ctx)
	if err != nil {
		return Result{}, err
	}

	b, err := Encode(snap)
	if err != nil {
		return Result{}, err
	}
	if err := files.WriteAtomic(g.out, b, 0o644); err != nil {
		return Result{}, err
	}

	res := Result{Path: g.out, Dates: len(snap.Dates()), Bytes: len(b)}
	logger.C(ctx).Info().
		Str("path", res.Path).
		Int("dates", res.Dates).
		Int("bytes", res.Bytes).
		Dur("elapsed", time.Since(start)).
		Msg("static data written")
	return res, nil
}

// Encode renders the on-disk document with two-space indentation
func Encode(snap calendar.Snapshot) ([]byte, error) {
	b, err := json.MarshalIndent(calendar.Document{CalendarData: snap}, "", "  ")
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "encode static data")
	}
	return append(b, '\n'), nil
}
