// Package service implements the calendar aggregator: static name days and
// ICS events merged into one snapshot per call
package service

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"dashboard/internal/adapters/calendar/holidays"
	"dashboard/internal/adapters/calendar/ics"
	"dashboard/internal/adapters/calendar/namedays"
	"dashboard/internal/core/calendar"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/logger"
	ptime "dashboard/internal/platform/time"
	dom "dashboard/internal/services/calendar/domain"
)

// Service implements domain.BuilderPort and domain.LookupPort
// It holds no mutable state; concurrent calls build independent snapshots
type Service struct {
	cfg      dom.Config
	clock    ptime.Clock
	holidays *holidays.Source
}

// New constructs the aggregator; a nil clock means the wall clock
func New(cfg dom.Config, clock ptime.Clock) *Service {
	if cfg.YearsAhead < 0 {
		cfg.YearsAhead = 0
	}
	return &Service{
		cfg:      cfg,
		clock:    ptime.Or(clock),
		holidays: holidays.Finnish(),
	}
}

// Years is the window of the next build: the current year through YearsAhead
func (s *Service) Years() []int {
	return ptime.Years(s.clock.Now(), s.cfg.YearsAhead)
}

// NamedaysPath resolves the static table location
func (s *Service) NamedaysPath() string {
	p := s.cfg.NamedaysFile
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.cfg.Dir, p)
}

// Build implements domain.BuilderPort
func (s *Service) Build(ctx context.Context) (calendar.Snapshot, error) {
	return s.build(ctx, s.Years())
}

// Lookup implements domain.LookupPort. A date outside the window widens it to
// that date's year
func (s *Service) Lookup(ctx context.Context, date string) (calendar.Day, error) {
	at, err := time.Parse(calendar.DateLayout, date)
	if err != nil {
		return calendar.Day{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "date %q must look like 2006-01-02", date), "date")
	}
	years := s.Years()
	if !slices.Contains(years, at.Year()) {
		years = append(years, at.Year())
		slices.Sort(years)
	}
	snap, err := s.build(ctx, years)
	if err != nil {
		return calendar.Day{}, err
	}
	return snap.Day(date), nil
}

func (s *Service) build(ctx context.Context, years []int) (calendar.Snapshot, error) {
	start := time.Now()

	// soft: a missing or broken static table only costs its entries
	proj := namedays.Project(s.NamedaysPath(), years...)

	// hard: every scan failure fails the build
	sc := ics.New(ics.Options{Dir: s.cfg.Dir, Window: ics.Years(years...)})
	events, err := sc.Scan(ctx)
	if err != nil {
		return calendar.Snapshot{}, err
	}

	m := calendar.NewMerger()
	m.SeedNamedays(proj)
	added := m.AddAll(events)
	builtin := 0
	if s.cfg.BuiltinHolidays {
		builtin = s.holidays.AddTo(m, years...)
	}
	snap := m.Snapshot()

	logger.C(ctx).Debug().
		Str("component", "calendar").
		Ints("years", years).
		Int("static_dates", len(proj)).
		Int("events", added).
		Int("builtin_holidays", builtin).
		Int("dates", len(snap.Dates())).
		Dur("elapsed", time.Since(start)).
		Msg("calendar snapshot built")
	return snap, nil
}
