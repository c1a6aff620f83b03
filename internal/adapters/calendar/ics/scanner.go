// Package ics reads a directory of iCalendar files into calendar events
// Files are classified by name; events of ignored files are discarded
package ics

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"dashboard/internal/core/calendar"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/logger"

	cerrors "cloudeng.io/errors"
	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

// Window lists the years recurring events are expanded into
// The zero Window disables expansion
type Window struct {
	years []int
}

// Years returns the window covering exactly the given years (UTC)
func Years(years ...int) Window {
	ys := slices.Clone(years)
	slices.Sort(ys)
	return Window{years: slices.Compact(ys)}
}

// IsZero reports whether expansion is disabled
func (w Window) IsZero() bool { return len(w.years) == 0 }

// Spans returns Jan 1 through Dec 31 of every year, in order
func (w Window) Spans() [][2]time.Time {
	out := make([][2]time.Time, 0, len(w.years))
	for _, y := range w.years {
		out = append(out, [2]time.Time{
			time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(y, time.December, 31, 23, 59, 59, 0, time.UTC),
		})
	}
	return out
}

// Options configures a Scanner
type Options struct {
	Dir    string
	Window Window
}

// Scanner lists and parses the ICS files of one flat directory
type Scanner struct {
	dir    string
	window Window
	log    *logger.Logger
}

// New builds a Scanner
func New(opts Options) *Scanner {
	return &Scanner{
		dir:    opts.Dir,
		window: opts.Window,
		log:    logger.Named("ics"),
	}
}

// Dir returns the scanned directory
func (s *Scanner) Dir() string { return s.dir }

// Files lists the .ics files of the directory (non-recursive, extension
// matched case-insensitively), sorted by name
func (s *Scanner) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "calendar directory %q not found", s.dir)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read calendar directory %q", s.dir)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), calendar.CalendarExtICS) {
			out = append(out, filepath.Join(s.dir, e.Name()))
		}
	}
	slices.Sort(out)
	return out, nil
}

// Scan parses every file and returns the events of non-ignored files in file
// order. Any failing file fails the scan; all failures are reported together
func (s *Scanner) Scan(ctx context.Context) ([]calendar.Event, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	var (
		events []calendar.Event
		errs   = &cerrors.M{}
	)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		evs, err := s.ScanFile(path)
		if err != nil {
			errs.Append(err)
			continue
		}
		events = append(events, evs...)
	}
	if err := errs.Err(); err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("calendar scan failed")
		return nil, err
	}

	s.log.Debug().Str("dir", s.dir).Int("files", len(files)).Int("events", len(events)).Msg("calendar scan done")
	return events, nil
}

// ScanFile parses one file; the result is empty for ignored files
func (s *Scanner) ScanFile(path string) ([]calendar.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "open %s", filepath.Base(path))
	}
	defer f.Close()

	evs, err := Parse(f, filepath.Base(path), s.window)
	if err != nil {
		return nil, err
	}
	if len(evs) == 0 && calendar.Classify(path) == calendar.SourceIgnored {
		s.log.Debug().Str("file", filepath.Base(path)).Msg("ignored calendar file")
	}
	return evs, nil
}

// Parse reads one iCalendar stream named name
// The stream is always parsed, even when name classifies as ignored. Empty or
// truncated streams are rejected
func Parse(r io.Reader, name string, w Window) ([]calendar.Event, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read %s", name)
	}
	if !closed(b) {
		return nil, perr.WithOp(perr.Newf(perr.ErrorCodeValidation, "%s: truncated calendar, no END:VCALENDAR", name), "ics.parse")
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(b))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "parse %s", name)
	}

	var out []calendar.Event
	ignored := calendar.Classify(name) == calendar.SourceIgnored
	for i, ev := range cal.Events() {
		if ev == nil {
			return nil, perr.WithOp(perr.Newf(perr.ErrorCodeValidation, "%s: event %d: truncated event", name, i+1), "ics.parse")
		}
		if ignored {
			continue
		}
		text := summaryOf(ev).text()

		dates, err := occurrences(ev, w)
		if err != nil {
			return nil, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeValidation, "%s: event %d", name, i+1), "ics.parse")
		}
		if text == "" {
			continue
		}
		for _, d := range dates {
			out = append(out, calendar.Event{Date: d, RawLabel: text, SourceFile: name})
		}
	}
	return out, nil
}

// closed reports whether the last non-blank line is END:VCALENDAR
func closed(b []byte) bool {
	b = bytes.TrimRight(b, " \t\r\n")
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		b = b[i+1:]
	}
	return strings.EqualFold(strings.TrimSpace(string(b)), "END:VCALENDAR")
}

// occurrences returns the calendar dates an event lands on: its DTSTART date,
// plus RRULE occurrences inside w minus EXDATEs
func occurrences(ev *ical.VEvent, w Window) ([]string, error) {
	p := ev.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return nil, perr.New(perr.ErrorCodeValidation, "missing DTSTART")
	}
	start, err := parseStamp(p.Value, p.ICalParameters)
	if err != nil {
		return nil, err
	}

	dates := []string{start.Date()}
	rr := ev.GetProperty(ical.ComponentPropertyRrule)
	if rr == nil || w.IsZero() {
		return dates, nil
	}

	rule, err := rrule.StrToRRule(rr.Value)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "bad RRULE %q", rr.Value)
	}
	rule.DTStart(start.at)

	excluded, err := exdates(ev)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{dates[0]: true}
	for _, span := range w.Spans() {
		for _, t := range rule.Between(span[0], span[1], true) {
			d := t.UTC().Format(calendar.DateLayout)
			if excluded[d] || seen[d] {
				continue
			}
			seen[d] = true
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// exdates collects every EXDATE of ev as a set of calendar dates
func exdates(ev *ical.VEvent) (map[string]bool, error) {
	out := map[string]bool{}
	for _, prop := range ev.Properties {
		if !strings.EqualFold(prop.IANAToken, "EXDATE") {
			continue
		}
		for _, v := range strings.Split(prop.Value, ",") {
			st, err := parseStamp(v, prop.ICalParameters)
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "bad EXDATE")
			}
			out[st.Date()] = true
		}
	}
	return out, nil
}
