// Package holidays produces Finnish public holidays from rickar/cal
package holidays

import (
	"slices"
	"strings"

	"dashboard/internal/core/calendar"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/fi"
)

// Source computes holiday dates for a set of years
type Source struct {
	defs []*cal.Holiday
}

// Finnish returns the built-in Finnish public holiday source
func Finnish() *Source { return &Source{defs: fi.Holidays} }

// New builds a Source over custom definitions
func New(defs ...*cal.Holiday) *Source { return &Source{defs: defs} }

// Entry is one computed holiday
type Entry struct {
	Date  string
	Label string
}

// For returns the holidays of every year, ordered by date then definition order
func (s *Source) For(years ...int) []Entry {
	var out []Entry
	for _, y := range years {
		for _, h := range s.defs {
			if h == nil {
				continue
			}
			actual, _ := h.Calc(y)
			name := strings.TrimSpace(h.Name)
			if actual.IsZero() || name == "" {
				continue
			}
			out = append(out, Entry{Date: actual.Format(calendar.DateLayout), Label: name})
		}
	}
	slices.SortStableFunc(out, func(a, b Entry) int { return strings.Compare(a.Date, b.Date) })
	return out
}

// AddTo feeds every entry into m as a holiday and returns how many were offered
func (s *Source) AddTo(m *calendar.Merger, years ...int) int {
	entries := s.For(years...)
	for _, e := range entries {
		m.AddHoliday(e.Date, e.Label)
	}
	return len(entries)
}
