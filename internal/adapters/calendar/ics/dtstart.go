package ics

import (
	"strings"
	"time"
	_ "time/tzdata" // TZID lookups must not depend on the host zoneinfo

	"dashboard/internal/core/calendar"
	perr "dashboard/internal/platform/errors"

	ical "github.com/arran4/golang-ical"
)

const layoutDate = "20060102"

// stamp is a parsed DTSTART/EXDATE value
// dateOnly values keep their written date, timed values are held in UTC
type stamp struct {
	at       time.Time
	dateOnly bool
}

// Date truncates the stamp to a calendar date
func (s stamp) Date() string { return s.at.Format(calendar.DateLayout) }

func param(params map[string][]string, name string) string {
	for k, v := range params {
		if strings.EqualFold(k, name) && len(v) > 0 {
			return strings.Trim(v[0], `"`)
		}
	}
	return ""
}

// zoneOf picks the TZID handed to the ical reader. Floating values and
// unknown zones are read as UTC so the result never depends on time.Local
func zoneOf(params map[string][]string) string {
	tz := param(params, "TZID")
	if tz == "" {
		return "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return "UTC"
	}
	return tz
}

// parseStamp reads one date or date-time value through golang-ical
// Accepted forms: 20251225 (VALUE=DATE), 20251225T100000Z, and floating or
// TZID-qualified 20251225T100000
func parseStamp(value string, params map[string][]string) (stamp, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return stamp{}, perr.Newf(perr.ErrorCodeValidation, "empty date value")
	}

	cb := ical.ComponentBase{Properties: []ical.IANAProperty{{
		BaseProperty: ical.BaseProperty{
			IANAToken:      string(ical.ComponentPropertyDtStart),
			ICalParameters: map[string][]string{"TZID": {zoneOf(params)}},
			Value:          v,
		},
	}}}

	if strings.EqualFold(param(params, "VALUE"), "DATE") || len(v) == len(layoutDate) {
		t, err := cb.GetAllDayStartAt()
		if err != nil {
			return stamp{}, perr.Wrapf(err, perr.ErrorCodeValidation, "bad date %q", v)
		}
		// the written date, whatever zone it was read in
		return stamp{at: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), dateOnly: true}, nil
	}

	t, err := cb.GetStartAt()
	if err != nil {
		return stamp{}, perr.Wrapf(err, perr.ErrorCodeValidation, "bad date-time %q", v)
	}
	return stamp{at: t.UTC()}, nil
}
