package calendar

import (
	"fmt"
	"strings"

	"cloudeng.io/datetime"
)

// StaticTable maps a year independent "MM-DD" key to an ordered list of names
type StaticTable map[string][]string

// Projection is a static table projected onto concrete years, keyed by YYYY-MM-DD
type Projection map[string][]string

// Project prefixes every key with each of years. Keys that are not a valid
// month-day for a given year (for example 02-29 outside leap years, or junk)
// are skipped and reported in rejected as "YYYY/key"
func (t StaticTable) Project(years ...int) (out Projection, rejected []string) {
	out = make(Projection, len(t)*len(years))
	for _, y := range years {
		for key, names := range t {
			date, err := parseMonthDay(y, key)
			if err != nil {
				rejected = append(rejected, fmt.Sprintf("%d/%s", y, key))
				continue
			}
			out[fmt.Sprintf("%04d-%02d-%02d", y, int(date.Month), date.Day)] = append([]string(nil), names...)
		}
	}
	return out, rejected
}

// Len returns the number of month-day keys
func (t StaticTable) Len() int { return len(t) }

// parseMonthDay accepts "MM-DD" (and the "MM/DD" form cloudeng.io/datetime uses)
func parseMonthDay(year int, key string) (datetime.Date, error) {
	key = strings.TrimSpace(key)
	if strings.Count(key, "-") == 1 {
		key = strings.Replace(key, "-", "/", 1)
	}
	return datetime.ParseNumericDate(year, key)
}
