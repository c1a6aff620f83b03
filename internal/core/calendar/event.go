// Package calendar holds the calendar aggregation core: file classification,
// name splitting, static table projection, merging and the immutable Snapshot
// Nothing in here touches the filesystem or the environment
package calendar

import (
	"path/filepath"
	"strings"

	"dashboard/internal/core/normalize"
)

// DateLayout is the ISO calendar date used for every snapshot key
const DateLayout = "2006-01-02"

// Marker substrings in calendar file names, matched case-insensitively
// These are a contract with the data directory naming convention
const (
	MarkerHoliday  = "pyhä"
	MarkerDayOff   = "vapaa"
	MarkerNameday  = "nimipäivä"
	CalendarExtICS = ".ics"
)

// Source classifies a calendar file by what its events describe
type Source uint8

const (
	// SourceIgnored files contribute nothing
	SourceIgnored Source = iota
	// SourceHoliday files contribute holiday labels
	SourceHoliday
	// SourceNameday files contribute name day names
	SourceNameday
)

func (s Source) String() string {
	switch s {
	case SourceHoliday:
		return "holiday"
	case SourceNameday:
		return "nameday"
	default:
		return "ignored"
	}
}

// Classify maps a file name to a Source
// holiday markers win over the nameday marker when both are present
func Classify(filename string) Source {
	name := normalize.Fold(filepath.Base(filename))
	switch {
	case contains(name, MarkerHoliday), contains(name, MarkerDayOff):
		return SourceHoliday
	case contains(name, MarkerNameday):
		return SourceNameday
	default:
		return SourceIgnored
	}
}

func contains(folded, marker string) bool {
	return strings.Contains(folded, normalize.Fold(marker))
}

// Event is one parsed calendar record, ephemeral and only alive during a scan
type Event struct {
	Date       string // YYYY-MM-DD
	RawLabel   string // possibly delimiter joined
	SourceFile string // used for classification only
}

// Source classifies the event by its file name
func (e Event) Source() Source { return Classify(e.SourceFile) }
