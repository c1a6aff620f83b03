package calendar

import (
	"encoding/json"
	"maps"
	"slices"
)

// Snapshot is the merged, normalized and immutable result of one build
// Accessors hand out copies so callers cannot mutate it
type Snapshot struct {
	holidays map[string][]string
	namedays map[string][]string
}

// NewSnapshot structures the two date mappings into a Snapshot
// The input maps are deep copied and dates with empty lists are dropped
func NewSnapshot(holidays, namedays map[string][]string) Snapshot {
	return Snapshot{holidays: cloneLists(holidays), namedays: cloneLists(namedays)}
}

// Holidays returns the holiday labels on date, nil when there are none
func (s Snapshot) Holidays(date string) []string { return slices.Clone(s.holidays[date]) }

// Namedays returns the names celebrated on date, nil when there are none
func (s Snapshot) Namedays(date string) []string { return slices.Clone(s.namedays[date]) }

// HolidayMap returns a copy of the whole holiday mapping
func (s Snapshot) HolidayMap() map[string][]string { return cloneLists(s.holidays) }

// NamedayMap returns a copy of the whole name day mapping
func (s Snapshot) NamedayMap() map[string][]string { return cloneLists(s.namedays) }

// Dates returns every date that has any entry, sorted ascending
func (s Snapshot) Dates() []string {
	set := make(map[string]struct{}, len(s.holidays)+len(s.namedays))
	for d := range s.holidays {
		set[d] = struct{}{}
	}
	for d := range s.namedays {
		set[d] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Empty reports whether the snapshot holds no entries at all
func (s Snapshot) Empty() bool { return len(s.holidays) == 0 && len(s.namedays) == 0 }

// Normalize returns a copy where every name day list is re-split on "," and "/",
// trimmed and deduplicated in order; holiday lists are trimmed and deduplicated
// Normalize is idempotent
func (s Snapshot) Normalize() Snapshot {
	out := Snapshot{
		holidays: make(map[string][]string, len(s.holidays)),
		namedays: make(map[string][]string, len(s.namedays)),
	}
	for d, labels := range s.holidays {
		if l := appendUnique(nil, labels...); len(l) > 0 {
			out.holidays[d] = l
		}
	}
	for d, names := range s.namedays {
		if l := NormalizeNames(names); len(l) > 0 {
			out.namedays[d] = l
		}
	}
	return out
}

// Equal reports whether both snapshots hold the same lists in the same order
func (s Snapshot) Equal(o Snapshot) bool {
	return maps.EqualFunc(s.holidays, o.holidays, slices.Equal[[]string]) &&
		maps.EqualFunc(s.namedays, o.namedays, slices.Equal[[]string])
}

// Day is the lookup view for a single date
type Day struct {
	Date     string   `json:"date"`
	Holidays []string `json:"holidays"`
	Namedays []string `json:"namedays"`
	Holiday  bool     `json:"is_holiday"`
}

// Day returns the lookup view for date; lists are empty, never nil
func (s Snapshot) Day(date string) Day {
	d := Day{Date: date, Holidays: []string{}, Namedays: []string{}}
	if l := s.holidays[date]; len(l) > 0 {
		d.Holidays = slices.Clone(l)
		d.Holiday = true
	}
	if l := s.namedays[date]; len(l) > 0 {
		d.Namedays = slices.Clone(l)
	}
	return d
}

// wire is the JSON shape of a Snapshot
type wire struct {
	Holidays map[string][]string `json:"holidays"`
	Namedays map[string][]string `json:"namedays"`
}

// MarshalJSON encodes {"holidays": {...}, "namedays": {...}}; empty maps encode as {}
func (s Snapshot) MarshalJSON() ([]byte, error) {
	w := wire{Holidays: s.holidays, Namedays: s.namedays}
	if w.Holidays == nil {
		w.Holidays = map[string][]string{}
	}
	if w.Namedays == nil {
		w.Namedays = map[string][]string{}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the shape written by MarshalJSON
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*s = NewSnapshot(w.Holidays, w.Namedays)
	return nil
}

// Document is the on-disk form written by bulk generation
type Document struct {
	CalendarData Snapshot `json:"calendarData"`
}

func cloneLists(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for d, l := range in {
		if len(l) == 0 {
			continue
		}
		out[d] = slices.Clone(l)
	}
	return out
}
