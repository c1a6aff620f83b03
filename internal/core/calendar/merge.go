package calendar

import "strings"

// Merger accumulates holiday and name day contributions for one snapshot build
// It is single use and not safe for concurrent use
type Merger struct {
	holidays map[string][]string
	namedays map[string][]string
}

// NewMerger returns an empty Merger
func NewMerger() *Merger {
	return &Merger{
		holidays: map[string][]string{},
		namedays: map[string][]string{},
	}
}

// SeedNamedays adds projected static entries; call it before adding events so
// static names keep their leading position on each date
func (m *Merger) SeedNamedays(p Projection) {
	for date, names := range p {
		if l := appendUnique(m.namedays[date], names...); len(l) > 0 {
			m.namedays[date] = l
		}
	}
}

// AddHoliday appends a holiday label to date unless already present
func (m *Merger) AddHoliday(date, label string) {
	label = strings.TrimSpace(label)
	if date == "" || label == "" {
		return
	}
	m.holidays[date] = appendUnique(m.holidays[date], label)
}

// AddNameday splits raw into names and appends the ones not yet on date
func (m *Merger) AddNameday(date, raw string) {
	names := SplitNames(raw)
	if date == "" || len(names) == 0 {
		return
	}
	m.namedays[date] = appendUnique(m.namedays[date], names...)
}

// Add routes an event by the classification of its source file
// ignored events are dropped and false is returned
func (m *Merger) Add(ev Event) bool {
	switch ev.Source() {
	case SourceHoliday:
		m.AddHoliday(ev.Date, ev.RawLabel)
	case SourceNameday:
		m.AddNameday(ev.Date, ev.RawLabel)
	default:
		return false
	}
	return true
}

// AddAll adds every event and returns how many were routed
func (m *Merger) AddAll(events []Event) int {
	n := 0
	for _, ev := range events {
		if m.Add(ev) {
			n++
		}
	}
	return n
}

// Snapshot runs the final normalization pass and freezes the result
func (m *Merger) Snapshot() Snapshot {
	return NewSnapshot(m.holidays, m.namedays).Normalize()
}
