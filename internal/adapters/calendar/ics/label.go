package ics

import (
	"strings"

	ical "github.com/arran4/golang-ical"
)

// label is the SUMMARY of a VEVENT as found on the wire
// it is resolved to plain text right away and never leaves this package
type label interface {
	text() string
}

// bareLabel is SUMMARY:Joulupäivä
type bareLabel string

func (l bareLabel) text() string { return unescape(string(l)) }

// paramLabel is SUMMARY;LANGUAGE=fi:Joulupäivä; parameters do not change the text
type paramLabel string

func (l paramLabel) text() string { return unescape(string(l)) }

// noLabel is a VEVENT without SUMMARY; it resolves to "" and is dropped later
type noLabel struct{}

func (noLabel) text() string { return "" }

func summaryOf(ev *ical.VEvent) label {
	if ev == nil {
		return noLabel{}
	}
	p := ev.GetProperty(ical.ComponentPropertySummary)
	if p == nil {
		return noLabel{}
	}
	if len(p.ICalParameters) > 0 {
		return paramLabel(p.Value)
	}
	return bareLabel(p.Value)
}

// unescape reverses RFC 5545 TEXT escaping; escaped line breaks become spaces
func unescape(s string) string {
	return strings.Join(strings.Fields(ical.FromText(s)), " ")
}
