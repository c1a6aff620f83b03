// Package domain defines the types and ports of the calendar aggregator
package domain

import (
	"context"

	"dashboard/internal/core/calendar"
)

// Config locates the calendar sources and sizes the year window
type Config struct {
	// Dir holds the ICS files
	Dir string
	// NamedaysFile is the static name day table, relative paths resolve against Dir
	NamedaysFile string
	// YearsAhead extends the window past the current year
	YearsAhead int
	// BuiltinHolidays adds computed Finnish public holidays after the ICS ones
	BuiltinHolidays bool
}

// BuilderPort builds a fresh snapshot for the configured window
type BuilderPort interface {
	Build(ctx context.Context) (calendar.Snapshot, error)
}

// LookupPort answers single date queries
type LookupPort interface {
	Lookup(ctx context.Context, date string) (calendar.Day, error)
}

// DayInput is the path input of the single date endpoint
type DayInput struct {
	Date string `path:"date" validate:"required,datetime=2006-01-02"`
}
