// Package time contains clock helpers so services can pin "now" in tests
package time

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// System is the wall clock
type System struct{}

// Now returns time.Now
func (System) Now() time.Time { return time.Now() }

// Fixed is a clock stuck at a single instant
type Fixed time.Time

// Now returns the pinned instant
func (f Fixed) Now() time.Time { return time.Time(f) }

// Or returns c, or the system clock when c is nil
func Or(c Clock) Clock {
	if c == nil {
		return System{}
	}
	return c
}

// Years returns the calendar years of now through now+ahead in now's location
// a negative ahead is treated as zero
func Years(now time.Time, ahead int) []int {
	if ahead < 0 {
		ahead = 0
	}
	out := make([]int, 0, ahead+1)
	for y := now.Year(); y <= now.Year()+ahead; y++ {
		out = append(out, y)
	}
	return out
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
