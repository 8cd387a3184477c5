// Package clock provides time sources for the core.
package clock

import "time"

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Tests advance it with Set.
type Fixed struct {
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	return f.now
}

func (f *Fixed) Set(now time.Time) {
	f.now = now
}

func (f *Fixed) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
