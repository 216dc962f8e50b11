package calendar

import "time"

// Clock reports the current local time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the process's local zone.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}

// DateKey renders the civil date of t as YYYY-MM-DD, the key daily
// insights are seeded and stored under.
func DateKey(t time.Time) string {
	return FromTime(t).String()
}

// WeekdayShort returns the three-letter English weekday of t ("Mon".."Sun").
func WeekdayShort(t time.Time) string {
	return t.Weekday().String()[:3]
}
