// Package calendar holds the civil date and time values birth data is
// entered as, plus the clock the "today" operations read.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
)

const (
	minYear = 1
	maxYear = 9999
)

// Date is a proleptic Gregorian calendar date with no time zone.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewDate builds a Date without validating it.
func NewDate(year int, month int, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Validate checks the year, month and day ranges, leap years included.
func (d Date) Validate() error {
	switch {
	case d.Year < minYear || d.Year > maxYear:
		return invalidDate(d, "year must be between 1 and 9999")
	case d.Month < 1 || d.Month > 12:
		return invalidDate(d, "month must be between 1 and 12")
	case d.Day < 1 || d.Day > DaysIn(d.Year, d.Month):
		return invalidDate(d, fmt.Sprintf("day must be between 1 and %d", DaysIn(d.Year, d.Month)))
	}
	return nil
}

func invalidDate(d Date, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeInvalidDate,
		fmt.Sprintf("invalid date %s: %s", d, reason),
		map[string]string{"Date": d.String(), "Reason": reason},
	)
}

// DaysIn returns the number of days in month of year. It returns 0 for a
// month outside 1..12.
func DaysIn(year int, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ParseDate parses and validates a YYYY-MM-DD date.
func ParseDate(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	parts := strings.Split(trimmed, "-")
	if len(parts) != 3 {
		return Date{}, malformedDate(trimmed)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, malformedDate(trimmed)
		}
		nums[i] = n
	}
	d := NewDate(nums[0], nums[1], nums[2])
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

func malformedDate(value string) error {
	reason := "expected YYYY-MM-DD"
	return apperrors.WithMetadata(
		apperrors.CodeInvalidDate,
		fmt.Sprintf("invalid date %q: %s", value, reason),
		map[string]string{"Date": value, "Reason": reason},
	)
}

// FromEpochMillis returns the UTC civil date of a millisecond Unix
// timestamp, the form date pickers report selections in. Negative values
// resolve to dates before 1970-01-01.
func FromEpochMillis(ms int64) Date {
	return FromTime(time.UnixMilli(ms).UTC())
}

// FromTime returns the civil date of t in t's location.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// Time is a wall-clock time of day with minute precision.
type Time struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewTime builds a Time without validating it.
func NewTime(hour int, minute int) Time {
	return Time{Hour: hour, Minute: minute}
}

// String renders the time as HH:MM.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Validate checks that the hour is 0..23 and the minute 0..59.
func (t Time) Validate() error {
	switch {
	case t.Hour < 0 || t.Hour > 23:
		return invalidTime(t.String(), "hour must be between 0 and 23")
	case t.Minute < 0 || t.Minute > 59:
		return invalidTime(t.String(), "minute must be between 0 and 59")
	}
	return nil
}

// Clamped pulls the hour and minute back into range.
func (t Time) Clamped() Time {
	return NewTime(min(max(t.Hour, 0), 23), min(max(t.Minute, 0), 59))
}

// ParseTime parses and validates an HH:MM time.
func ParseTime(value string) (Time, error) {
	trimmed := strings.TrimSpace(value)
	hh, mm, ok := strings.Cut(trimmed, ":")
	if !ok {
		return Time{}, invalidTime(trimmed, "expected HH:MM")
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return Time{}, invalidTime(trimmed, "expected HH:MM")
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return Time{}, invalidTime(trimmed, "expected HH:MM")
	}
	t := NewTime(hour, minute)
	if err := t.Validate(); err != nil {
		return Time{}, err
	}
	return t, nil
}

func invalidTime(value string, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeInvalidTime,
		fmt.Sprintf("invalid time %s: %s", value, reason),
		map[string]string{"Time": value, "Reason": reason},
	)
}
