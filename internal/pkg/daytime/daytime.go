// Package daytime holds the calendar and clock arithmetic shared by the
// availability, booking and recurrence modules. Clock times are carried as
// minutes since midnight rather than "HH:MM" strings so that ordering never
// depends on string formatting.
package daytime

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"

	minutesPerDay = 24 * 60
)

// MinuteOfDay is a wall-clock time expressed as minutes since local midnight.
type MinuteOfDay int

// ParseClock parses a zero-padded 24-hour "HH:MM" string.
func ParseClock(s string) (MinuteOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return MinuteOfDay(hh*60 + mm), nil
}

// Clock formats the minute back into zero-padded "HH:MM".
func (m MinuteOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Valid reports whether the minute falls within a single day.
func (m MinuteOfDay) Valid() bool {
	return m >= 0 && m < minutesPerDay
}

// ParseDate parses a "YYYY-MM-DD" string as midnight in the given location.
// Parsing the bare string in the target location (instead of UTC) keeps the
// derived weekday correct for every timezone offset.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate formats a time as its "YYYY-MM-DD" calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that merely touch do not overlap, so a
// lesson ending at 10:00 never conflicts with one starting at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd MinuteOfDay) bool {
	return aStart < bEnd && aEnd > bStart
}

// DaysInMonth returns the number of days in the given month, leap years
// included. Day 0 of the following month normalizes to the last day of this
// one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
