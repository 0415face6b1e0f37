package recurrence

import (
	"time"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

// ExpandMonth returns every date in the given month that falls on weekday
// (0=Sunday..6=Saturday), in ascending order. The result always has four or
// five entries. Dates are built in loc so their weekday matches the calendar
// the teacher and student actually live in.
func ExpandMonth(weekday, month, year int, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	offset := (weekday - int(first.Weekday()) + 7) % 7

	var dates []time.Time
	for day := 1 + offset; day <= daytime.DaysInMonth(year, time.Month(month)); day += 7 {
		dates = append(dates, time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc))
	}
	return dates
}

// NextMonth returns the month following the given one, rolling the year
// over after December.
func NextMonth(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}
