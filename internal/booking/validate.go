package booking

import (
	"time"

	"github.com/tutorspot/lesson-booking-backend/internal/availability"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

// Candidate is a proposed lesson time under validation.
type Candidate struct {
	TeacherID string
	Date      time.Time // midnight in the service location
	Start     daytime.MinuteOfDay
	End       daytime.MinuteOfDay

	// ExcludeBookingID removes the booking being edited from conflict
	// consideration.
	ExcludeBookingID string
}

// Check decides whether a candidate booking is admissible against the given
// snapshot of weekly slots and existing bookings. It is a pure function: the
// same logic backs both the advisory validate endpoint and the authoritative
// create path.
//
// Checks run in a fixed order and the first failure wins:
//  1. the time range itself must be well formed (start < end);
//  2. the candidate must lie fully inside a single weekly slot of the
//     teacher for that weekday — a candidate spanning two adjacent slots is
//     rejected, slots are never merged;
//  3. no non-cancelled booking of the same teacher on the same date may
//     overlap the candidate. Intervals are half-open, so exact abutment is
//     not a conflict.
//
// Both inputs may span arbitrary teachers and dates; filtering happens here.
func Check(c Candidate, slots []*availability.WeeklySlot, existing []*Booking) error {
	if c.Start >= c.End {
		return ErrInvalidTimeRange
	}

	weekday := int(c.Date.Weekday())

	contained := false
	haveSlot := false
	for _, sl := range slots {
		if sl.TeacherID != c.TeacherID || sl.Weekday != weekday {
			continue
		}
		haveSlot = true
		if c.Start >= sl.Start && c.End <= sl.End {
			contained = true
			break
		}
	}
	if !haveSlot {
		return ErrNoAvailability
	}
	if !contained {
		return ErrOutsideAvailability
	}

	for _, b := range existing {
		if b.TeacherID != c.TeacherID || !b.Blocks() {
			continue
		}
		if c.ExcludeBookingID != "" && b.ID == c.ExcludeBookingID {
			continue
		}
		if !daytime.SameDay(b.Date, c.Date) {
			continue
		}
		if daytime.Overlaps(c.Start, c.End, b.Start, b.End) {
			return ErrTimeConflict
		}
	}

	return nil
}

// DaySlot is one configured weekly slot projected onto a concrete date,
// annotated with whether it is still free.
type DaySlot struct {
	Slot      *availability.WeeklySlot
	Available bool
}

// SlotsForDate projects a teacher's weekly slots onto the given date and
// marks each one unavailable if any blocking booking overlaps it. It shares
// the overlap predicate with Check.
func SlotsForDate(teacherID string, date time.Time, slots []*availability.WeeklySlot, existing []*Booking) []DaySlot {
	weekday := int(date.Weekday())

	var out []DaySlot
	for _, sl := range slots {
		if sl.TeacherID != teacherID || sl.Weekday != weekday {
			continue
		}

		free := true
		for _, b := range existing {
			if b.TeacherID != teacherID || !b.Blocks() || !daytime.SameDay(b.Date, date) {
				continue
			}
			if daytime.Overlaps(sl.Start, sl.End, b.Start, b.End) {
				free = false
				break
			}
		}
		out = append(out, DaySlot{Slot: sl, Available: free})
	}
	return out
}
