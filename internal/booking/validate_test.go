package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorspot/lesson-booking-backend/internal/availability"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

const (
	teacherID      = "6b4248e8-2f1c-4d55-b0c8-30a1f65cd6e1"
	otherTeacherID = "9d3ff6b8-5a02-44f0-9f0a-17d2c55cf2aa"
)

func mustClock(t *testing.T, s string) daytime.MinuteOfDay {
	t.Helper()
	m, err := daytime.ParseClock(s)
	require.NoError(t, err)
	return m
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := daytime.ParseDate(s, time.UTC)
	require.NoError(t, err)
	return d
}

// Fixture matching the reference scenario: one slot Monday 09:00-12:00 and an
// existing booking Monday 10:00-11:00 for the same teacher.
func mondayFixture(t *testing.T) ([]*availability.WeeklySlot, []*Booking) {
	t.Helper()
	slots := []*availability.WeeklySlot{
		{ID: "slot-1", TeacherID: teacherID, Weekday: 1, Start: mustClock(t, "09:00"), End: mustClock(t, "12:00")},
	}
	bookings := []*Booking{
		{
			ID:        "booked-1",
			TeacherID: teacherID,
			StudentID: "student-1",
			Date:      mustDate(t, "2024-02-05"), // a Monday
			Start:     mustClock(t, "10:00"),
			End:       mustClock(t, "11:00"),
			Status:    StatusConfirmed,
		},
	}
	return slots, bookings
}

func TestCheckScenarioMatrix(t *testing.T) {
	slots, bookings := mondayFixture(t)

	tests := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr error
	}{
		{name: "free morning slot is valid", date: "2024-02-05", start: "09:00", end: "10:00", wantErr: nil},
		{name: "overlap with existing booking", date: "2024-02-05", start: "09:30", end: "10:30", wantErr: ErrTimeConflict},
		{name: "outside availability", date: "2024-02-05", start: "12:00", end: "13:00", wantErr: ErrOutsideAvailability},
		{name: "no availability on Tuesday", date: "2024-02-06", start: "09:00", end: "10:00", wantErr: ErrNoAvailability},
		{name: "abutting end of existing booking", date: "2024-02-05", start: "11:00", end: "12:00", wantErr: nil},
		{name: "abutting start of existing booking", date: "2024-02-05", start: "09:30", end: "10:00", wantErr: nil},
		{name: "contained in existing booking", date: "2024-02-05", start: "10:15", end: "10:45", wantErr: ErrTimeConflict},
		{name: "covering existing booking", date: "2024-02-05", start: "09:30", end: "11:30", wantErr: ErrTimeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(Candidate{
				TeacherID: teacherID,
				Date:      mustDate(t, tt.date),
				Start:     mustClock(t, tt.start),
				End:       mustClock(t, tt.end),
			}, slots, bookings)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckInvalidRangeWinsRegardlessOfData(t *testing.T) {
	// Even with no availability data at all, a malformed range must fail
	// with the range reason, not the availability one.
	err := Check(Candidate{
		TeacherID: teacherID,
		Date:      mustDate(t, "2024-02-05"),
		Start:     mustClock(t, "10:00"),
		End:       mustClock(t, "10:00"),
	}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	err = Check(Candidate{
		TeacherID: teacherID,
		Date:      mustDate(t, "2024-02-05"),
		Start:     mustClock(t, "11:00"),
		End:       mustClock(t, "10:00"),
	}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCheckIgnoresCancelledBookings(t *testing.T) {
	slots, bookings := mondayFixture(t)
	bookings[0].Status = StatusCancelled

	err := Check(Candidate{
		TeacherID: teacherID,
		Date:      mustDate(t, "2024-02-05"),
		Start:     mustClock(t, "09:30"),
		End:       mustClock(t, "10:30"),
	}, slots, bookings)
	assert.NoError(t, err)
}

func TestCheckIgnoresOtherTeachers(t *testing.T) {
	slots, bookings := mondayFixture(t)

	// A different teacher's slots and bookings must not leak into the check.
	slots = append(slots, &availability.WeeklySlot{
		ID: "slot-2", TeacherID: otherTeacherID, Weekday: 2,
		Start: mustClock(t, "08:00"), End: mustClock(t, "20:00"),
	})
	bookings[0].TeacherID = otherTeacherID

	// Tuesday has a slot only for the other teacher.
	err := Check(Candidate{
		TeacherID: teacherID,
		Date:      mustDate(t, "2024-02-06"),
		Start:     mustClock(t, "09:00"),
		End:       mustClock(t, "10:00"),
	}, slots, bookings)
	assert.ErrorIs(t, err, ErrNoAvailability)

	// Monday 09:30-10:30 now only conflicts with the other teacher's booking.
	err = Check(Candidate{
		TeacherID: teacherID,
		Date:      mustDate(t, "2024-02-05"),
		Start:     mustClock(t, "09:30"),
		End:       mustClock(t, "10:30"),
	}, slots, bookings)
	assert.NoError(t, err)
}

func TestCheckExcludesEditedBooking(t *testing.T) {
	slots, bookings := mondayFixture(t)

	// Rescheduling booked-1 within its own time must not conflict with itself.
	err := Check(Candidate{
		TeacherID:        teacherID,
		Date:             mustDate(t, "2024-02-05"),
		Start:            mustClock(t, "10:30"),
		End:              mustClock(t, "11:30"),
		ExcludeBookingID: "booked-1",
	}, slots, bookings)
	assert.NoError(t, err)

	// Without the exclusion the same move is a conflict.
	err = Check(Candidate{
		TeacherID: teacherID,
		Date:      mustDate(t, "2024-02-05"),
		Start:     mustClock(t, "10:30"),
		End:       mustClock(t, "11:30"),
	}, slots, bookings)
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCheckNoMergingAcrossAdjacentSlots(t *testing.T) {
	slots := []*availability.WeeklySlot{
		{ID: "a", TeacherID: teacherID, Weekday: 1, Start: mustClock(t, "09:00"), End: mustClock(t, "10:00")},
		{ID: "b", TeacherID: teacherID, Weekday: 1, Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")},
	}

	// 09:30-10:30 fits the union of the two slots but neither one alone.
	err := Check(Candidate{
		TeacherID: teacherID,
		Date:      mustDate(t, "2024-02-05"),
		Start:     mustClock(t, "09:30"),
		End:       mustClock(t, "10:30"),
	}, slots, nil)
	assert.ErrorIs(t, err, ErrOutsideAvailability)
}

func TestSlotsForDate(t *testing.T) {
	slots := []*availability.WeeklySlot{
		{ID: "morning", TeacherID: teacherID, Weekday: 1, Start: mustClock(t, "09:00"), End: mustClock(t, "12:00")},
		{ID: "evening", TeacherID: teacherID, Weekday: 1, Start: mustClock(t, "17:00"), End: mustClock(t, "19:00")},
		{ID: "tuesday", TeacherID: teacherID, Weekday: 2, Start: mustClock(t, "09:00"), End: mustClock(t, "12:00")},
	}
	bookings := []*Booking{
		{
			ID: "b1", TeacherID: teacherID, Date: mustDate(t, "2024-02-05"),
			Start: mustClock(t, "10:00"), End: mustClock(t, "11:00"), Status: StatusPending,
		},
	}

	got := SlotsForDate(teacherID, mustDate(t, "2024-02-05"), slots, bookings)
	require.Len(t, got, 2, "only Monday slots belong to a Monday date")

	assert.Equal(t, "morning", got[0].Slot.ID)
	assert.False(t, got[0].Available, "morning slot is blocked by the 10:00 booking")
	assert.Equal(t, "evening", got[1].Slot.ID)
	assert.True(t, got[1].Available)

	// A cancelled booking frees the slot again.
	bookings[0].Status = StatusCancelled
	got = SlotsForDate(teacherID, mustDate(t, "2024-02-05"), slots, bookings)
	assert.True(t, got[0].Available)
}
