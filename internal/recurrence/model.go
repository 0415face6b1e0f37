package recurrence

import (
	"time"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/apperror"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

var (
	ErrNotFound       = apperror.NotFound("recurring group not found")
	ErrInvalidWeekday = apperror.BadRequest("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidMonth   = apperror.BadRequest("month must be between 1 and 12")
	ErrInvalidYear    = apperror.BadRequest("year is out of range")
)

// Group is one weekly lesson pattern expanded into bookings one month at a
// time. The stored month/year pair is the latest month the group has been
// expanded for, so renewal knows where to continue.
type Group struct {
	ID        string
	TeacherID string
	StudentID string
	SubjectID *string
	Weekday   int
	Start     daytime.MinuteOfDay
	End       daytime.MinuteOfDay
	Month     int
	Year      int
	CreatedAt time.Time
}

// FailedDate records one occurrence that could not be booked and why.
type FailedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// BatchResult summarizes one month's expansion. Created plus the failed
// dates always accounts for every occurrence in the month.
type BatchResult struct {
	GroupID    string
	Month      int
	Year       int
	TotalDates int
	CreatedIDs []string
	Failed     []FailedDate
}
