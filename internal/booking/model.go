package booking

import (
	"net/http"
	"time"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/apperror"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidInput        = apperror.New(http.StatusBadRequest, "invalid input parameters")
	ErrInvalidTimeRange    = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrNoAvailability      = apperror.New(http.StatusConflict, "the teacher has no availability configured for this day")
	ErrOutsideAvailability = apperror.New(http.StatusConflict, "the requested time is outside the teacher's availability")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "the requested time overlaps an existing booking")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrPermissionDenied    = apperror.New(http.StatusForbidden, "permission denied")
	ErrTeacherNotFound     = apperror.New(http.StatusNotFound, "teacher not found")
	ErrStudentNotFound     = apperror.New(http.StatusNotFound, "student not found")
	ErrNotATeacher         = apperror.New(http.StatusBadRequest, "user is not a teacher")
	ErrNotAStudent         = apperror.New(http.StatusBadRequest, "user is not a student")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking is a single concrete lesson on a calendar date.
type Booking struct {
	ID        string
	TeacherID string
	StudentID string
	SubjectID *string
	GroupID   *string // recurring group this booking was batch-created from, if any
	Date      time.Time
	Start     daytime.MinuteOfDay
	End       daytime.MinuteOfDay
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks reports whether the booking holds its time against new candidates.
// Cancelled bookings release their slot.
func (b *Booking) Blocks() bool {
	return b.Status != StatusCancelled
}

type Filter struct {
	TeacherID string
	StudentID string
	GroupID   string
	Status    string
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
}
