package availability

import (
	"net/http"
	"time"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/apperror"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "availability slot not found")
	ErrTeacherNotFound  = apperror.New(http.StatusNotFound, "teacher not found")
	ErrNotATeacher      = apperror.New(http.StatusBadRequest, "user is not a teacher")
	ErrInvalidWeekday   = apperror.New(http.StatusBadRequest, "weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrSlotOverlap      = apperror.New(http.StatusConflict, "slot overlaps an existing slot for this weekday")
)

// WeeklySlot is a recurring weekly interval during which a teacher takes
// lessons. Weekday follows time.Weekday numbering: 0 = Sunday .. 6 = Saturday.
type WeeklySlot struct {
	ID        string
	TeacherID string
	Weekday   int
	Start     daytime.MinuteOfDay
	End       daytime.MinuteOfDay
	CreatedAt time.Time
}
