package http

import (
	"time"

	"github.com/tutorspot/lesson-booking-backend/internal/availability"
)

type WeeklySlotResponse struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

func NewWeeklySlotResponse(s *availability.WeeklySlot) WeeklySlotResponse {
	return WeeklySlotResponse{
		ID:        s.ID,
		TeacherID: s.TeacherID,
		Weekday:   s.Weekday,
		StartTime: s.Start.Clock(),
		EndTime:   s.End.Clock(),
		CreatedAt: s.CreatedAt,
	}
}

type CreateSlotBody struct {
	// Weekday is a pointer so that Sunday (0) still passes "required".
	Weekday   *int   `json:"weekday" binding:"required,gte=0,lte=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
