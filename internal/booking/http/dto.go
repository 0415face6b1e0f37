package http

import (
	"time"

	"github.com/tutorspot/lesson-booking-backend/internal/booking"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	StudentID string    `json:"student_id"`
	SubjectID *string   `json:"subject_id,omitempty"`
	GroupID   *string   `json:"group_id,omitempty"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		TeacherID: b.TeacherID,
		StudentID: b.StudentID,
		SubjectID: b.SubjectID,
		GroupID:   b.GroupID,
		Date:      daytime.FormatDate(b.Date),
		StartTime: b.Start.Clock(),
		EndTime:   b.End.Clock(),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type ValidateBookingBody struct {
	TeacherID        string `json:"teacher_id" binding:"required,uuid"`
	Date             string `json:"date" binding:"required"`
	StartTime        string `json:"start_time" binding:"required"`
	EndTime          string `json:"end_time" binding:"required"`
	ExcludeBookingID string `json:"exclude_booking_id" binding:"omitempty,uuid"`
}

// ValidateBookingResponse is advisory. A failed check is a 200 with
// valid=false, not an error status, so clients can surface the reason
// inline before attempting the real creation.
type ValidateBookingResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type CreateBookingBody struct {
	TeacherID string  `json:"teacher_id" binding:"required,uuid"`
	StudentID string  `json:"student_id" binding:"required,uuid"`
	SubjectID *string `json:"subject_id" binding:"omitempty,uuid"`
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
}

type UpdateBookingBody struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    *string `json:"status"`
}

type ListBookingsQuery struct {
	TeacherID string `form:"teacher_id" binding:"omitempty,uuid"`
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	GroupID   string `form:"group_id" binding:"omitempty,uuid"`
	Status    string `form:"status"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type DaySlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

func NewDaySlotResponse(s booking.DaySlot) DaySlotResponse {
	return DaySlotResponse{
		StartTime: s.Slot.Start.Clock(),
		EndTime:   s.Slot.End.Clock(),
		Available: s.Available,
	}
}
