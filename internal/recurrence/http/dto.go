package http

import (
	"time"

	"github.com/tutorspot/lesson-booking-backend/internal/recurrence"
)

type PreviewBody struct {
	// Weekday is a pointer so that Sunday (0) still passes "required".
	Weekday *int `json:"weekday" binding:"required,gte=0,lte=6"`
	Month   int  `json:"month" binding:"omitempty,min=1,max=12"`
	Year    int  `json:"year" binding:"omitempty,min=1,max=9999"`
}

type PreviewResponse struct {
	Weekday int      `json:"weekday"`
	Month   int      `json:"month"`
	Year    int      `json:"year"`
	Count   int      `json:"count"`
	Dates   []string `json:"dates"`
}

func NewPreviewResponse(r *recurrence.PreviewResult) PreviewResponse {
	dates := r.Dates
	if dates == nil {
		dates = make([]string, 0)
	}
	return PreviewResponse{
		Weekday: r.Weekday,
		Month:   r.Month,
		Year:    r.Year,
		Count:   len(r.Dates),
		Dates:   dates,
	}
}

type CreateGroupBody struct {
	TeacherID string  `json:"teacher_id" binding:"required,uuid"`
	StudentID string  `json:"student_id" binding:"required,uuid"`
	SubjectID *string `json:"subject_id" binding:"omitempty,uuid"`
	Weekday   *int    `json:"weekday" binding:"required,gte=0,lte=6"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	Month     int     `json:"month" binding:"omitempty,min=1,max=12"`
	Year      int     `json:"year" binding:"omitempty,min=1,max=9999"`
}

type BatchResultResponse struct {
	GroupID     string                  `json:"group_id"`
	Month       int                     `json:"month"`
	Year        int                     `json:"year"`
	TotalDates  int                     `json:"total_dates"`
	CreatedIDs  []string                `json:"created_booking_ids"`
	FailedDates []recurrence.FailedDate `json:"failed_dates"`
}

func NewBatchResultResponse(r *recurrence.BatchResult) BatchResultResponse {
	created := r.CreatedIDs
	if created == nil {
		created = make([]string, 0)
	}
	failed := r.Failed
	if failed == nil {
		failed = make([]recurrence.FailedDate, 0)
	}
	return BatchResultResponse{
		GroupID:     r.GroupID,
		Month:       r.Month,
		Year:        r.Year,
		TotalDates:  r.TotalDates,
		CreatedIDs:  created,
		FailedDates: failed,
	}
}

type GroupResponse struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	StudentID string    `json:"student_id"`
	SubjectID *string   `json:"subject_id,omitempty"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

func NewGroupResponse(g *recurrence.Group) GroupResponse {
	return GroupResponse{
		ID:        g.ID,
		TeacherID: g.TeacherID,
		StudentID: g.StudentID,
		SubjectID: g.SubjectID,
		Weekday:   g.Weekday,
		StartTime: g.Start.Clock(),
		EndTime:   g.End.Clock(),
		Month:     g.Month,
		Year:      g.Year,
		CreatedAt: g.CreatedAt,
	}
}

type ListGroupsQuery struct {
	TeacherID string `form:"teacher_id" binding:"omitempty,uuid"`
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
}
