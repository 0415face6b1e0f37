package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tutorspot/lesson-booking-backend/internal/booking"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/identity"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/request"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
	loc     *time.Location
}

func NewHandler(service booking.Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

// checkFailure reports whether err is one of the candidate-check outcomes
// that the advisory endpoint turns into a 200 with valid=false.
func checkFailure(err error) bool {
	return errors.Is(err, booking.ErrInvalidInput) ||
		errors.Is(err, booking.ErrInvalidTimeRange) ||
		errors.Is(err, booking.ErrNoAvailability) ||
		errors.Is(err, booking.ErrOutsideAvailability) ||
		errors.Is(err, booking.ErrTimeConflict)
}

// Validate runs the candidate check without writing anything.
func (h *Handler) Validate(c *gin.Context) {
	var body ValidateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	err := h.service.Validate(c.Request.Context(), booking.ValidateRequest{
		TeacherID:        body.TeacherID,
		Date:             body.Date,
		StartTime:        body.StartTime,
		EndTime:          body.EndTime,
		ExcludeBookingID: body.ExcludeBookingID,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, ValidateBookingResponse{Valid: true})
	case checkFailure(err):
		c.JSON(http.StatusOK, ValidateBookingResponse{Valid: false, Reason: err.Error()})
	default:
		response.Error(c, err)
	}
}

// SlotsForDate lists a teacher's slots on a concrete date with per-slot
// availability against existing bookings.
func (h *Handler) SlotsForDate(c *gin.Context) {
	teacherID := c.Param("id")
	if _, err := uuid.Parse(teacherID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teacher id"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.service.SlotsForDate(c.Request.Context(), teacherID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DaySlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewDaySlotResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "items": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		TeacherID: body.TeacherID,
		StudentID: body.StudentID,
		SubjectID: body.SubjectID,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) GetByID(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		TeacherID: q.TeacherID,
		StudentID: q.StudentID,
		GroupID:   q.GroupID,
		Status:    q.Status,
		Page:      q.Page,
		PageSize:  q.PageSize,
	}
	if q.DateFrom != "" {
		d, err := daytime.ParseDate(q.DateFrom, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from"})
			return
		}
		filter.DateFrom = &d
	}
	if q.DateTo != "" {
		d, err := daytime.ParseDate(q.DateTo, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to"})
			return
		}
		filter.DateTo = &d
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body UpdateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Update(c.Request.Context(), req.ID, booking.UpdateRequest{
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Status:    body.Status,
	}, identity.UserID(c), identity.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID, identity.UserID(c), identity.IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
