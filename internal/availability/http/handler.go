package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tutorspot/lesson-booking-backend/internal/availability"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// ListForTeacher returns every weekly slot configured for a teacher.
func (h *Handler) ListForTeacher(c *gin.Context) {
	teacherID := c.Param("id")
	if _, err := uuid.Parse(teacherID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teacher id"})
		return
	}

	slots, err := h.service.ListByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]WeeklySlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewWeeklySlotResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	teacherID := c.Param("id")
	if _, err := uuid.Parse(teacherID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teacher id"})
		return
	}

	var body CreateSlotBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	slot, err := h.service.Create(c.Request.Context(), availability.CreateRequest{
		TeacherID: teacherID,
		Weekday:   *body.Weekday,
		Start:     body.StartTime,
		End:       body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewWeeklySlotResponse(slot))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
