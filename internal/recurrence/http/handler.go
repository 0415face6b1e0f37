package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/request"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/response"
	"github.com/tutorspot/lesson-booking-backend/internal/recurrence"
)

type Handler struct {
	service recurrence.Service
}

func NewHandler(service recurrence.Service) *Handler {
	return &Handler{service: service}
}

// Preview expands a pattern into its concrete dates without creating
// anything.
func (h *Handler) Preview(c *gin.Context) {
	var body PreviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Preview(c.Request.Context(), recurrence.PreviewRequest{
		Weekday: *body.Weekday,
		Month:   body.Month,
		Year:    body.Year,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPreviewResponse(res))
}

// Create persists the group and books the whole month. Partial failure is
// still a 200 so the caller sees which dates went through.
func (h *Handler) Create(c *gin.Context) {
	var body CreateGroupBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Create(c.Request.Context(), recurrence.CreateRequest{
		TeacherID: body.TeacherID,
		StudentID: body.StudentID,
		SubjectID: body.SubjectID,
		Weekday:   *body.Weekday,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Month:     body.Month,
		Year:      body.Year,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBatchResultResponse(res))
}

func (h *Handler) GetByID(c *gin.Context) {
	var req request.ByGroupIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), req.GroupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewGroupResponse(g))
}

func (h *Handler) List(c *gin.Context) {
	var q ListGroupsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	groups, err := h.service.List(c.Request.Context(), q.TeacherID, q.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]GroupResponse, len(groups))
	for i, g := range groups {
		items[i] = NewGroupResponse(g)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Renew(c *gin.Context) {
	var req request.ByGroupIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	res, err := h.service.Renew(c.Request.Context(), req.GroupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBatchResultResponse(res))
}
