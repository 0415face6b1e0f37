package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorspot/lesson-booking-backend/internal/booking"
)

type fakeService struct {
	validateErr error
}

func (f *fakeService) Validate(context.Context, booking.ValidateRequest) error {
	return f.validateErr
}

func (f *fakeService) SlotsForDate(context.Context, string, string) ([]booking.DaySlot, error) {
	panic("not used")
}
func (f *fakeService) Create(context.Context, booking.CreateRequest) (*booking.Booking, error) {
	panic("not used")
}
func (f *fakeService) GetByID(context.Context, string) (*booking.Booking, error) {
	panic("not used")
}
func (f *fakeService) List(context.Context, booking.Filter) ([]*booking.Booking, int, error) {
	panic("not used")
}
func (f *fakeService) Update(context.Context, string, booking.UpdateRequest, string, bool) (*booking.Booking, error) {
	panic("not used")
}
func (f *fakeService) Delete(context.Context, string, string, bool) error { panic("not used") }

func postValidate(t *testing.T, svc booking.Service, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc, time.UTC)
	r.POST("/v1/bookings/validate", h.Validate)

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/validate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"teacher_id": "7f3c1a40-2a9e-4f0d-8a11-6f9d1f2b3c4d",
		"date":       "2024-02-05",
		"start_time": "09:00",
		"end_time":   "10:00",
	}
}

func TestValidateEndpointValid(t *testing.T) {
	w := postValidate(t, &fakeService{}, validBody())
	require.Equal(t, http.StatusOK, w.Code)

	var res ValidateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Valid)
	assert.Empty(t, res.Reason)
}

func TestValidateEndpointCheckFailuresAre200(t *testing.T) {
	// Candidate-check outcomes are advisory results, not HTTP errors.
	for _, sentinel := range []error{
		booking.ErrInvalidTimeRange,
		booking.ErrNoAvailability,
		booking.ErrOutsideAvailability,
		booking.ErrTimeConflict,
	} {
		w := postValidate(t, &fakeService{validateErr: sentinel}, validBody())
		require.Equal(t, http.StatusOK, w.Code)

		var res ValidateBookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Valid)
		assert.Equal(t, sentinel.Error(), res.Reason)
	}
}

func TestValidateEndpointInternalErrorIs500(t *testing.T) {
	w := postValidate(t, &fakeService{validateErr: assert.AnError}, validBody())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestValidateEndpointRejectsBadBody(t *testing.T) {
	body := validBody()
	body["teacher_id"] = "not-a-uuid"
	w := postValidate(t, &fakeService{}, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
