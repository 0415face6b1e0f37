package platform

import (
	"net/http"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/apperror"
)

var (
	ErrUserNotFound    = apperror.New(http.StatusNotFound, "user not found")
	ErrSubjectNotFound = apperror.New(http.StatusNotFound, "subject not found")
	ErrUnavailable     = apperror.New(http.StatusBadGateway, "platform service unavailable")
)
