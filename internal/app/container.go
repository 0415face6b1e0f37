package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tutorspot/lesson-booking-backend/internal/api"
	"github.com/tutorspot/lesson-booking-backend/internal/availability"
	"github.com/tutorspot/lesson-booking-backend/internal/booking"
	"github.com/tutorspot/lesson-booking-backend/internal/config"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/clock"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/metrics"
	"github.com/tutorspot/lesson-booking-backend/internal/platform"
	"github.com/tutorspot/lesson-booking-backend/internal/recurrence"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) *Container {
	// Platform client for users and subjects
	directory := platform.NewClient(cfg.PlatformURL, cfg.PlatformTimeout, log)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("lesson_booking")
	}

	// Availability Module
	availabilityRepo := availability.NewPgxRepository(pool)
	availabilityService := availability.NewService(availabilityRepo, directory)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(bookingRepo, availabilityService, directory, cfg.Location, log)

	// Recurrence Module
	recurrenceRepo := recurrence.NewPgxRepository(pool)
	recurrenceService := recurrence.NewService(recurrenceRepo, bookingService, clock.System(), cfg.Location, m, log)

	// Router
	router := api.NewRouter(cfg, log, m, availabilityService, bookingService, recurrenceService)

	return &Container{
		Router: router,
	}
}
