package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tutorspot/lesson-booking-backend/internal/availability"
	availabilityHttp "github.com/tutorspot/lesson-booking-backend/internal/availability/http"
	"github.com/tutorspot/lesson-booking-backend/internal/booking"
	bookingHttp "github.com/tutorspot/lesson-booking-backend/internal/booking/http"
	"github.com/tutorspot/lesson-booking-backend/internal/config"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/identity"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/metrics"
	"github.com/tutorspot/lesson-booking-backend/internal/recurrence"
	recurrenceHttp "github.com/tutorspot/lesson-booking-backend/internal/recurrence/http"
)

// NewRouter initializes the HTTP router engine.
// It assembles middleware (logging, recovery, CORS, identity, metrics) and
// registers routes for each module.
func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	m *metrics.Metrics,
	availabilityService availability.Service,
	bookingService booking.Service,
	recurrenceService recurrence.Service,
) *gin.Engine {

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-User-ID", "X-User-Role"}
	r.Use(cors.New(corsConfig))

	// Caller identity comes from trusted gateway headers.
	r.Use(identity.Extract())
	if m != nil {
		r.Use(m.Middleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	userMiddleware := identity.RequireUser()
	adminMiddleware := identity.RequireAdmin()

	// Initialize HTTP handlers for each module (injecting service dependencies).
	availabilityHandler := availabilityHttp.NewHandler(availabilityService)
	bookingHandler := bookingHttp.NewHandler(bookingService, cfg.Location)
	recurrenceHandler := recurrenceHttp.NewHandler(recurrenceService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		availabilityHttp.RegisterRoutes(v1, availabilityHandler, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, userMiddleware)
		recurrenceHttp.RegisterRoutes(v1, recurrenceHandler, userMiddleware, adminMiddleware)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// requestLogger logs one line per completed request.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
