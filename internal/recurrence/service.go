package recurrence

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tutorspot/lesson-booking-backend/internal/booking"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/clock"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/metrics"
)

type PreviewRequest struct {
	Weekday int
	Month   int // 0 defaults to the current month
	Year    int // 0 defaults to the current year
}

type PreviewResult struct {
	Weekday int
	Month   int
	Year    int
	Dates   []string
}

type CreateRequest struct {
	TeacherID string
	StudentID string
	SubjectID *string
	Weekday   int
	StartTime string
	EndTime   string
	Month     int
	Year      int
}

type Service interface {
	Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error)
	Create(ctx context.Context, req CreateRequest) (*BatchResult, error)
	GetByID(ctx context.Context, id string) (*Group, error)
	List(ctx context.Context, teacherID, studentID string) ([]*Group, error)
	Renew(ctx context.Context, groupID string) (*BatchResult, error)
}

type service struct {
	repo     Repository
	bookings booking.Service
	clock    clock.Clock
	loc      *time.Location
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewService(repo Repository, bookings booking.Service, clk clock.Clock, loc *time.Location, m *metrics.Metrics, log *zap.Logger) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, bookings: bookings, clock: clk, loc: loc, metrics: m, log: log}
}

// defaultPeriod fills a zero month/year from the clock. Month and year
// default independently so "month 2 of the current year" works.
func (s *service) defaultPeriod(month, year int) (int, int) {
	now := s.clock.Now().In(s.loc)
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func (s *service) validatePattern(weekday, month, year int) error {
	if weekday < 0 || weekday > 6 {
		return ErrInvalidWeekday
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

func (s *service) Preview(_ context.Context, req PreviewRequest) (*PreviewResult, error) {
	month, year := s.defaultPeriod(req.Month, req.Year)
	if err := s.validatePattern(req.Weekday, month, year); err != nil {
		return nil, err
	}

	dates := ExpandMonth(req.Weekday, month, year, s.loc)
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = daytime.FormatDate(d)
	}
	return &PreviewResult{Weekday: req.Weekday, Month: month, Year: year, Dates: out}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*BatchResult, error) {
	month, year := s.defaultPeriod(req.Month, req.Year)
	if err := s.validatePattern(req.Weekday, month, year); err != nil {
		return nil, err
	}

	start, err := daytime.ParseClock(req.StartTime)
	if err != nil {
		return nil, booking.ErrInvalidInput
	}
	end, err := daytime.ParseClock(req.EndTime)
	if err != nil {
		return nil, booking.ErrInvalidInput
	}
	if start >= end {
		return nil, booking.ErrInvalidTimeRange
	}

	g := &Group{
		TeacherID: req.TeacherID,
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Weekday:   req.Weekday,
		Start:     start,
		End:       end,
		Month:     month,
		Year:      year,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	return s.expandAndBook(ctx, g, month, year)
}

func (s *service) Renew(ctx context.Context, groupID string) (*BatchResult, error) {
	g, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	month, year := NextMonth(g.Month, g.Year)
	result, err := s.expandAndBook(ctx, g, month, year)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePeriod(ctx, g.ID, month, year); err != nil {
		return nil, err
	}
	return result, nil
}

// expandAndBook creates one booking per occurrence, sequentially so
// failures are reported in date order. A failed date never aborts the
// rest of the batch and nothing is rolled back.
func (s *service) expandAndBook(ctx context.Context, g *Group, month, year int) (*BatchResult, error) {
	dates := ExpandMonth(g.Weekday, month, year, s.loc)

	result := &BatchResult{
		GroupID:    g.ID,
		Month:      month,
		Year:       year,
		TotalDates: len(dates),
	}
	for _, d := range dates {
		b, err := s.bookings.Create(ctx, booking.CreateRequest{
			TeacherID: g.TeacherID,
			StudentID: g.StudentID,
			SubjectID: g.SubjectID,
			GroupID:   &g.ID,
			Date:      daytime.FormatDate(d),
			StartTime: g.Start.Clock(),
			EndTime:   g.End.Clock(),
		})
		if err != nil {
			result.Failed = append(result.Failed, FailedDate{
				Date:   daytime.FormatDate(d),
				Reason: err.Error(),
			})
			continue
		}
		result.CreatedIDs = append(result.CreatedIDs, b.ID)
	}

	s.metrics.ObserveBatch(len(result.CreatedIDs), len(result.Failed))
	s.log.Info("recurring batch expanded",
		zap.String("group_id", g.ID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("created", len(result.CreatedIDs)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Group, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, teacherID, studentID string) ([]*Group, error) {
	return s.repo.List(ctx, teacherID, studentID)
}
