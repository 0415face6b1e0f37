package availability

import (
	"context"
	"fmt"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
	"github.com/tutorspot/lesson-booking-backend/internal/platform"
)

type CreateRequest struct {
	TeacherID string
	Weekday   int
	Start     string // "HH:MM"
	End       string // "HH:MM"
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*WeeklySlot, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*WeeklySlot, error)
	Delete(ctx context.Context, id string) error
}

// Directory is the slice of the platform client the service needs.
type Directory interface {
	GetUser(ctx context.Context, id string) (*platform.User, error)
}

type service struct {
	repo  Repository
	users Directory
}

func NewService(repo Repository, users Directory) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*WeeklySlot, error) {
	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	start, err := daytime.ParseClock(req.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	end, err := daytime.ParseClock(req.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}

	u, err := s.users.GetUser(ctx, req.TeacherID)
	if err != nil {
		if err == platform.ErrUserNotFound {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	if u.Role != platform.RoleTeacher {
		return nil, ErrNotATeacher
	}

	// Weekly slots for one teacher and weekday must not overlap each other.
	// The validator downstream tolerates pathological data, but the store
	// keeps its own invariant at creation time.
	existing, err := s.repo.ListByTeacher(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}
	for _, sl := range existing {
		if sl.Weekday == req.Weekday && daytime.Overlaps(start, end, sl.Start, sl.End) {
			return nil, ErrSlotOverlap
		}
	}

	slot := &WeeklySlot{
		TeacherID: req.TeacherID,
		Weekday:   req.Weekday,
		Start:     start,
		End:       end,
	}
	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *service) ListByTeacher(ctx context.Context, teacherID string) ([]*WeeklySlot, error) {
	return s.repo.ListByTeacher(ctx, teacherID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
