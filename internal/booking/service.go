package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tutorspot/lesson-booking-backend/internal/availability"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
	"github.com/tutorspot/lesson-booking-backend/internal/platform"
)

type ValidateRequest struct {
	TeacherID        string
	Date             string // "YYYY-MM-DD"
	StartTime        string // "HH:MM"
	EndTime          string // "HH:MM"
	ExcludeBookingID string
}

type CreateRequest struct {
	TeacherID string
	StudentID string
	SubjectID *string
	GroupID   *string
	Date      string
	StartTime string
	EndTime   string
}

type UpdateRequest struct {
	Date      *string
	StartTime *string
	EndTime   *string
	Status    *string
}

type Service interface {
	// Validate runs the admissibility check against a live snapshot without
	// writing anything. The backend remains authoritative: a candidate that
	// validates here can still be rejected by Create in a race.
	Validate(ctx context.Context, req ValidateRequest) error
	SlotsForDate(ctx context.Context, teacherID, date string) ([]DaySlot, error)
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Booking, error)
	Delete(ctx context.Context, id string, actorID string, isAdmin bool) error
}

// Directory is the slice of the platform client the service needs.
type Directory interface {
	GetUser(ctx context.Context, id string) (*platform.User, error)
	GetSubject(ctx context.Context, id string) (*platform.Subject, error)
}

type service struct {
	repo  Repository
	slots availability.Service
	users Directory
	loc   *time.Location
	log   *zap.Logger
}

func NewService(repo Repository, slots availability.Service, users Directory, loc *time.Location, log *zap.Logger) Service {
	return &service{
		repo:  repo,
		slots: slots,
		users: users,
		loc:   loc,
		log:   log,
	}
}

func (s *service) parseCandidate(teacherID, date, startTime, endTime, excludeID string) (Candidate, error) {
	d, err := daytime.ParseDate(date, s.loc)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	start, err := daytime.ParseClock(startTime)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := daytime.ParseClock(endTime)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return Candidate{
		TeacherID:        teacherID,
		Date:             d,
		Start:            start,
		End:              end,
		ExcludeBookingID: excludeID,
	}, nil
}

// checkCandidate fetches the current snapshot and runs the pure check.
func (s *service) checkCandidate(ctx context.Context, c Candidate) error {
	slots, err := s.slots.ListByTeacher(ctx, c.TeacherID)
	if err != nil {
		return err
	}
	existing, err := s.repo.ListForTeacherOnDate(ctx, c.TeacherID, c.Date)
	if err != nil {
		return err
	}
	return Check(c, slots, existing)
}

func (s *service) Validate(ctx context.Context, req ValidateRequest) error {
	c, err := s.parseCandidate(req.TeacherID, req.Date, req.StartTime, req.EndTime, req.ExcludeBookingID)
	if err != nil {
		return err
	}
	return s.checkCandidate(ctx, c)
}

func (s *service) SlotsForDate(ctx context.Context, teacherID, date string) ([]DaySlot, error) {
	d, err := daytime.ParseDate(date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	slots, err := s.slots.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ListForTeacherOnDate(ctx, teacherID, d)
	if err != nil {
		return nil, err
	}
	return SlotsForDate(teacherID, d, slots, existing), nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	c, err := s.parseCandidate(req.TeacherID, req.Date, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}

	teacher, err := s.users.GetUser(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, platform.ErrUserNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	if teacher.Role != platform.RoleTeacher {
		return nil, ErrNotATeacher
	}

	student, err := s.users.GetUser(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, platform.ErrUserNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if student.Role != platform.RoleStudent {
		return nil, ErrNotAStudent
	}

	if req.SubjectID != nil {
		if _, err := s.users.GetSubject(ctx, *req.SubjectID); err != nil {
			return nil, err
		}
	}

	if err := s.checkCandidate(ctx, c); err != nil {
		return nil, err
	}

	b := &Booking{
		TeacherID: req.TeacherID,
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		GroupID:   req.GroupID,
		Date:      c.Date,
		Start:     c.Start,
		End:       c.End,
		Status:    StatusPending,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("teacher_id", b.TeacherID),
		zap.String("date", daytime.FormatDate(b.Date)),
	)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isStudent := b.StudentID == actorID
	isTeacher := b.TeacherID == actorID
	if !isAdmin && !isStudent && !isTeacher {
		return nil, ErrPermissionDenied
	}

	// Time changes are a teacher/admin affair; students cancel and rebook.
	timeChanged := req.Date != nil || req.StartTime != nil || req.EndTime != nil
	if timeChanged {
		if !isAdmin && !isTeacher {
			return nil, ErrPermissionDenied
		}

		date := daytime.FormatDate(b.Date)
		startTime := b.Start.Clock()
		endTime := b.End.Clock()
		if req.Date != nil {
			date = *req.Date
		}
		if req.StartTime != nil {
			startTime = *req.StartTime
		}
		if req.EndTime != nil {
			endTime = *req.EndTime
		}

		// The booking being edited is excluded so it cannot conflict with
		// itself.
		c, err := s.parseCandidate(b.TeacherID, date, startTime, endTime, b.ID)
		if err != nil {
			return nil, err
		}
		if err := s.checkCandidate(ctx, c); err != nil {
			return nil, err
		}
		b.Date = c.Date
		b.Start = c.Start
		b.End = c.End
	}

	if req.Status != nil {
		st := Status(*req.Status)
		if !ValidStatus(st) {
			return nil, ErrInvalidStatus
		}
		// A student may only cancel their own booking.
		if isStudent && !isAdmin && !isTeacher && st != StatusCancelled {
			return nil, ErrPermissionDenied
		}
		b.Status = st
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && b.StudentID != actorID && b.TeacherID != actorID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
