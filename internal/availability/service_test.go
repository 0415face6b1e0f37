package availability

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorspot/lesson-booking-backend/internal/platform"
)

type fakeRepo struct {
	slots  []*WeeklySlot
	nextID int
}

func (f *fakeRepo) Create(_ context.Context, s *WeeklySlot) error {
	f.nextID++
	s.ID = fmt.Sprintf("slot-%d", f.nextID)
	cp := *s
	f.slots = append(f.slots, &cp)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*WeeklySlot, error) {
	for _, s := range f.slots {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) ListByTeacher(_ context.Context, teacherID string) ([]*WeeklySlot, error) {
	var out []*WeeklySlot
	for _, s := range f.slots {
		if s.TeacherID == teacherID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i, s := range f.slots {
		if s.ID == id {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeDirectory struct {
	users map[string]*platform.User
}

func (f *fakeDirectory) GetUser(_ context.Context, id string) (*platform.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, platform.ErrUserNotFound
}

const (
	teacherID = "7f3c1a40-2a9e-4f0d-8a11-6f9d1f2b3c4d"
	studentID = "0b2d4e6f-8a9c-4b1d-9e0f-1a2b3c4d5e6f"
)

func newTestService() Service {
	dir := &fakeDirectory{users: map[string]*platform.User{
		teacherID: {ID: teacherID, Role: platform.RoleTeacher},
		studentID: {ID: studentID, Role: platform.RoleStudent},
	}}
	return NewService(&fakeRepo{}, dir)
}

func TestCreateSlot(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	slot, err := svc.Create(ctx, CreateRequest{TeacherID: teacherID, Weekday: 1, Start: "09:00", End: "12:00"})
	require.NoError(t, err)
	assert.Equal(t, "09:00", slot.Start.Clock())
	assert.Equal(t, "12:00", slot.End.Clock())

	slots, err := svc.ListByTeacher(ctx, teacherID)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestCreateSlotValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"weekday too large", CreateRequest{TeacherID: teacherID, Weekday: 7, Start: "09:00", End: "10:00"}, ErrInvalidWeekday},
		{"weekday negative", CreateRequest{TeacherID: teacherID, Weekday: -1, Start: "09:00", End: "10:00"}, ErrInvalidWeekday},
		{"start after end", CreateRequest{TeacherID: teacherID, Weekday: 1, Start: "12:00", End: "09:00"}, ErrInvalidTimeRange},
		{"start equals end", CreateRequest{TeacherID: teacherID, Weekday: 1, Start: "09:00", End: "09:00"}, ErrInvalidTimeRange},
		{"unpadded hour", CreateRequest{TeacherID: teacherID, Weekday: 1, Start: "9:00", End: "10:00"}, ErrInvalidTimeRange},
		{"unknown teacher", CreateRequest{TeacherID: "missing", Weekday: 1, Start: "09:00", End: "10:00"}, ErrTeacherNotFound},
		{"student as teacher", CreateRequest{TeacherID: studentID, Weekday: 1, Start: "09:00", End: "10:00"}, ErrNotATeacher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateSlotRejectsOverlap(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{TeacherID: teacherID, Weekday: 1, Start: "09:00", End: "12:00"})
	require.NoError(t, err)

	// Overlapping interval on the same weekday is rejected.
	_, err = svc.Create(ctx, CreateRequest{TeacherID: teacherID, Weekday: 1, Start: "11:00", End: "13:00"})
	assert.ErrorIs(t, err, ErrSlotOverlap)

	// Same interval on another weekday is fine.
	_, err = svc.Create(ctx, CreateRequest{TeacherID: teacherID, Weekday: 2, Start: "11:00", End: "13:00"})
	assert.NoError(t, err)

	// Abutting interval on the same weekday is fine.
	_, err = svc.Create(ctx, CreateRequest{TeacherID: teacherID, Weekday: 1, Start: "12:00", End: "14:00"})
	assert.NoError(t, err)
}
