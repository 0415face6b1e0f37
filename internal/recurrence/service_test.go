package recurrence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorspot/lesson-booking-backend/internal/booking"
	"github.com/tutorspot/lesson-booking-backend/internal/pkg/clock"
)

type fakeGroupRepo struct {
	groups map[string]*Group
	nextID int
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[string]*Group)}
}

func (f *fakeGroupRepo) Create(_ context.Context, g *Group) error {
	f.nextID++
	if g.ID == "" {
		g.ID = fmt.Sprintf("group-%d", f.nextID)
	}
	g.CreatedAt = time.Now()
	cp := *g
	f.groups[g.ID] = &cp
	return nil
}

func (f *fakeGroupRepo) GetByID(_ context.Context, id string) (*Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGroupRepo) List(_ context.Context, _, _ string) ([]*Group, error) {
	var out []*Group
	for _, g := range f.groups {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeGroupRepo) UpdatePeriod(_ context.Context, id string, month, year int) error {
	g, ok := f.groups[id]
	if !ok {
		return ErrNotFound
	}
	g.Month = month
	g.Year = year
	return nil
}

// fakeBookings records creation requests and fails the dates listed in
// failDates, standing in for slot conflicts on those days.
type fakeBookings struct {
	created   []booking.CreateRequest
	failDates map[string]error
	nextID    int
}

func (f *fakeBookings) Create(_ context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	if err, ok := f.failDates[req.Date]; ok {
		return nil, err
	}
	f.nextID++
	f.created = append(f.created, req)
	return &booking.Booking{ID: fmt.Sprintf("booking-%d", f.nextID)}, nil
}

func (f *fakeBookings) Validate(context.Context, booking.ValidateRequest) error { panic("not used") }
func (f *fakeBookings) SlotsForDate(context.Context, string, string) ([]booking.DaySlot, error) {
	panic("not used")
}
func (f *fakeBookings) GetByID(context.Context, string) (*booking.Booking, error) {
	panic("not used")
}
func (f *fakeBookings) List(context.Context, booking.Filter) ([]*booking.Booking, int, error) {
	panic("not used")
}
func (f *fakeBookings) Update(context.Context, string, booking.UpdateRequest, string, bool) (*booking.Booking, error) {
	panic("not used")
}
func (f *fakeBookings) Delete(context.Context, string, string, bool) error { panic("not used") }

func newRecurrenceService(t *testing.T, now time.Time, failDates map[string]error) (Service, *fakeGroupRepo, *fakeBookings) {
	t.Helper()
	repo := newFakeGroupRepo()
	bookings := &fakeBookings{failDates: failDates}
	svc := NewService(repo, bookings, clock.Fixed(now), time.UTC, nil, zap.NewNop())
	return svc, repo, bookings
}

func TestPreviewDefaultsPeriodFromClock(t *testing.T) {
	svc, _, _ := newRecurrenceService(t, time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC), nil)

	res, err := svc.Preview(context.Background(), PreviewRequest{Weekday: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Month)
	assert.Equal(t, 2024, res.Year)
	assert.Equal(t, []string{"2024-02-05", "2024-02-12", "2024-02-19", "2024-02-26"}, res.Dates)
}

func TestPreviewRejectsBadPattern(t *testing.T) {
	svc, _, _ := newRecurrenceService(t, time.Now(), nil)
	ctx := context.Background()

	_, err := svc.Preview(ctx, PreviewRequest{Weekday: 7, Month: 2, Year: 2024})
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = svc.Preview(ctx, PreviewRequest{Weekday: 1, Month: 13, Year: 2024})
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestCreateBatchAccountsForEveryDate(t *testing.T) {
	// Two of the four February Mondays are already taken.
	failDates := map[string]error{
		"2024-02-12": booking.ErrTimeConflict,
		"2024-02-26": booking.ErrNoAvailability,
	}
	svc, repo, bookings := newRecurrenceService(t, time.Now(), failDates)

	res, err := svc.Create(context.Background(), CreateRequest{
		TeacherID: "t-1",
		StudentID: "s-1",
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "10:00",
		Month:     2,
		Year:      2024,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, res.TotalDates)
	assert.Len(t, res.CreatedIDs, 2)
	assert.Len(t, res.Failed, 2)
	assert.Equal(t, res.TotalDates, len(res.CreatedIDs)+len(res.Failed))

	// Failures are reported in date order with the underlying reason.
	assert.Equal(t, "2024-02-12", res.Failed[0].Date)
	assert.Equal(t, booking.ErrTimeConflict.Error(), res.Failed[0].Reason)
	assert.Equal(t, "2024-02-26", res.Failed[1].Date)

	// The group is persisted and every created booking references it.
	g, err := repo.GetByID(context.Background(), res.GroupID)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Month)
	for _, req := range bookings.created {
		require.NotNil(t, req.GroupID)
		assert.Equal(t, g.ID, *req.GroupID)
	}
}

func TestCreateRejectsInvalidTimes(t *testing.T) {
	svc, _, _ := newRecurrenceService(t, time.Now(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{
		TeacherID: "t-1", StudentID: "s-1", Weekday: 1,
		StartTime: "10:00", EndTime: "09:00", Month: 2, Year: 2024,
	})
	assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)

	_, err = svc.Create(ctx, CreateRequest{
		TeacherID: "t-1", StudentID: "s-1", Weekday: 1,
		StartTime: "9:00", EndTime: "10:00", Month: 2, Year: 2024,
	})
	assert.ErrorIs(t, err, booking.ErrInvalidInput)
}

func TestRenewRollsDecemberIntoJanuary(t *testing.T) {
	svc, repo, _ := newRecurrenceService(t, time.Now(), nil)
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateRequest{
		TeacherID: "t-1",
		StudentID: "s-1",
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "10:00",
		Month:     12,
		Year:      2024,
	})
	require.NoError(t, err)

	renewed, err := svc.Renew(ctx, res.GroupID)
	require.NoError(t, err)
	assert.Equal(t, 1, renewed.Month)
	assert.Equal(t, 2025, renewed.Year)
	// January 2025 Mondays: 6, 13, 20, 27.
	assert.Equal(t, 4, renewed.TotalDates)

	g, err := repo.GetByID(ctx, res.GroupID)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Month)
	assert.Equal(t, 2025, g.Year)
}

func TestRenewUnknownGroup(t *testing.T) {
	svc, _, _ := newRecurrenceService(t, time.Now(), nil)
	_, err := svc.Renew(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
