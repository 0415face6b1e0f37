package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

type Repository interface {
	Create(ctx context.Context, slot *WeeklySlot) error
	GetByID(ctx context.Context, id string) (*WeeklySlot, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*WeeklySlot, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *WeeklySlot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.weekly_slots").
		Columns("teacher_id", "weekday", "start_min", "end_min").
		Values(s.TeacherID, s.Weekday, int(s.Start), int(s.End)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create slot query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*WeeklySlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "teacher_id", "weekday", "start_min", "end_min", "created_at").
		From("public.weekly_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get slot query failed: %w", err)
	}

	var (
		s                WeeklySlot
		startMin, endMin int
	)
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.TeacherID, &s.Weekday, &startMin, &endMin, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get slot failed: %w", err)
	}
	s.Start = daytime.MinuteOfDay(startMin)
	s.End = daytime.MinuteOfDay(endMin)
	return &s, nil
}

func (r *pgxRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*WeeklySlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "teacher_id", "weekday", "start_min", "end_min", "created_at").
		From("public.weekly_slots").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("weekday", "start_min").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots failed: %w", err)
	}
	defer rows.Close()

	var slots []*WeeklySlot
	for rows.Next() {
		var (
			s                WeeklySlot
			startMin, endMin int
		)
		if err := rows.Scan(&s.ID, &s.TeacherID, &s.Weekday, &startMin, &endMin, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot failed: %w", err)
		}
		s.Start = daytime.MinuteOfDay(startMin)
		s.End = daytime.MinuteOfDay(endMin)
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.weekly_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete slot query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
