package recurrence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorspot/lesson-booking-backend/internal/pkg/daytime"
)

type Repository interface {
	Create(ctx context.Context, g *Group) error
	GetByID(ctx context.Context, id string) (*Group, error)
	List(ctx context.Context, teacherID, studentID string) ([]*Group, error)
	UpdatePeriod(ctx context.Context, id string, month, year int) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const groupColumns = "id, teacher_id, student_id, subject_id, weekday, start_min, end_min, month, year, created_at"

func (r *pgxRepository) Create(ctx context.Context, g *Group) error {
	// The id is generated here so bookings can reference the group within
	// the same request without a read-back.
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.recurring_groups").
		Columns("id", "teacher_id", "student_id", "subject_id", "weekday", "start_min", "end_min", "month", "year").
		Values(g.ID, g.TeacherID, g.StudentID, g.SubjectID, g.Weekday, int(g.Start), int(g.End), g.Month, g.Year).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create group query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&g.CreatedAt)
}

func scanGroup(row pgx.Row) (*Group, error) {
	var (
		g                Group
		startMin, endMin int
	)
	if err := row.Scan(
		&g.ID, &g.TeacherID, &g.StudentID, &g.SubjectID, &g.Weekday,
		&startMin, &endMin, &g.Month, &g.Year, &g.CreatedAt,
	); err != nil {
		return nil, err
	}
	g.Start = daytime.MinuteOfDay(startMin)
	g.End = daytime.MinuteOfDay(endMin)
	return &g, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Group, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(groupColumns).
		From("public.recurring_groups").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get group query failed: %w", err)
	}

	g, err := scanGroup(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get group failed: %w", err)
	}
	return g, nil
}

func (r *pgxRepository) List(ctx context.Context, teacherID, studentID string) ([]*Group, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select(groupColumns).
		From("public.recurring_groups").
		OrderBy("created_at DESC")
	if teacherID != "" {
		builder = builder.Where(squirrel.Eq{"teacher_id": teacherID})
	}
	if studentID != "" {
		builder = builder.Where(squirrel.Eq{"student_id": studentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list groups query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list groups failed: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group failed: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *pgxRepository) UpdatePeriod(ctx context.Context, id string, month, year int) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.recurring_groups").
		Set("month", month).
		Set("year", year).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update group query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update group failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
