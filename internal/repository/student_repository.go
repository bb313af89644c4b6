package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/attendly/attendly-backend/internal/model"
)

// ErrDuplicateStudentID is returned when a student with the same ID already
// exists. Callers rely on this being distinguishable from a generic storage
// failure.
var ErrDuplicateStudentID = errors.New("student with this ID already exists")

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, department, created_at FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Department, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all students sorted by name ascending. An empty store
// yields an empty slice, not an error.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, department, created_at FROM students ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Department, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Create inserts a new student inside a single transaction. ID and name are
// trimmed of surrounding whitespace before insertion; callers pre-validate
// that they are non-empty.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO students (id, name, department) VALUES ($1, $2, $3)
		 RETURNING created_at`,
		s.ID, s.Name, s.Department,
	).Scan(&s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentID
		}
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a student by ID and reports whether a row was actually
// removed. The ON DELETE CASCADE constraint removes the student's attendance
// rows in the same transaction, so a partial delete is never observable.
func (r *StudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
