package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/attendly/attendly-backend/internal/model"
)

// AttendanceRepository handles attendance data access. Records are
// insert-only; rows are removed only by the cascade when the owning student
// is deleted.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Insert writes a new attendance record inside a single transaction. Date,
// time and status are supplied by the caller (the service stamps them from
// its clock).
func (r *AttendanceRepository) Insert(ctx context.Context, rec *model.AttendanceRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO attendance (student_id, student_name, date, time, status)
		 VALUES ($1, $2, $3, $4::time, $5)
		 RETURNING id, created_at`,
		rec.StudentID, rec.StudentName, rec.Date, rec.Time, rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Query retrieves attendance records matching the filter, sorted by date
// descending then time descending. Filter fields are conjunctive; zero
// values mean no constraint. No matches yields an empty slice, not an error.
func (r *AttendanceRepository) Query(ctx context.Context, f model.AttendanceFilter) ([]model.AttendanceRecord, error) {
	query := `SELECT id, student_id, student_name, date, time::text, status, created_at
		 FROM attendance`
	var clauses []string
	var args []interface{}

	if f.Date != nil {
		args = append(args, *f.Date)
		clauses = append(clauses, "date = $"+strconv.Itoa(len(args)))
	}
	if f.StudentID != "" && f.StudentID != "All" {
		args = append(args, f.StudentID)
		clauses = append(clauses, "student_id = $"+strconv.Itoa(len(args)))
	}
	if f.Status != "" && f.Status != "All" {
		args = append(args, f.Status)
		clauses = append(clauses, "status = $"+strconv.Itoa(len(args)))
	}

	for i, c := range clauses {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY date DESC, time DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AttendanceRecord{}
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.StudentName, &rec.Date,
			&rec.Time, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// AggregateStats retrieves the total record count, per-status counts overall
// and per-status counts for the given day. An empty table yields all zeros.
func (r *AttendanceRepository) AggregateStats(ctx context.Context, today time.Time) (*model.AttendanceStats, error) {
	stats := &model.AttendanceStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Present'),
			COUNT(*) FILTER (WHERE status = 'Absent'),
			COUNT(*) FILTER (WHERE status = 'Late'),
			COUNT(*) FILTER (WHERE status = 'Present' AND date = $1),
			COUNT(*) FILTER (WHERE status = 'Absent' AND date = $1),
			COUNT(*) FILTER (WHERE status = 'Late' AND date = $1)
		 FROM attendance`, today,
	).Scan(&stats.Total, &stats.Present, &stats.Absent, &stats.Late,
		&stats.TodayPresent, &stats.TodayAbsent, &stats.TodayLate)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// StudentStatusCounts retrieves the per-status record counts for one
// student. A student with no records yields an empty map.
func (r *AttendanceRepository) StudentStatusCounts(ctx context.Context, studentID string) (map[model.Status]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM attendance WHERE student_id = $1 GROUP BY status`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.Status]int)
	for rows.Next() {
		var status model.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
