package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/attendly/attendly-backend/internal/config"
	"github.com/attendly/attendly-backend/internal/model"
	"github.com/attendly/attendly-backend/internal/report"
)

var (
	// ErrInvalidStatus is returned when a status outside
	// {Present, Absent, Late} reaches Mark. This is a caller contract
	// violation and is rejected before storage.
	ErrInvalidStatus = errors.New("status must be Present, Absent or Late")

	// ErrStudentNotFound is returned when marking attendance for an
	// unknown student.
	ErrStudentNotFound = errors.New("student not found")
)

// AttendanceService handles attendance business logic. The clock is held as
// a field so tests can inject a fixed time.
type AttendanceService struct {
	store    AttendanceStore
	students StudentStore
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

// NewAttendanceService creates a new AttendanceService. rdb may be nil, in
// which case stats caching is disabled.
func NewAttendanceService(store AttendanceStore, students StudentStore, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		store:    store,
		students: students,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "attendance_service").Logger(),
		now:      time.Now,
	}
}

// Mark records an attendance event for a student. The calendar date and
// time-of-day are captured from the service clock at the moment of the
// call, not supplied by the caller. The student's current name is copied
// onto the record as a snapshot.
func (s *AttendanceService) Mark(ctx context.Context, studentID string, status model.Status) (*model.AttendanceRecord, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	now := s.now()
	rec := &model.AttendanceRecord{
		StudentID:   student.ID,
		StudentName: student.Name,
		Date:        dateOf(now),
		Time:        now.Format("15:04:05"),
		Status:      status,
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}

	s.InvalidateStatsCache(ctx)

	s.log.Info().
		Str("student_id", rec.StudentID).
		Str("status", string(rec.Status)).
		Msg("attendance marked")
	return rec, nil
}

// ListRecords retrieves attendance records matching the filter, newest
// first.
func (s *AttendanceService) ListRecords(ctx context.Context, f model.AttendanceFilter) ([]model.AttendanceRecord, error) {
	records, err := s.store.Query(ctx, f)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}
	return records, nil
}

// Stats retrieves aggregate counts, overall and for the current date.
// Results are cached in Redis for a short TTL; write paths invalidate the
// cache.
func (s *AttendanceService) Stats(ctx context.Context) (*model.AttendanceStats, error) {
	today := dateOf(s.now())
	key := config.CacheKey.AttendanceStatsKey(today.Format("2006-01-02"))

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			stats := &model.AttendanceStats{}
			if err := json.Unmarshal(cached, stats); err == nil {
				return stats, nil
			}
		}
	}

	stats, err := s.store.AggregateStats(ctx, today)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}
	return stats, nil
}

// StudentSummary derives a per-student attendance summary from the status
// counts. A student with no records yields an all-zero summary rather than
// an error.
func (s *AttendanceService) StudentSummary(ctx context.Context, studentID string) (report.Summary, error) {
	counts, err := s.store.StudentStatusCounts(ctx, studentID)
	if err != nil {
		return report.Summary{}, err
	}
	return report.PerStudentSummary(counts), nil
}

// InvalidateStatsCache drops the cached stats for the current date. Write
// paths call it so the dashboard never serves stale counts past a write.
func (s *AttendanceService) InvalidateStatsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	key := config.CacheKey.AttendanceStatsKey(dateOf(s.now()).Format("2006-01-02"))
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}

// dateOf strips the time-of-day, keeping only the calendar date in UTC for
// the DATE column.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
