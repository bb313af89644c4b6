package service

import (
	"context"
	"time"

	"github.com/attendly/attendly-backend/internal/model"
)

// StudentStore is the student persistence surface consumed by services.
// *repository.StudentRepository satisfies it; tests substitute in-memory
// implementations.
type StudentStore interface {
	GetByID(ctx context.Context, id string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id string) (bool, error)
}

// AttendanceStore is the attendance persistence surface consumed by
// services. *repository.AttendanceRepository satisfies it.
type AttendanceStore interface {
	Insert(ctx context.Context, rec *model.AttendanceRecord) error
	Query(ctx context.Context, f model.AttendanceFilter) ([]model.AttendanceRecord, error)
	AggregateStats(ctx context.Context, today time.Time) (*model.AttendanceStats, error)
	StudentStatusCounts(ctx context.Context, studentID string) (map[model.Status]int, error)
}
