package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/attendly/attendly-backend/internal/model"
)

// ErrEmptyStudentField is returned when a student's ID or name is empty
// after trimming.
var ErrEmptyStudentField = errors.New("student id and name must be non-empty")

// StudentService handles student business logic.
type StudentService struct {
	store StudentStore
	log   zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(store StudentStore, log zerolog.Logger) *StudentService {
	return &StudentService{
		store: store,
		log:   log.With().Str("component", "student_service").Logger(),
	}
}

// List retrieves all students sorted by name.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// Register creates a new student. ID and name are trimmed; an empty result
// is rejected before storage. A duplicate ID surfaces as
// repository.ErrDuplicateStudentID, distinguishable from storage failures.
func (s *StudentService) Register(ctx context.Context, id, name string, department model.Department) (*model.Student, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, ErrEmptyStudentField
	}

	student := &model.Student{
		ID:         id,
		Name:       name,
		Department: department,
	}
	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}

	s.log.Info().Str("student_id", student.ID).Msg("student registered")
	return student, nil
}

// Remove deletes a student and, through the cascade, all of their
// attendance records. It reports whether the student existed.
func (s *StudentService) Remove(ctx context.Context, id string) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info().Str("student_id", id).Msg("student deleted")
	}
	return deleted, nil
}
