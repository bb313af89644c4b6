package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/attendly/attendly-backend/internal/model"
	"github.com/attendly/attendly-backend/internal/repository"
)

func TestStudentServiceRegisterAndList(t *testing.T) {
	store := newMockStudentStore()
	svc := NewStudentService(store, testLogger())

	student, err := svc.Register(context.Background(), "STU001", "Alice", model.DepartmentComputerScience)
	require.NoError(t, err)
	require.Equal(t, "STU001", student.ID)

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Equal(t, "STU001", students[0].ID)
	require.Equal(t, "Alice", students[0].Name)
	require.Equal(t, model.DepartmentComputerScience, students[0].Department)
}

func TestStudentServiceRegisterTrimsWhitespace(t *testing.T) {
	store := newMockStudentStore()
	svc := NewStudentService(store, testLogger())

	student, err := svc.Register(context.Background(), "  STU001 ", " Alice ", model.DepartmentArts)
	require.NoError(t, err)
	require.Equal(t, "STU001", student.ID)
	require.Equal(t, "Alice", student.Name)
}

func TestStudentServiceRegisterRejectsEmptyAfterTrim(t *testing.T) {
	store := newMockStudentStore()
	svc := NewStudentService(store, testLogger())

	_, err := svc.Register(context.Background(), "   ", "Alice", model.DepartmentArts)
	require.ErrorIs(t, err, ErrEmptyStudentField)

	_, err = svc.Register(context.Background(), "STU001", "   ", model.DepartmentArts)
	require.ErrorIs(t, err, ErrEmptyStudentField)
	require.Empty(t, store.students)
}

func TestStudentServiceRegisterDuplicateID(t *testing.T) {
	store := newMockStudentStore()
	svc := NewStudentService(store, testLogger())

	_, err := svc.Register(context.Background(), "STU001", "Alice", model.DepartmentBusiness)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "STU001", "Bob", model.DepartmentArts)
	require.ErrorIs(t, err, repository.ErrDuplicateStudentID)

	// The existing row is unmodified.
	require.Equal(t, "Alice", store.students["STU001"].Name)
}

func TestStudentServiceListEmptyStore(t *testing.T) {
	svc := NewStudentService(newMockStudentStore(), testLogger())

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, students)
	require.Empty(t, students)
}

func TestStudentServiceRemove(t *testing.T) {
	store := newMockStudentStore()
	svc := NewStudentService(store, testLogger())

	_, err := svc.Register(context.Background(), "STU001", "Alice", model.DepartmentArts)
	require.NoError(t, err)

	deleted, err := svc.Remove(context.Background(), "STU001")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = svc.Remove(context.Background(), "STU001")
	require.NoError(t, err)
	require.False(t, deleted)
}
