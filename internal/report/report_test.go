package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/attendly/attendly-backend/internal/model"
)

func TestAttendanceRate(t *testing.T) {
	require.Equal(t, 0.0, AttendanceRate(0, 0))
	require.Equal(t, 75.0, AttendanceRate(3, 4))
	require.Equal(t, 100.0, AttendanceRate(5, 5))
	require.Equal(t, 0.0, AttendanceRate(0, 10))
}

func TestPerStudentSummaryEmpty(t *testing.T) {
	s := PerStudentSummary(map[model.Status]int{})
	require.Equal(t, Summary{}, s)
}

func TestPerStudentSummaryMissingStatusesDefaultToZero(t *testing.T) {
	s := PerStudentSummary(map[model.Status]int{
		model.StatusLate: 2,
	})
	require.Equal(t, 2, s.Total)
	require.Equal(t, 0, s.Present)
	require.Equal(t, 0, s.Absent)
	require.Equal(t, 2, s.Late)
	require.Equal(t, 0.0, s.Rate)
}

func TestPerStudentSummary(t *testing.T) {
	// One Present and one Absent mark on the same day.
	s := PerStudentSummary(map[model.Status]int{
		model.StatusPresent: 1,
		model.StatusAbsent:  1,
	})
	require.Equal(t, 2, s.Total)
	require.Equal(t, 1, s.Present)
	require.Equal(t, 1, s.Absent)
	require.Equal(t, 0, s.Late)
	require.Equal(t, 50.0, s.Rate)
}
