package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendly-backend/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func setupAttendanceService() (*AttendanceService, *mockAttendanceStore, *mockStudentStore) {
	store := newMockAttendanceStore()
	students := newMockStudentStore()
	svc := NewAttendanceService(store, students, nil, 30*time.Second, testLogger())
	return svc, store, students
}

func TestAttendanceServiceMarkStampsClock(t *testing.T) {
	svc, store, students := setupAttendanceService()
	_ = students.Create(context.Background(), &model.Student{ID: "STU001", Name: "Alice", Department: model.DepartmentComputerScience})

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	svc.now = fixedClock(at)

	rec, err := svc.Mark(context.Background(), "STU001", model.StatusPresent)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), rec.Date)
	require.Equal(t, "09:26:53", rec.Time)
	require.Equal(t, "Alice", rec.StudentName)
	require.Len(t, store.records, 1)
}

func TestAttendanceServiceMarkInvalidStatus(t *testing.T) {
	svc, store, students := setupAttendanceService()
	_ = students.Create(context.Background(), &model.Student{ID: "STU001", Name: "Alice"})

	_, err := svc.Mark(context.Background(), "STU001", model.Status("Sleeping"))
	require.ErrorIs(t, err, ErrInvalidStatus)
	require.Empty(t, store.records)
}

func TestAttendanceServiceMarkUnknownStudent(t *testing.T) {
	svc, store, _ := setupAttendanceService()

	_, err := svc.Mark(context.Background(), "GHOST", model.StatusPresent)
	require.ErrorIs(t, err, ErrStudentNotFound)
	require.Empty(t, store.records)
}

func TestAttendanceServiceMarkTwicePerDayAllowed(t *testing.T) {
	// Re-marking the same student on the same day produces two rows.
	svc, store, students := setupAttendanceService()
	_ = students.Create(context.Background(), &model.Student{ID: "STU001", Name: "Alice"})
	svc.now = fixedClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))

	_, err := svc.Mark(context.Background(), "STU001", model.StatusPresent)
	require.NoError(t, err)
	_, err = svc.Mark(context.Background(), "STU001", model.StatusAbsent)
	require.NoError(t, err)
	require.Len(t, store.records, 2)

	summary, err := svc.StudentSummary(context.Background(), "STU001")
	require.NoError(t, err)
	require.Equal(t, 2, summary.Total)
	require.Equal(t, 1, summary.Present)
	require.Equal(t, 1, summary.Absent)
	require.Equal(t, 50.0, summary.Rate)
}

func TestAttendanceServiceListRecordsFiltersCompose(t *testing.T) {
	svc, _, students := setupAttendanceService()
	_ = students.Create(context.Background(), &model.Student{ID: "STU001", Name: "Alice"})
	_ = students.Create(context.Background(), &model.Student{ID: "STU002", Name: "Bob"})

	dayOne := time.Date(2025, 3, 13, 8, 0, 0, 0, time.UTC)
	dayTwo := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	svc.now = fixedClock(dayOne)
	_, _ = svc.Mark(context.Background(), "STU001", model.StatusPresent)
	_, _ = svc.Mark(context.Background(), "STU002", model.StatusLate)
	svc.now = fixedClock(dayTwo)
	_, _ = svc.Mark(context.Background(), "STU001", model.StatusAbsent)
	_, _ = svc.Mark(context.Background(), "STU002", model.StatusPresent)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	records, err := svc.ListRecords(context.Background(), model.AttendanceFilter{
		Date:      &date,
		StudentID: "STU001",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "STU001", records[0].StudentID)
	require.Equal(t, model.StatusAbsent, records[0].Status)
}

func TestAttendanceServiceListRecordsAllMeansUnconstrained(t *testing.T) {
	svc, _, students := setupAttendanceService()
	_ = students.Create(context.Background(), &model.Student{ID: "STU001", Name: "Alice"})
	_, _ = svc.Mark(context.Background(), "STU001", model.StatusPresent)

	records, err := svc.ListRecords(context.Background(), model.AttendanceFilter{
		StudentID: "All",
		Status:    "All",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestAttendanceServiceStatsEmptyStore(t *testing.T) {
	svc, _, _ := setupAttendanceService()

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, &model.AttendanceStats{}, stats)
}

func TestAttendanceServiceStatsCountsToday(t *testing.T) {
	svc, _, students := setupAttendanceService()
	_ = students.Create(context.Background(), &model.Student{ID: "STU001", Name: "Alice"})

	yesterday := time.Date(2025, 3, 13, 8, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	svc.now = fixedClock(yesterday)
	_, _ = svc.Mark(context.Background(), "STU001", model.StatusLate)
	svc.now = fixedClock(today)
	_, _ = svc.Mark(context.Background(), "STU001", model.StatusPresent)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.Present)
	require.Equal(t, 1, stats.Late)
	require.Equal(t, 1, stats.TodayPresent)
	require.Equal(t, 0, stats.TodayLate)
}

func TestAttendanceServiceStatsCachedInRedis(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer rdb.Close()

	store := newMockAttendanceStore()
	students := newMockStudentStore()
	svc := NewAttendanceService(store, students, rdb, 30*time.Second, testLogger())
	svc.now = fixedClock(time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC))

	_, err = svc.Stats(context.Background())
	require.NoError(t, err)
	_, err = svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, store.aggregateCalls)
}

func TestAttendanceServiceMarkInvalidatesStatsCache(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer rdb.Close()

	store := newMockAttendanceStore()
	students := newMockStudentStore()
	_ = students.Create(context.Background(), &model.Student{ID: "STU001", Name: "Alice"})
	svc := NewAttendanceService(store, students, rdb, 30*time.Second, testLogger())
	svc.now = fixedClock(time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, stats.Total)

	_, err = svc.Mark(context.Background(), "STU001", model.StatusPresent)
	require.NoError(t, err)

	stats, err = svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.Total)
}
