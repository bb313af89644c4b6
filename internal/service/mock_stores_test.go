package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/attendly/attendly-backend/internal/model"
	"github.com/attendly/attendly-backend/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// ── Mock StudentStore ──

type mockStudentStore struct {
	students map[string]*model.Student
}

func newMockStudentStore() *mockStudentStore {
	return &mockStudentStore{students: make(map[string]*model.Student)}
}

func (m *mockStudentStore) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *mockStudentStore) List(_ context.Context) ([]model.Student, error) {
	result := []model.Student{}
	for _, s := range m.students {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockStudentStore) Create(_ context.Context, s *model.Student) error {
	if _, ok := m.students[s.ID]; ok {
		return repository.ErrDuplicateStudentID
	}
	s.CreatedAt = time.Now()
	m.students[s.ID] = s
	return nil
}

func (m *mockStudentStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.students[id]; !ok {
		return false, nil
	}
	delete(m.students, id)
	return true, nil
}

// ── Mock AttendanceStore ──

type mockAttendanceStore struct {
	records []model.AttendanceRecord
	nextID  int

	aggregateCalls int
}

func newMockAttendanceStore() *mockAttendanceStore {
	return &mockAttendanceStore{nextID: 1}
}

func (m *mockAttendanceStore) Insert(_ context.Context, rec *model.AttendanceRecord) error {
	rec.ID = m.nextID
	rec.CreatedAt = time.Now()
	m.nextID++
	m.records = append(m.records, *rec)
	return nil
}

func (m *mockAttendanceStore) Query(_ context.Context, f model.AttendanceFilter) ([]model.AttendanceRecord, error) {
	result := []model.AttendanceRecord{}
	for _, rec := range m.records {
		if f.Date != nil && !rec.Date.Equal(*f.Date) {
			continue
		}
		if f.StudentID != "" && f.StudentID != "All" && rec.StudentID != f.StudentID {
			continue
		}
		if f.Status != "" && f.Status != "All" && string(rec.Status) != f.Status {
			continue
		}
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].Time > result[j].Time
	})
	return result, nil
}

func (m *mockAttendanceStore) AggregateStats(_ context.Context, today time.Time) (*model.AttendanceStats, error) {
	m.aggregateCalls++
	stats := &model.AttendanceStats{}
	for _, rec := range m.records {
		stats.Total++
		isToday := rec.Date.Equal(today)
		switch rec.Status {
		case model.StatusPresent:
			stats.Present++
			if isToday {
				stats.TodayPresent++
			}
		case model.StatusAbsent:
			stats.Absent++
			if isToday {
				stats.TodayAbsent++
			}
		case model.StatusLate:
			stats.Late++
			if isToday {
				stats.TodayLate++
			}
		}
	}
	return stats, nil
}

func (m *mockAttendanceStore) StudentStatusCounts(_ context.Context, studentID string) (map[model.Status]int, error) {
	counts := make(map[model.Status]int)
	for _, rec := range m.records {
		if rec.StudentID == studentID {
			counts[rec.Status]++
		}
	}
	return counts, nil
}
