package service

import (
	"context"
	"time"
)

// DashboardData consolidates the admin dashboard metrics.
type DashboardData struct {
	TotalStudents int    `json:"total_students"`
	TotalRecords  int    `json:"total_records"`
	Today         string `json:"today"`
}

// DashboardService handles the dashboard overview.
type DashboardService struct {
	students   *StudentService
	attendance *AttendanceService
	now        func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(students *StudentService, attendance *AttendanceService) *DashboardService {
	return &DashboardService{
		students:   students,
		attendance: attendance,
		now:        time.Now,
	}
}

// GetDashboardData fetches the student and record totals plus the current
// date.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.attendance.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		TotalStudents: len(students),
		TotalRecords:  stats.Total,
		Today:         s.now().Format("January 02, 2006"),
	}, nil
}
