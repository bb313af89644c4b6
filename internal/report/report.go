// Package report derives summary statistics from repository query results.
// It performs no storage access.
package report

import "github.com/attendly/attendly-backend/internal/model"

// Summary is a per-student attendance breakdown.
type Summary struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Late    int     `json:"late"`
	Rate    float64 `json:"rate"`
}

// AttendanceRate returns present/total as a percentage. By convention a
// total of zero yields 0 rather than a division error.
func AttendanceRate(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// PerStudentSummary folds a status-count mapping into a Summary. Missing
// statuses default to zero.
func PerStudentSummary(counts map[model.Status]int) Summary {
	s := Summary{
		Present: counts[model.StatusPresent],
		Absent:  counts[model.StatusAbsent],
		Late:    counts[model.StatusLate],
	}
	for _, n := range counts {
		s.Total += n
	}
	s.Rate = AttendanceRate(s.Present, s.Total)
	return s
}
