package model

import "time"

// Status represents an attendance outcome.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
)

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// AttendanceRecord is a single attendance-marking event. StudentName is a
// snapshot of the student's name at marking time and is intentionally not
// kept in sync with later edits. Records are insert-only; they disappear
// only when the owning student is deleted.
type AttendanceRecord struct {
	ID          int       `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// AttendanceFilter holds optional, conjunctive query constraints. Zero
// values (nil date, empty or "All" strings) mean "no constraint".
type AttendanceFilter struct {
	Date      *time.Time
	StudentID string
	Status    string
}

// AttendanceStats aggregates record counts overall and for a single day.
// All counts default to zero on an empty table.
type AttendanceStats struct {
	Total        int `json:"total"`
	Present      int `json:"present"`
	Absent       int `json:"absent"`
	Late         int `json:"late"`
	TodayPresent int `json:"today_present"`
	TodayAbsent  int `json:"today_absent"`
	TodayLate    int `json:"today_late"`
}

// MarkAttendanceRequest is the payload for marking attendance.
type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" binding:"required,min=1,max=30"`
	Status    Status `json:"status" binding:"required,oneof=Present Absent Late"`
}
