package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/attendly/attendly-backend/internal/model"
	"github.com/attendly/attendly-backend/internal/response"
	"github.com/attendly/attendly-backend/internal/service"
	"github.com/attendly/attendly-backend/internal/validator"
)

// AttendanceHandler handles attendance marking and record queries.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// MarkAttendance godoc
// POST /api/v1/attendance
// Marks attendance for a student. Date and time are captured server-side.
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req model.MarkAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.attendanceService.Mark(c.Request.Context(), req.StudentID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidStatus)
		case errors.Is(err, service.ErrStudentNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"record": record})
}

// ListAttendance godoc
// GET /api/v1/attendance?date=&student_id=&status=
// Lists attendance records, newest first. Filters are conjunctive; an
// absent or "All" value leaves that field unconstrained.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	filter, fields := parseAttendanceFilter(c)
	if fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	records, err := h.attendanceService.ListRecords(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"records": records})
}

// GetStats godoc
// GET /api/v1/attendance/stats
// Returns aggregate record counts, overall and for today.
func (h *AttendanceHandler) GetStats(c *gin.Context) {
	stats, err := h.attendanceService.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// StudentSummary godoc
// GET /api/v1/students/:id/summary
// Returns the per-student attendance breakdown. A student with no records
// yields an all-zero summary.
func (h *AttendanceHandler) StudentSummary(c *gin.Context) {
	summary, err := h.attendanceService.StudentSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

// parseAttendanceFilter reads the shared query-string filter parameters.
// It returns a field error map when a parameter is malformed.
func parseAttendanceFilter(c *gin.Context) (model.AttendanceFilter, map[string]string) {
	filter := model.AttendanceFilter{
		StudentID: c.Query("student_id"),
		Status:    c.Query("status"),
	}

	if raw := c.Query("date"); raw != "" && raw != "All" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, map[string]string{"date": "must be a date in YYYY-MM-DD format"}
		}
		filter.Date = &date
	}

	if s := filter.Status; s != "" && s != "All" && !model.Status(s).Valid() {
		return filter, map[string]string{"status": "must be one of Present, Absent, Late or All"}
	}

	return filter, nil
}
