package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attendly/attendly-backend/internal/model"
	"github.com/attendly/attendly-backend/internal/repository"
	"github.com/attendly/attendly-backend/internal/response"
	"github.com/attendly/attendly-backend/internal/service"
	"github.com/attendly/attendly-backend/internal/validator"
)

// StudentHandler handles student registration and management.
type StudentHandler struct {
	studentService    *service.StudentService
	attendanceService *service.AttendanceService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService, attendanceService *service.AttendanceService) *StudentHandler {
	return &StudentHandler{
		studentService:    studentService,
		attendanceService: attendanceService,
	}
}

// ListStudents godoc
// GET /api/v1/students
// Lists all students sorted by name.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// RegisterStudent godoc
// POST /api/v1/students
// Registers a new student.
func (h *StudentHandler) RegisterStudent(c *gin.Context) {
	var req model.RegisterStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Register(c.Request.Context(), req.ID, req.Name, req.Department)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateStudentID):
			response.Fail(c, http.StatusConflict, response.ErrDuplicateStudentID)
		case errors.Is(err, service.ErrEmptyStudentField):
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// DeleteStudent godoc
// DELETE /api/v1/students/:id
// Deletes a student and all of their attendance records.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.studentService.Remove(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		return
	}

	// The cascade changed today's counts.
	h.attendanceService.InvalidateStatsCache(c.Request.Context())

	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}
