package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attendly/attendly-backend/internal/response"
	"github.com/attendly/attendly-backend/internal/service"
)

// ExportHandler serves CSV downloads of attendance records.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportAttendance godoc
// GET /api/v1/attendance/export?date=&student_id=&status=
// Downloads the filtered attendance records as CSV. The filename embeds the
// current date.
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	filter, fields := parseAttendanceFilter(c)
	if fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	data, filename, err := h.exportService.BuildCSV(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", data)
}
