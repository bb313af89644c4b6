package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/attendly/attendly-backend/internal/model"
)

// ExportService renders filtered attendance records as CSV downloads.
type ExportService struct {
	store AttendanceStore
	log   zerolog.Logger
	now   func() time.Time
}

// NewExportService creates a new ExportService.
func NewExportService(store AttendanceStore, log zerolog.Logger) *ExportService {
	return &ExportService{
		store: store,
		log:   log.With().Str("component", "export_service").Logger(),
		now:   time.Now,
	}
}

// BuildCSV queries attendance with the given filter and renders the result
// as CSV with header ID,Name,Date,Time,Status. It returns the file content
// and a filename embedding the current date.
func (s *ExportService) BuildCSV(ctx context.Context, f model.AttendanceFilter) ([]byte, string, error) {
	records, err := s.store.Query(ctx, f)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"ID", "Name", "Date", "Time", "Status"}); err != nil {
		return nil, "", err
	}
	for _, rec := range records {
		row := []string{
			rec.StudentID,
			rec.StudentName,
			rec.Date.Format("2006-01-02"),
			rec.Time,
			string(rec.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("attendance_%s.csv", s.now().Format("2006-01-02"))
	s.log.Info().Int("records", len(records)).Str("filename", filename).Msg("CSV export built")
	return buf.Bytes(), filename, nil
}
