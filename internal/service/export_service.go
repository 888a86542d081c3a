package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/pkg/export"
)

type transcriptReader interface {
	Transcript(ctx context.Context, studentID string) (*models.Transcript, error)
}

// ExportService renders transcripts into downloadable documents.
type ExportService struct {
	grades transcriptReader
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(grades transcriptReader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		grades: grades,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

var transcriptHeaders = []string{"subject_code", "subject_name", "credits", "semester", "total", "letter", "gpa4", "tier"}

func transcriptDataset(t *models.Transcript) export.Dataset {
	rows := make([]map[string]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, map[string]string{
			"subject_code": r.SubjectCode,
			"subject_name": r.SubjectName,
			"credits":      fmt.Sprintf("%d", r.Credits),
			"semester":     r.Semester,
			"total":        fmt.Sprintf("%.1f", r.Total),
			"letter":       r.Letter,
			"gpa4":         fmt.Sprintf("%.1f", r.GPA4),
			"tier":         r.Tier,
		})
	}
	summary := []string{
		fmt.Sprintf("Sinh vien: %s (%s)", t.StudentName, t.StudentID),
		fmt.Sprintf("GPA (he 4): %.2f", t.GPA4),
	}
	return export.Dataset{Headers: transcriptHeaders, Rows: rows, Summary: summary}
}

// TranscriptCSV renders a student's transcript as CSV bytes.
func (s *ExportService) TranscriptCSV(ctx context.Context, studentID string) ([]byte, error) {
	transcript, err := s.grades.Transcript(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.csv.Render(transcriptDataset(transcript))
}

// TranscriptPDF renders a student's transcript as a PDF document.
func (s *ExportService) TranscriptPDF(ctx context.Context, studentID string) ([]byte, error) {
	transcript, err := s.grades.Transcript(ctx, studentID)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Bang diem - %s", transcript.StudentID)
	return s.pdf.Render(transcriptDataset(transcript), title)
}
