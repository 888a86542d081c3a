package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type mockTranscriptReader struct {
	transcript *models.Transcript
}

func (m *mockTranscriptReader) Transcript(ctx context.Context, studentID string) (*models.Transcript, error) {
	if m.transcript == nil || m.transcript.StudentID != studentID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return m.transcript, nil
}

func exportFixture() *ExportService {
	reader := &mockTranscriptReader{transcript: &models.Transcript{
		StudentID:   "B24DCCC016",
		StudentName: "Nguyễn Đức Anh",
		GPA4:        3.5,
		Rows: []models.TranscriptRow{
			{SubjectCode: "IT3020", SubjectName: "Lập trình hướng đối tượng", Credits: 3, Semester: "2024-1", Total: 8.5, Letter: "A", GPA4: 4.0, Tier: "Giỏi", Passed: true},
			{SubjectCode: "IT4020", SubjectName: "Cơ sở dữ liệu", Credits: 3, Semester: "2024-1", Total: 7.0, Letter: "B", GPA4: 3.0, Tier: "Khá", Passed: true},
		},
	}}
	return NewExportService(reader, zap.NewNop())
}

func TestExportServiceTranscriptCSV(t *testing.T) {
	svc := exportFixture()

	data, err := svc.TranscriptCSV(context.Background(), "B24DCCC016")
	require.NoError(t, err)

	body := string(data)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Equal(t, "subject_code,subject_name,credits,semester,total,letter,gpa4,tier", lines[0])
	assert.Contains(t, body, "IT3020")
	assert.Contains(t, body, "8.5,A,4.0")
	assert.Contains(t, body, "GPA (he 4): 3.50")
}

func TestExportServiceTranscriptPDF(t *testing.T) {
	svc := exportFixture()

	data, err := svc.TranscriptPDF(context.Background(), "B24DCCC016")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportServiceUnknownStudent(t *testing.T) {
	svc := exportFixture()

	_, err := svc.TranscriptCSV(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
