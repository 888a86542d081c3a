package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/pkg/config"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type mockGradeRepo struct {
	grades []models.Grade
}

func (m *mockGradeRepo) GradesByStudent(studentID string) []models.Grade {
	var out []models.Grade
	for _, g := range m.grades {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out
}

func (m *mockGradeRepo) ListGrades() []models.Grade {
	return m.grades
}

func (m *mockGradeRepo) UpsertGrade(grade models.Grade) {
	for i, g := range m.grades {
		if g.StudentID == grade.StudentID && g.SubjectCode == grade.SubjectCode {
			m.grades[i] = grade
			return
		}
	}
	m.grades = append(m.grades, grade)
}

func (m *mockGradeRepo) FindGrade(studentID, subjectCode string) *models.Grade {
	for _, g := range m.grades {
		if g.StudentID == studentID && g.SubjectCode == subjectCode {
			found := g
			return &found
		}
	}
	return nil
}

type mockSubjectReader struct {
	subjects map[string]models.Subject
}

func (m *mockSubjectReader) FindSubjectByCode(code string) (*models.Subject, error) {
	if s, ok := m.subjects[code]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func defaultWeights() config.GradingConfig {
	return config.GradingConfig{AttendanceWeight: 0.1, MidtermWeight: 0.3, FinalWeight: 0.6}
}

func newGradeFixture() (*mockGradeRepo, *GradeService) {
	repo := &mockGradeRepo{}
	subjects := &mockSubjectReader{subjects: map[string]models.Subject{
		"IT3020": {Code: "IT3020", Name: "Lập trình hướng đối tượng", Credits: 3},
		"IT4020": {Code: "IT4020", Name: "Cơ sở dữ liệu", Credits: 3},
		"IT3030": {Code: "IT3030", Name: "Cấu trúc dữ liệu và giải thuật", Credits: 4},
	}}
	students := &mockStudentTable{accounts: map[string]models.Account{
		"B24DCCC016": {ID: "B24DCCC016", Name: "Nguyễn Đức Anh", Role: models.RoleStudent},
	}}
	svc := NewGradeService(repo, subjects, students, defaultWeights(), validator.New(), zap.NewNop())
	return repo, svc
}

func TestGradeServiceRecordScore(t *testing.T) {
	repo, svc := newGradeFixture()

	grade, err := svc.RecordScore(context.Background(), RecordScoreRequest{
		StudentID: "B24DCCC016", SubjectCode: "IT3020", Semester: "2024-1", Component: "midterm", Score: 8.0,
	})
	require.NoError(t, err)
	require.NotNil(t, grade.Midterm)
	assert.Equal(t, 8.0, *grade.Midterm)
	assert.Nil(t, grade.Total)
	assert.Len(t, repo.grades, 1)
}

func TestGradeServiceRecordScoreComputesTotal(t *testing.T) {
	_, svc := newGradeFixture()

	for _, entry := range []struct {
		component string
		score     float64
	}{
		{"attendance", 10},
		{"midterm", 8.0},
		{"final", 8.5},
	} {
		_, err := svc.RecordScore(context.Background(), RecordScoreRequest{
			StudentID: "B24DCCC016", SubjectCode: "IT3020", Semester: "2024-1", Component: entry.component, Score: entry.score,
		})
		require.NoError(t, err)
	}

	transcript, err := svc.Transcript(context.Background(), "B24DCCC016")
	require.NoError(t, err)
	require.Len(t, transcript.Rows, 1)
	// 10*0.1 + 8.0*0.3 + 8.5*0.6 = 8.5
	assert.Equal(t, 8.5, transcript.Rows[0].Total)
	assert.Equal(t, "A", transcript.Rows[0].Letter)
	assert.Equal(t, "Giỏi", transcript.Rows[0].Tier)
}

func TestGradeServiceRecordScoreOutOfRange(t *testing.T) {
	_, svc := newGradeFixture()

	for _, score := range []float64{-0.1, 10.1, 100} {
		_, err := svc.RecordScore(context.Background(), RecordScoreRequest{
			StudentID: "B24DCCC016", SubjectCode: "IT3020", Semester: "2024-1", Component: "final", Score: score,
		})
		require.Error(t, err, "score %v", score)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}

	// The range is inclusive at both ends.
	for _, score := range []float64{0, 10} {
		_, err := svc.RecordScore(context.Background(), RecordScoreRequest{
			StudentID: "B24DCCC016", SubjectCode: "IT3020", Semester: "2024-1", Component: "final", Score: score,
		})
		require.NoError(t, err, "score %v", score)
	}
}

func TestGradeServiceRecordScoreUnknownSubject(t *testing.T) {
	_, svc := newGradeFixture()

	_, err := svc.RecordScore(context.Background(), RecordScoreRequest{
		StudentID: "B24DCCC016", SubjectCode: "XX9999", Semester: "2024-1", Component: "final", Score: 5,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestGradeServiceTranscript(t *testing.T) {
	repo, svc := newGradeFixture()
	repo.grades = []models.Grade{
		{StudentID: "B24DCCC016", SubjectCode: "IT3020", Semester: "2024-1", Credits: 3, Total: floatPtr(8.5)},
		{StudentID: "B24DCCC016", SubjectCode: "IT4020", Semester: "2024-1", Credits: 3, Total: floatPtr(7.0)},
		{StudentID: "B24DCCC016", SubjectCode: "IT3030", Semester: "2024-1", Credits: 4, Total: floatPtr(4.5)},
		{StudentID: "B24DCCC016", SubjectCode: "IT3040", Semester: "2024-1", Credits: 2},
	}

	transcript, err := svc.Transcript(context.Background(), "B24DCCC016")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Đức Anh", transcript.StudentName)
	// The incomplete IT3040 grade carries no total and is omitted.
	require.Len(t, transcript.Rows, 3)

	assert.Equal(t, "A", transcript.Rows[0].Letter)
	assert.True(t, transcript.Rows[0].Passed)
	assert.Equal(t, "B", transcript.Rows[1].Letter)
	assert.Equal(t, "D", transcript.Rows[2].Letter)
	assert.False(t, transcript.Rows[2].Passed)

	// (4.0*3 + 3.0*3 + 1.0*4) / 10 = 2.5
	assert.Equal(t, 2.5, transcript.GPA4)
}

func TestGradeServiceTranscriptUnknownStudent(t *testing.T) {
	_, svc := newGradeFixture()

	_, err := svc.Transcript(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestGradeServiceDistribution(t *testing.T) {
	repo, svc := newGradeFixture()
	repo.grades = []models.Grade{
		{StudentID: "s1", SubjectCode: "IT3020", Total: floatPtr(9.0)},
		{StudentID: "s2", SubjectCode: "IT3020", Total: floatPtr(7.5)},
		{StudentID: "s3", SubjectCode: "IT3020", Total: floatPtr(6.0)},
		{StudentID: "s4", SubjectCode: "IT3020", Total: floatPtr(4.5)},
		{StudentID: "s5", SubjectCode: "IT3020", Total: floatPtr(2.0)},
		{StudentID: "s6", SubjectCode: "IT3020"},
	}

	dist := svc.Distribution(context.Background())
	assert.Equal(t, 1, dist.Excellent)
	assert.Equal(t, 1, dist.Good)
	assert.Equal(t, 1, dist.Average)
	assert.Equal(t, 2, dist.Weak)
	assert.Equal(t, 5, dist.Total)
	// 4.5 sits below the 5.0 pass mark even though it classifies as D.
	assert.Equal(t, 60.0, dist.PassRate)
}

func floatPtr(v float64) *float64 {
	return &v
}
