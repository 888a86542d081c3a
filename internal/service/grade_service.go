package service

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/grading"
	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/pkg/config"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type gradeRepository interface {
	GradesByStudent(studentID string) []models.Grade
	ListGrades() []models.Grade
	UpsertGrade(grade models.Grade)
	FindGrade(studentID, subjectCode string) *models.Grade
}

type subjectReader interface {
	FindSubjectByCode(code string) (*models.Subject, error)
}

type gradeStudentReader interface {
	FindAccountByID(id string) (*models.Account, error)
}

// RecordScoreRequest describes a teacher entering one score component.
type RecordScoreRequest struct {
	StudentID   string  `json:"student_id" validate:"required"`
	SubjectCode string  `json:"subject_code" validate:"required"`
	Semester    string  `json:"semester" validate:"required"`
	Component   string  `json:"component" validate:"required,oneof=attendance midterm final"`
	Score       float64 `json:"score"`
}

// GradeService records component scores, derives weighted totals and
// assembles classified transcripts.
type GradeService struct {
	repo      gradeRepository
	subjects  subjectReader
	students  gradeStudentReader
	weights   config.GradingConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs GradeService.
func NewGradeService(repo gradeRepository, subjects subjectReader, students gradeStudentReader, weights config.GradingConfig, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{repo: repo, subjects: subjects, students: students, weights: weights, validator: validate, logger: logger}
}

// RecordScore stores one component score. Scores outside [0,10] are
// rejected here, at the input boundary; the classifier itself stays total.
func (s *GradeService) RecordScore(ctx context.Context, req RecordScoreRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	if !grading.ValidScore(req.Score) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "score must be between 0 and 10")
	}
	if _, err := s.students.FindAccountByID(req.StudentID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	subject, err := s.subjects.FindSubjectByCode(req.SubjectCode)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}

	grade := s.repo.FindGrade(req.StudentID, req.SubjectCode)
	if grade == nil {
		grade = &models.Grade{
			StudentID:   req.StudentID,
			SubjectCode: subject.Code,
			Semester:    req.Semester,
			Credits:     subject.Credits,
		}
	}

	score := req.Score
	switch models.GradeComponent(req.Component) {
	case models.ComponentAttendance:
		grade.Attendance = &score
	case models.ComponentMidterm:
		grade.Midterm = &score
	case models.ComponentFinal:
		grade.Final = &score
	}
	grade.Total = s.total(grade)

	s.repo.UpsertGrade(*grade)
	s.logger.Info("score recorded",
		zap.String("student_id", req.StudentID),
		zap.String("subject_code", req.SubjectCode),
		zap.String("component", req.Component))
	return grade, nil
}

// total combines the three components once all are present.
func (s *GradeService) total(grade *models.Grade) *float64 {
	if grade.Attendance == nil || grade.Midterm == nil || grade.Final == nil {
		return nil
	}
	raw := *grade.Attendance*s.weights.AttendanceWeight +
		*grade.Midterm*s.weights.MidtermWeight +
		*grade.Final*s.weights.FinalWeight
	rounded := math.Round(raw*10) / 10
	return &rounded
}

// Grades lists recorded grades, optionally narrowed to a subject, a student
// or both.
func (s *GradeService) Grades(ctx context.Context, subjectCode, studentID string) []models.Grade {
	var out []models.Grade
	for _, g := range s.repo.ListGrades() {
		if subjectCode != "" && g.SubjectCode != subjectCode {
			continue
		}
		if studentID != "" && g.StudentID != studentID {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Transcript assembles the classified grade report for a student. Rows
// without a total yet are omitted; the GPA is the credit-weighted mean of
// the 4.0-scale points.
func (s *GradeService) Transcript(ctx context.Context, studentID string) (*models.Transcript, error) {
	student, err := s.students.FindAccountByID(studentID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	transcript := &models.Transcript{StudentID: student.ID, StudentName: student.Name}
	var weightedPoints float64
	var credits int
	for _, g := range s.repo.GradesByStudent(studentID) {
		if g.Total == nil {
			continue
		}
		name := g.SubjectCode
		if subject, err := s.subjects.FindSubjectByCode(g.SubjectCode); err == nil {
			name = subject.Name
		}
		c := grading.Classify(*g.Total)
		transcript.Rows = append(transcript.Rows, models.TranscriptRow{
			SubjectCode: g.SubjectCode,
			SubjectName: name,
			Credits:     g.Credits,
			Semester:    g.Semester,
			Total:       *g.Total,
			Letter:      c.Letter,
			GPA4:        c.GPA4,
			Tier:        c.Tier,
			Passed:      grading.IsPassing(*g.Total),
		})
		weightedPoints += c.GPA4 * float64(g.Credits)
		credits += g.Credits
	}
	if credits > 0 {
		transcript.GPA4 = math.Round(weightedPoints/float64(credits)*100) / 100
	}
	return transcript, nil
}

// Distribution summarises all completed grades by performance tier.
func (s *GradeService) Distribution(ctx context.Context) models.TierDistribution {
	var dist models.TierDistribution
	passed := 0
	for _, g := range s.repo.ListGrades() {
		if g.Total == nil {
			continue
		}
		switch grading.Classify(*g.Total).Tier {
		case "Giỏi":
			dist.Excellent++
		case "Khá":
			dist.Good++
		case "Trung bình":
			dist.Average++
		default:
			dist.Weak++
		}
		if grading.IsPassing(*g.Total) {
			passed++
		}
		dist.Total++
	}
	if dist.Total > 0 {
		dist.PassRate = math.Round(float64(passed)/float64(dist.Total)*1000) / 10
	}
	return dist
}
