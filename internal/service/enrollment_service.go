package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/repository"
	"github.com/ptit-dev/qldsv-api/internal/search"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type enrollmentRepository interface {
	ListEnrollments(filter models.EnrollmentFilter) []models.Enrollment
	CreateEnrollment(enrollment models.Enrollment) error
	DeleteEnrollment(id string) (*models.Enrollment, error)
}

type studentReader interface {
	FindAccountByID(id string) (*models.Account, error)
}

type creditClassReader interface {
	FindCreditClassByID(id string) (*models.CreditClass, error)
}

// EnrollRequest describes the enrollment creation payload. Both dropdowns
// are required; an empty selection never reaches the rule checks.
type EnrollRequest struct {
	StudentID     string `json:"student_id" validate:"required"`
	CreditClassID string `json:"credit_class_id" validate:"required"`
}

// EnrollmentService enforces the enrollment rules: one enrollment per
// (student, credit class) pair regardless of status, and no enrollment into
// a full class. Both rules and the seat counter are applied atomically by
// the repository.
type EnrollmentService struct {
	repo      enrollmentRepository
	students  studentReader
	classes   creditClassReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, students studentReader, classes creditClassReader, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, students: students, classes: classes, validator: validate, logger: logger}
}

// List returns enrollments, with free-text search over student name,
// student ID and credit class name.
func (s *EnrollmentService) List(ctx context.Context, filter models.EnrollmentFilter) []models.Enrollment {
	var out []models.Enrollment
	for _, e := range s.repo.ListEnrollments(filter) {
		if !search.Matches(filter.Search, e.StudentName, e.StudentID, e.CreditClassName) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Enroll registers a student into a credit class and takes a seat.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "vui long chon lop tin chi va sinh vien")
	}
	student, err := s.students.FindAccountByID(req.StudentID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	if student.Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrValidation, "account is not a student")
	}
	class, err := s.classes.FindCreditClassByID(req.CreditClassID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "credit class not found")
	}

	enrollment := models.Enrollment{
		ID:              uuid.NewString(),
		StudentID:       student.ID,
		StudentName:     student.Name,
		CreditClassID:   class.ID,
		CreditClassName: fmt.Sprintf("%s - %s", class.Code, class.Name),
		EnrollDate:      time.Now().UTC().Format("2006-01-02"),
		Status:          models.EnrollmentStatusActive,
	}
	if err := s.repo.CreateEnrollment(enrollment); err != nil {
		switch {
		case errors.Is(err, repository.ErrEnrollmentExists):
			return nil, appErrors.Clone(appErrors.ErrDuplicateEnrollment, "")
		case errors.Is(err, repository.ErrClassFull):
			return nil, appErrors.Clone(appErrors.ErrClassFull, "")
		default:
			return nil, appErrors.Clone(appErrors.ErrNotFound, "credit class not found")
		}
	}

	s.logger.Info("enrollment created", zap.String("student_id", student.ID), zap.String("credit_class_id", class.ID))
	return &enrollment, nil
}

// Remove deletes an enrollment; the repository releases the class seat.
func (s *EnrollmentService) Remove(ctx context.Context, id string) error {
	removed, err := s.repo.DeleteEnrollment(id)
	if err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
	}
	s.logger.Info("enrollment removed", zap.String("id", id), zap.String("credit_class_id", removed.CreditClassID))
	return nil
}
