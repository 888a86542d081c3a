package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/search"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
)

type catalogRepository interface {
	ListDepartments() []models.Department
	FindDepartmentByCode(code string) (*models.Department, error)
	CreateDepartment(department models.Department)
	UpdateDepartment(department models.Department) error
	DeleteDepartment(code string) error

	ListAdministrativeClasses() []models.AdministrativeClass
	FindAdministrativeClassByCode(code string) (*models.AdministrativeClass, error)
	CreateAdministrativeClass(class models.AdministrativeClass)
	UpdateAdministrativeClass(class models.AdministrativeClass) error
	DeleteAdministrativeClass(code string) error

	ListSubjects() []models.Subject
	FindSubjectByCode(code string) (*models.Subject, error)
	CreateSubject(subject models.Subject)
	UpdateSubject(subject models.Subject) error
	DeleteSubject(code string) error

	ListCreditClasses() []models.CreditClass
	FindCreditClassByID(id string) (*models.CreditClass, error)
	CreateCreditClass(class models.CreditClass)
	UpdateCreditClass(class models.CreditClass) error
	DeleteCreditClass(id string) error
}

// DepartmentRequest describes the department creation payload.
type DepartmentRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// UpdateDepartmentRequest describes the editable department fields. The
// code is the identity and comes from the path.
type UpdateDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

// AdministrativeClassRequest describes the cohort class creation payload.
type AdministrativeClassRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Course      string `json:"course"`
	TeacherID   string `json:"teacher_id"`
	MaxStudents int    `json:"max_students" validate:"required,min=1"`
}

// UpdateAdministrativeClassRequest describes the editable cohort class
// fields.
type UpdateAdministrativeClassRequest struct {
	Name        string `json:"name" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Course      string `json:"course"`
	TeacherID   string `json:"teacher_id"`
	MaxStudents int    `json:"max_students" validate:"required,min=1"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

// SubjectRequest describes the subject creation payload.
type SubjectRequest struct {
	Code          string   `json:"code" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Credits       int      `json:"credits" validate:"required,min=1,max=10"`
	Department    string   `json:"department" validate:"required"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites"`
	Teachers      []string `json:"teachers"`
}

// UpdateSubjectRequest describes the editable subject fields.
type UpdateSubjectRequest struct {
	Name          string   `json:"name" validate:"required"`
	Credits       int      `json:"credits" validate:"required,min=1,max=10"`
	Department    string   `json:"department" validate:"required"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites"`
	Teachers      []string `json:"teachers"`
}

// CreditClassRequest describes the credit class creation payload. Name and
// credits come from the subject.
type CreditClassRequest struct {
	Code        string               `json:"code" validate:"required"`
	SubjectCode string               `json:"subject_code" validate:"required"`
	Semester    string               `json:"semester" validate:"required"`
	MaxStudents int                  `json:"max_students" validate:"required,min=1"`
	Teachers    []string             `json:"teachers"`
	Schedule    models.ClassSchedule `json:"schedule"`
}

// UpdateCreditClassRequest describes the editable credit class fields. The
// seat counter is not among them; only enrollment moves it.
type UpdateCreditClassRequest struct {
	Semester    string               `json:"semester" validate:"required"`
	MaxStudents int                  `json:"max_students" validate:"required,min=1"`
	Teachers    []string             `json:"teachers"`
	Schedule    models.ClassSchedule `json:"schedule"`
	Status      string               `json:"status" validate:"required,oneof=open closed"`
}

// CatalogService implements the management screens for departments,
// administrative classes, subjects and credit classes: listing with the
// shared search predicate, plus create, update and delete.
type CatalogService struct {
	repo      catalogRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(repo catalogRepository, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, validator: validate, logger: logger}
}

// Departments lists departments matching the query.
func (s *CatalogService) Departments(ctx context.Context, query string) []models.Department {
	var out []models.Department
	for _, d := range s.repo.ListDepartments() {
		if search.Matches(query, d.Code, d.Name) {
			out = append(out, d)
		}
	}
	return out
}

// CreateDepartment registers a new department.
func (s *CatalogService) CreateDepartment(ctx context.Context, req DepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid department payload")
	}
	if _, err := s.repo.FindDepartmentByCode(req.Code); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "department code already exists")
	}
	department := models.Department{Code: req.Code, Name: req.Name}
	s.repo.CreateDepartment(department)
	s.logger.Info("department created", zap.String("code", department.Code))
	return &department, nil
}

// UpdateDepartment edits an existing department.
func (s *CatalogService) UpdateDepartment(ctx context.Context, code string, req UpdateDepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid department payload")
	}
	department := models.Department{Code: code, Name: req.Name}
	if err := s.repo.UpdateDepartment(department); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "department not found")
	}
	return &department, nil
}

// DeleteDepartment removes a department.
func (s *CatalogService) DeleteDepartment(ctx context.Context, code string) error {
	if err := s.repo.DeleteDepartment(code); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "department not found")
	}
	s.logger.Info("department deleted", zap.String("code", code))
	return nil
}

// AdministrativeClasses lists cohort classes matching the query.
func (s *CatalogService) AdministrativeClasses(ctx context.Context, query string) []models.AdministrativeClass {
	var out []models.AdministrativeClass
	for _, c := range s.repo.ListAdministrativeClasses() {
		if search.Matches(query, c.Code, c.Name, c.Department) {
			out = append(out, c)
		}
	}
	return out
}

// CreateAdministrativeClass registers a new cohort class.
func (s *CatalogService) CreateAdministrativeClass(ctx context.Context, req AdministrativeClassRequest) (*models.AdministrativeClass, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	if _, err := s.repo.FindAdministrativeClassByCode(req.Code); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "class code already exists")
	}
	class := models.AdministrativeClass{
		Code:        req.Code,
		Name:        req.Name,
		Department:  req.Department,
		Course:      req.Course,
		TeacherID:   req.TeacherID,
		MaxStudents: req.MaxStudents,
		Status:      "active",
	}
	s.repo.CreateAdministrativeClass(class)
	s.logger.Info("administrative class created", zap.String("code", class.Code))
	return &class, nil
}

// UpdateAdministrativeClass edits an existing cohort class.
func (s *CatalogService) UpdateAdministrativeClass(ctx context.Context, code string, req UpdateAdministrativeClassRequest) (*models.AdministrativeClass, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	class, err := s.repo.FindAdministrativeClassByCode(code)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	if req.MaxStudents < class.StudentCount {
		return nil, appErrors.Clone(appErrors.ErrValidation, "capacity below current student count")
	}
	class.Name = req.Name
	class.Department = req.Department
	class.Course = req.Course
	class.TeacherID = req.TeacherID
	class.MaxStudents = req.MaxStudents
	class.Status = req.Status
	if err := s.repo.UpdateAdministrativeClass(*class); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	return class, nil
}

// DeleteAdministrativeClass removes a cohort class.
func (s *CatalogService) DeleteAdministrativeClass(ctx context.Context, code string) error {
	if err := s.repo.DeleteAdministrativeClass(code); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	s.logger.Info("administrative class deleted", zap.String("code", code))
	return nil
}

// Subjects lists catalog subjects matching the query.
func (s *CatalogService) Subjects(ctx context.Context, query string) []models.Subject {
	var out []models.Subject
	for _, sub := range s.repo.ListSubjects() {
		if search.Matches(query, sub.Code, sub.Name, sub.Department) {
			out = append(out, sub)
		}
	}
	return out
}

// CreateSubject registers a new subject.
func (s *CatalogService) CreateSubject(ctx context.Context, req SubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	if _, err := s.repo.FindSubjectByCode(req.Code); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "subject code already exists")
	}
	subject := models.Subject{
		Code:          req.Code,
		Name:          req.Name,
		Credits:       req.Credits,
		Department:    req.Department,
		Description:   req.Description,
		Prerequisites: req.Prerequisites,
		Teachers:      req.Teachers,
	}
	s.repo.CreateSubject(subject)
	s.logger.Info("subject created", zap.String("code", subject.Code))
	return &subject, nil
}

// UpdateSubject edits an existing subject.
func (s *CatalogService) UpdateSubject(ctx context.Context, code string, req UpdateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	subject, err := s.repo.FindSubjectByCode(code)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	subject.Name = req.Name
	subject.Credits = req.Credits
	subject.Department = req.Department
	subject.Description = req.Description
	subject.Prerequisites = req.Prerequisites
	subject.Teachers = req.Teachers
	if err := s.repo.UpdateSubject(*subject); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	return subject, nil
}

// DeleteSubject removes a subject.
func (s *CatalogService) DeleteSubject(ctx context.Context, code string) error {
	if err := s.repo.DeleteSubject(code); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	s.logger.Info("subject deleted", zap.String("code", code))
	return nil
}

// CreditClasses lists offerings matching the query, optionally narrowed to
// a teacher's name.
func (s *CatalogService) CreditClasses(ctx context.Context, query, teacherName string) []models.CreditClass {
	var out []models.CreditClass
	for _, c := range s.repo.ListCreditClasses() {
		if teacherName != "" && !containsString(c.Teachers, teacherName) {
			continue
		}
		if !search.Matches(query, c.Code, c.Name, c.SubjectCode) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CreateCreditClass registers a new offering of a subject. Name and credits
// are taken from the subject; the seat counter starts at zero.
func (s *CatalogService) CreateCreditClass(ctx context.Context, req CreditClassRequest) (*models.CreditClass, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid credit class payload")
	}
	subject, err := s.repo.FindSubjectByCode(req.SubjectCode)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	for _, c := range s.repo.ListCreditClasses() {
		if c.Code == req.Code {
			return nil, appErrors.Clone(appErrors.ErrConflict, "credit class code already exists")
		}
	}
	class := models.CreditClass{
		ID:          uuid.NewString(),
		Code:        req.Code,
		SubjectCode: subject.Code,
		Name:        subject.Name,
		Semester:    req.Semester,
		Credits:     subject.Credits,
		MaxStudents: req.MaxStudents,
		Teachers:    req.Teachers,
		Schedule:    req.Schedule,
		Status:      "open",
	}
	s.repo.CreateCreditClass(class)
	s.logger.Info("credit class created", zap.String("code", class.Code), zap.String("subject_code", class.SubjectCode))
	return &class, nil
}

// UpdateCreditClass edits an existing offering. Capacity cannot drop below
// the seats already taken.
func (s *CatalogService) UpdateCreditClass(ctx context.Context, id string, req UpdateCreditClassRequest) (*models.CreditClass, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid credit class payload")
	}
	class, err := s.repo.FindCreditClassByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "credit class not found")
	}
	if req.MaxStudents < class.CurrentStudents {
		return nil, appErrors.Clone(appErrors.ErrValidation, "capacity below current enrollment")
	}
	class.Semester = req.Semester
	class.MaxStudents = req.MaxStudents
	class.Teachers = req.Teachers
	class.Schedule = req.Schedule
	class.Status = req.Status
	if err := s.repo.UpdateCreditClass(*class); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "credit class not found")
	}
	return class, nil
}

// DeleteCreditClass removes an offering. A class with enrolled students
// cannot be deleted; its enrollments would be orphaned.
func (s *CatalogService) DeleteCreditClass(ctx context.Context, id string) error {
	class, err := s.repo.FindCreditClassByID(id)
	if err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "credit class not found")
	}
	if class.CurrentStudents > 0 {
		return appErrors.Clone(appErrors.ErrConflict, "credit class has enrolled students")
	}
	if err := s.repo.DeleteCreditClass(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "credit class not found")
	}
	s.logger.Info("credit class deleted", zap.String("id", id))
	return nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
