package repository

import (
	"database/sql"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// ListDepartments returns all departments.
func (d *Dataset) ListDepartments() []models.Department {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Department, len(d.departments))
	copy(out, d.departments)
	return out
}

// FindDepartmentByCode returns the department with the given code.
func (d *Dataset) FindDepartmentByCode(code string) (*models.Department, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, dep := range d.departments {
		if dep.Code == code {
			found := dep
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

// CreateDepartment appends a new department.
func (d *Dataset) CreateDepartment(department models.Department) {
	d.mu.Lock()
	d.departments = append(d.departments, department)
	d.mu.Unlock()
}

// UpdateDepartment replaces the department with the same code.
func (d *Dataset) UpdateDepartment(department models.Department) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, dep := range d.departments {
		if dep.Code == department.Code {
			d.departments[i] = department
			return nil
		}
	}
	return sql.ErrNoRows
}

// DeleteDepartment removes the department with the given code.
func (d *Dataset) DeleteDepartment(code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, dep := range d.departments {
		if dep.Code == code {
			d.departments = append(d.departments[:i], d.departments[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// ListAdministrativeClasses returns all administrative classes.
func (d *Dataset) ListAdministrativeClasses() []models.AdministrativeClass {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.AdministrativeClass, len(d.adminClasses))
	copy(out, d.adminClasses)
	return out
}

// FindAdministrativeClassByCode returns the cohort class with the given code.
func (d *Dataset) FindAdministrativeClassByCode(code string) (*models.AdministrativeClass, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.adminClasses {
		if c.Code == code {
			found := c
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

// CreateAdministrativeClass appends a new cohort class.
func (d *Dataset) CreateAdministrativeClass(class models.AdministrativeClass) {
	d.mu.Lock()
	d.adminClasses = append(d.adminClasses, class)
	d.mu.Unlock()
}

// UpdateAdministrativeClass replaces the cohort class with the same code.
func (d *Dataset) UpdateAdministrativeClass(class models.AdministrativeClass) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, c := range d.adminClasses {
		if c.Code == class.Code {
			d.adminClasses[i] = class
			return nil
		}
	}
	return sql.ErrNoRows
}

// DeleteAdministrativeClass removes the cohort class with the given code.
func (d *Dataset) DeleteAdministrativeClass(code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, c := range d.adminClasses {
		if c.Code == code {
			d.adminClasses = append(d.adminClasses[:i], d.adminClasses[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// ListSubjects returns all subjects.
func (d *Dataset) ListSubjects() []models.Subject {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Subject, len(d.subjects))
	copy(out, d.subjects)
	return out
}

// FindSubjectByCode returns the subject with the given code.
func (d *Dataset) FindSubjectByCode(code string) (*models.Subject, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.subjects {
		if s.Code == code {
			found := s
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

// CreateSubject appends a new subject.
func (d *Dataset) CreateSubject(subject models.Subject) {
	d.mu.Lock()
	d.subjects = append(d.subjects, subject)
	d.mu.Unlock()
}

// UpdateSubject replaces the subject with the same code.
func (d *Dataset) UpdateSubject(subject models.Subject) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.subjects {
		if s.Code == subject.Code {
			d.subjects[i] = subject
			return nil
		}
	}
	return sql.ErrNoRows
}

// DeleteSubject removes the subject with the given code.
func (d *Dataset) DeleteSubject(code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.subjects {
		if s.Code == code {
			d.subjects = append(d.subjects[:i], d.subjects[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// ListCreditClasses returns all credit classes.
func (d *Dataset) ListCreditClasses() []models.CreditClass {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.CreditClass, len(d.creditClasses))
	copy(out, d.creditClasses)
	return out
}

// FindCreditClassByID returns the credit class with the given ID.
func (d *Dataset) FindCreditClassByID(id string) (*models.CreditClass, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if c := d.findCreditClassLocked(id); c != nil {
		found := *c
		return &found, nil
	}
	return nil, sql.ErrNoRows
}

// CreateCreditClass appends a new credit class.
func (d *Dataset) CreateCreditClass(class models.CreditClass) {
	d.mu.Lock()
	d.creditClasses = append(d.creditClasses, class)
	d.mu.Unlock()
}

// UpdateCreditClass replaces the credit class with the same ID. The student
// counter is storage-owned and kept from the stored record.
func (d *Dataset) UpdateCreditClass(class models.CreditClass) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, c := range d.creditClasses {
		if c.ID == class.ID {
			class.CurrentStudents = c.CurrentStudents
			d.creditClasses[i] = class
			return nil
		}
	}
	return sql.ErrNoRows
}

// DeleteCreditClass removes the credit class with the given ID.
func (d *Dataset) DeleteCreditClass(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, c := range d.creditClasses {
		if c.ID == id {
			d.creditClasses = append(d.creditClasses[:i], d.creditClasses[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// findCreditClassLocked returns a pointer into the backing slice so enroll
// and remove can mutate the seat counter in place. Callers must hold d.mu.
func (d *Dataset) findCreditClassLocked(id string) *models.CreditClass {
	for i := range d.creditClasses {
		if d.creditClasses[i].ID == id {
			return &d.creditClasses[i]
		}
	}
	return nil
}
