package repository

import (
	"database/sql"
	"errors"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// Enrollment rule violations surfaced by CreateEnrollment. The service
// layer maps them onto the domain error taxonomy.
var (
	ErrEnrollmentExists = errors.New("enrollment already exists")
	ErrClassFull        = errors.New("credit class is full")
)

// ListEnrollments returns enrollments matching the ID filters. Free-text
// search runs in the service layer through the shared predicate.
func (d *Dataset) ListEnrollments(filter models.EnrollmentFilter) []models.Enrollment {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Enrollment
	for _, e := range d.enrollments {
		if filter.StudentID != "" && e.StudentID != filter.StudentID {
			continue
		}
		if filter.CreditClassID != "" && e.CreditClassID != filter.CreditClassID {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CreateEnrollment registers the enrollment and takes a class seat in one
// critical section, so concurrent requests cannot both pass the duplicate
// or capacity check. The duplicate check ignores enrollment status.
// Returns sql.ErrNoRows when the credit class does not exist.
func (d *Dataset) CreateEnrollment(enrollment models.Enrollment) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	class := d.findCreditClassLocked(enrollment.CreditClassID)
	if class == nil {
		return sql.ErrNoRows
	}
	for _, e := range d.enrollments {
		if e.StudentID == enrollment.StudentID && e.CreditClassID == enrollment.CreditClassID {
			return ErrEnrollmentExists
		}
	}
	if class.Full() {
		return ErrClassFull
	}
	d.enrollments = append(d.enrollments, enrollment)
	class.CurrentStudents++
	return nil
}

// DeleteEnrollment removes an enrollment by ID and releases its class seat
// under the same lock. The removed record is returned for logging.
func (d *Dataset) DeleteEnrollment(id string) (*models.Enrollment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, e := range d.enrollments {
		if e.ID == id {
			removed := e
			d.enrollments = append(d.enrollments[:i], d.enrollments[i+1:]...)
			if class := d.findCreditClassLocked(removed.CreditClassID); class != nil && class.CurrentStudents > 0 {
				class.CurrentStudents--
			}
			return &removed, nil
		}
	}
	return nil, sql.ErrNoRows
}
