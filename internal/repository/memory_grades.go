package repository

import "github.com/ptit-dev/qldsv-api/internal/models"

// GradesByStudent returns all grade records for a student.
func (d *Dataset) GradesByStudent(studentID string) []models.Grade {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Grade
	for _, g := range d.grades {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out
}

// ListGrades returns every grade record.
func (d *Dataset) ListGrades() []models.Grade {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Grade, len(d.grades))
	copy(out, d.grades)
	return out
}

// UpsertGrade stores a grade record keyed by (student, subject), replacing
// any existing record for the pair.
func (d *Dataset) UpsertGrade(grade models.Grade) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, g := range d.grades {
		if g.StudentID == grade.StudentID && g.SubjectCode == grade.SubjectCode {
			d.grades[i] = grade
			return
		}
	}
	d.grades = append(d.grades, grade)
}

// FindGrade returns the grade record for a (student, subject) pair.
func (d *Dataset) FindGrade(studentID, subjectCode string) *models.Grade {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, g := range d.grades {
		if g.StudentID == studentID && g.SubjectCode == subjectCode {
			found := g
			return &found
		}
	}
	return nil
}
