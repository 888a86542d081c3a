package models

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// Enrollment links a student to a credit class. At most one enrollment may
// exist per (student, credit class) pair regardless of status.
type Enrollment struct {
	ID              string           `json:"id"`
	StudentID       string           `json:"student_id"`
	StudentName     string           `json:"student_name"`
	CreditClassID   string           `json:"credit_class_id"`
	CreditClassName string           `json:"credit_class_name"`
	EnrollDate      string           `json:"enroll_date"`
	Status          EnrollmentStatus `json:"status"`
}

// EnrollmentFilter provides filters for listing enrollments.
type EnrollmentFilter struct {
	StudentID     string
	CreditClassID string
	Search        string
}
