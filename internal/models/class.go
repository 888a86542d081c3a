package models

// AdministrativeClass is a fixed cohort of students sharing an advisor,
// distinct from credit-class enrollment.
type AdministrativeClass struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Course       string `json:"course"`
	TeacherID    string `json:"teacher_id"`
	StudentCount int    `json:"student_count"`
	MaxStudents  int    `json:"max_students"`
	Status       string `json:"status"`
}
