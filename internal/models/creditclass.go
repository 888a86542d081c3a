package models

// ClassSchedule is the weekly meeting slot of a credit class.
type ClassSchedule struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room"`
	Building  string `json:"building"`
}

// CreditClass is a scheduled, capacity-bounded offering of a subject in a
// given semester.
type CreditClass struct {
	ID              string        `json:"id"`
	Code            string        `json:"code"`
	SubjectCode     string        `json:"subject_code"`
	Name            string        `json:"name"`
	Semester        string        `json:"semester"`
	Credits         int           `json:"credits"`
	MaxStudents     int           `json:"max_students"`
	CurrentStudents int           `json:"current_students"`
	Teachers        []string      `json:"teachers"`
	Schedule        ClassSchedule `json:"schedule"`
	Status          string        `json:"status"`
}

// Full reports whether the class has reached its seat limit.
func (c *CreditClass) Full() bool {
	return c.CurrentStudents >= c.MaxStudents
}
