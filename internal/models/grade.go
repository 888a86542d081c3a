package models

// GradeComponent names one of the three recorded score components.
type GradeComponent string

const (
	ComponentAttendance GradeComponent = "attendance"
	ComponentMidterm    GradeComponent = "midterm"
	ComponentFinal      GradeComponent = "final"
)

// Grade holds the recorded score components for one student in one subject.
// Component pointers are nil until a teacher records them; Total is derived
// once all three are present.
type Grade struct {
	StudentID   string   `json:"student_id"`
	SubjectCode string   `json:"subject_code"`
	Semester    string   `json:"semester"`
	Credits     int      `json:"credits"`
	Attendance  *float64 `json:"attendance,omitempty"`
	Midterm     *float64 `json:"midterm,omitempty"`
	Final       *float64 `json:"final,omitempty"`
	Total       *float64 `json:"total,omitempty"`
}

// TranscriptRow is a classified grade line on a student's transcript.
type TranscriptRow struct {
	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	Credits     int     `json:"credits"`
	Semester    string  `json:"semester"`
	Total       float64 `json:"total"`
	Letter      string  `json:"letter"`
	GPA4        float64 `json:"gpa4"`
	Tier        string  `json:"tier"`
	Passed      bool    `json:"passed"`
}

// Transcript is the classified grade report for one student.
type Transcript struct {
	StudentID   string          `json:"student_id"`
	StudentName string          `json:"student_name"`
	Rows        []TranscriptRow `json:"rows"`
	GPA4        float64         `json:"gpa4"`
}

// TierDistribution counts completed grades per performance tier.
type TierDistribution struct {
	Excellent int     `json:"excellent"`
	Good      int     `json:"good"`
	Average   int     `json:"average"`
	Weak      int     `json:"weak"`
	PassRate  float64 `json:"pass_rate"`
	Total     int     `json:"total"`
}
