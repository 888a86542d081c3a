// Package grading implements the fixed 10-point classification scale used
// across transcripts and statistics.
package grading

// Classification maps a 10-point score onto the letter grade, 4.0-scale
// point and Vietnamese performance tier.
type Classification struct {
	Letter string  `json:"letter"`
	GPA4   float64 `json:"gpa4"`
	Tier   string  `json:"tier"`
}

// PassThreshold is the pass/fail cut-off. It is deliberately distinct from
// the tier breakpoints: a 4.5 is "Yếu" on the tier scale yet still failing,
// a 5.0 passes while remaining "Yếu".
const PassThreshold = 5.0

// Classify maps a score to its classification. Breakpoints are inclusive
// lower bounds evaluated top-down, first match wins. The function is total;
// callers validate the [0,10] range before recording scores.
func Classify(score float64) Classification {
	switch {
	case score >= 8.5:
		return Classification{Letter: "A", GPA4: 4.0, Tier: "Giỏi"}
	case score >= 7.0:
		return Classification{Letter: "B", GPA4: 3.0, Tier: "Khá"}
	case score >= 5.5:
		return Classification{Letter: "C", GPA4: 2.0, Tier: "Trung bình"}
	case score >= 4.0:
		return Classification{Letter: "D", GPA4: 1.0, Tier: "Yếu"}
	default:
		return Classification{Letter: "F", GPA4: 0.0, Tier: "Yếu"}
	}
}

// IsPassing reports whether a score meets the pass threshold.
func IsPassing(score float64) bool {
	return score >= PassThreshold
}

// ValidScore reports whether a score is inside the 10-point domain.
func ValidScore(score float64) bool {
	return score >= 0 && score <= 10
}
