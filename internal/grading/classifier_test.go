package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBreakpoints(t *testing.T) {
	cases := []struct {
		score  float64
		letter string
		gpa4   float64
		tier   string
	}{
		{10, "A", 4.0, "Giỏi"},
		{8.5, "A", 4.0, "Giỏi"},
		{8.49999, "B", 3.0, "Khá"},
		{7.0, "B", 3.0, "Khá"},
		{6.99999, "C", 2.0, "Trung bình"},
		{5.5, "C", 2.0, "Trung bình"},
		{5.49999, "D", 1.0, "Yếu"},
		{4.0, "D", 1.0, "Yếu"},
		{3.99999, "F", 0.0, "Yếu"},
		{0, "F", 0.0, "Yếu"},
	}
	for _, tc := range cases {
		got := Classify(tc.score)
		assert.Equal(t, tc.letter, got.Letter, "score %v", tc.score)
		assert.Equal(t, tc.gpa4, got.GPA4, "score %v", tc.score)
		assert.Equal(t, tc.tier, got.Tier, "score %v", tc.score)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := Classify(0).GPA4
	for score := 0.0; score <= 10.0; score += 0.05 {
		cur := Classify(score).GPA4
		assert.GreaterOrEqual(t, cur, prev, "gpa4 must not decrease at score %v", score)
		prev = cur
	}
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(5.0))
	assert.True(t, IsPassing(10))
	assert.False(t, IsPassing(4.99999))
	assert.False(t, IsPassing(0))

	// The pass threshold sits between the D and C breakpoints: a passing
	// score can still classify as "Yếu" and a "Yếu" can pass.
	assert.Equal(t, "D", Classify(5.0).Letter)
	assert.True(t, IsPassing(5.0))
	assert.False(t, IsPassing(4.5))
	assert.Equal(t, "D", Classify(4.5).Letter)
}

func TestValidScore(t *testing.T) {
	assert.True(t, ValidScore(0))
	assert.True(t, ValidScore(10))
	assert.False(t, ValidScore(-0.1))
	assert.False(t, ValidScore(10.1))
}
