package scoring

import (
	"math"
	"testing"

	"career-backend/internal/careers"
)

func TestSubjectMatchScore(t *testing.T) {
	career := careers.Career{PrimarySubjects: []string{"Mathematics", "Physics"}}

	cases := []struct {
		name   string
		scores map[string]int
		want   float64
	}{
		{"no marks at all", nil, 50},
		{"no primary subject marks", map[string]int{"History": 90}, 50},
		{"plain average", map[string]int{"Mathematics": 70, "Physics": 70}, 70},
		{"strong average earns bonus", map[string]int{"Mathematics": 88, "Physics": 82}, 93.5},
		{"bonus clamps at 100", map[string]int{"Mathematics": 100, "Physics": 100}, 100},
		{"weak average penalized", map[string]int{"Mathematics": 50, "Physics": 50}, 40},
		{"one matched subject counts alone", map[string]int{"Mathematics": 70}, 70},
		{"case-insensitive lookup", map[string]int{"mathematics": 70, "PHYSICS": 70}, 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SubjectMatchScore(career, tc.scores)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// Raising a primary-subject mark never lowers the subject-match score.
func TestSubjectMatchScoreMonotonic(t *testing.T) {
	career := careers.Career{PrimarySubjects: []string{"Mathematics"}}

	prev := -1.0
	for mark := 0; mark <= 100; mark++ {
		got := SubjectMatchScore(career, map[string]int{"Mathematics": mark})
		if got < prev {
			t.Fatalf("mark %d: score dropped from %v to %v", mark, prev, got)
		}
		prev = got
	}
}
