package scoring

import (
	"testing"

	"career-backend/internal/careers"
)

func TestRiasecVectorNormalization(t *testing.T) {
	bank := DefaultQuestionBank()

	cases := []struct {
		name    string
		answers map[string]int
		check   func(t *testing.T, v RiasecVector)
	}{
		{
			name:    "all top ratings hit 100 per letter",
			answers: map[string]int{"v_03": 5, "v_09": 5, "v_14": 5},
			check: func(t *testing.T, v RiasecVector) {
				if v.I != 100 {
					t.Errorf("I = %d, want 100", v.I)
				}
				if v.R != 0 {
					t.Errorf("R = %d, want 0 with no R answers", v.R)
				}
			},
		},
		{
			name:    "partial ratings scale against letter max",
			answers: map[string]int{"v_01": 3},
			check: func(t *testing.T, v RiasecVector) {
				// R max is 10 (two questions, weight 1, top rating 5).
				if v.R != 30 {
					t.Errorf("R = %d, want 30", v.R)
				}
			},
		},
		{
			name:    "unknown ids ignored",
			answers: map[string]int{"bogus": 5},
			check: func(t *testing.T, v RiasecVector) {
				if v != (RiasecVector{}) {
					t.Errorf("vector = %+v, want zero", v)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, bank.RiasecVector(tc.answers))
		})
	}
}

func TestRiasecVectorMonotonic(t *testing.T) {
	bank := DefaultQuestionBank()

	// Raising any single rating must never lower the letter it feeds.
	for _, q := range bank.Questions() {
		if q.Type != KindScale {
			continue
		}
		for letter := range q.RiasecMap {
			prev := -1
			for rating := 1; rating <= 5; rating++ {
				v := bank.RiasecVector(map[string]int{q.ID: rating})
				score := v.Value(letter[0])
				if score < prev {
					t.Fatalf("%s rating %d: %c dropped from %d to %d", q.ID, rating, letter[0], prev, score)
				}
				prev = score
			}
		}
	}
}

func TestRiasecMatchScore(t *testing.T) {
	v := RiasecVector{R: 80, I: 60, A: 20}

	cases := []struct {
		profile string
		want    float64
	}{
		{"R", 80},
		{"RI", 70},
		{"RIA", (80.0 + 60 + 20) / 3},
		{"RX", 80},  // unknown letter skipped
		{"XY", 0},   // nothing valid
		{"", 0},
	}
	for _, tc := range cases {
		career := careers.Career{RiasecProfile: tc.profile}
		if got := RiasecMatchScore(career, v); got != tc.want {
			t.Errorf("profile %q: got %v, want %v", tc.profile, got, tc.want)
		}
	}
}
