package scoring

import (
	"strings"

	"career-backend/internal/careers"
)

// Thresholds for the academic bonus and penalty applied on top of the
// matched-subject average.
const (
	subjectNeutralScore  = 50.0
	subjectBonusCutoff   = 80.0
	subjectPenaltyCutoff = 60.0
	subjectBonusFactor   = 1.1
	subjectPenaltyFactor = 0.8
)

// SubjectMatchScore measures academic fit: the average of the student's
// marks in the career's primary subjects. Strong averages earn a bonus,
// weak ones a penalty, and a student with no marks in any primary subject
// sits at a neutral 50 so missing data never sinks a career on its own.
func SubjectMatchScore(career careers.Career, subjectScores map[string]int) float64 {
	total := 0
	matched := 0
	for _, subject := range career.PrimarySubjects {
		score, ok := lookupSubject(subjectScores, subject)
		if !ok {
			continue
		}
		total += score
		matched++
	}
	if matched == 0 {
		return subjectNeutralScore
	}

	avg := float64(total) / float64(matched)
	switch {
	case avg >= subjectBonusCutoff:
		avg *= subjectBonusFactor
	case avg < subjectPenaltyCutoff:
		avg *= subjectPenaltyFactor
	}
	return clampScore(avg)
}

// lookupSubject matches case-insensitively so "Math" in the catalog finds
// "math" in a submission.
func lookupSubject(scores map[string]int, subject string) (int, bool) {
	if score, ok := scores[subject]; ok {
		return score, true
	}
	for name, score := range scores {
		if strings.EqualFold(name, subject) {
			return score, true
		}
	}
	return 0, false
}
