package scoring

import (
	"math"

	"career-backend/internal/careers"
)

var riasecLetters = []byte{'R', 'I', 'A', 'S', 'E', 'C'}

// RiasecVector derives the student's interest vector from their scale
// answers. Each letter's raw weighted total is normalized against the
// maximum that letter can reach in this question bank, so a student who
// gives every Realistic question a 5 scores R=100 regardless of how many
// questions feed each letter. Raising any single rating never lowers the
// letter it feeds.
func (b *QuestionBank) RiasecVector(answers map[string]int) RiasecVector {
	totals := make(map[byte]int, len(riasecLetters))
	for id, rating := range answers {
		q, ok := b.questions[id]
		if !ok {
			continue
		}
		rating = clampInt(rating, 0, 5)
		for letter, weight := range q.RiasecMap {
			totals[letter[0]] += rating * weight
		}
	}

	var v RiasecVector
	for _, letter := range riasecLetters {
		max := b.letterMax[letter]
		if max == 0 {
			continue
		}
		scaled := int(math.Round(100 * float64(totals[letter]) / float64(max)))
		v.set(letter, clampInt(scaled, 0, 100))
	}
	return v
}

// RiasecMatchScore measures how well the student's interest vector fits a
// career's RIASEC profile: the mean of the student's scores for the
// profile's letters. Letters outside the six are skipped; a profile with
// no valid letters scores 0.
func RiasecMatchScore(career careers.Career, v RiasecVector) float64 {
	total := 0
	count := 0
	for i := 0; i < len(career.RiasecProfile); i++ {
		score := v.Value(career.RiasecProfile[i])
		if score < 0 {
			continue
		}
		total += score
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
