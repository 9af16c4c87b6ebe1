package scoring

import (
	"strings"

	"career-backend/internal/careers"
)

const (
	practicalBase      = 50.0
	keywordHitPoints   = 10.0
	freeTextWeight     = 0.3
	freeTextScoreLimit = 100.0
)

// PracticalFitScore measures evidence of real engagement with a career's
// domain. Starting from a neutral base, each distinct keyword from the
// career's tags found in the student's extracurriculars adds a fixed
// bonus. Free-text answers are scanned separately and folded in at a
// reduced weight, since self-description is softer evidence than a named
// activity.
func PracticalFitScore(career careers.Career, extracurriculars []string, freeText string) float64 {
	keywords := keywordsForTags(career.Tags)

	score := practicalBase
	activities := strings.ToLower(strings.Join(extracurriculars, " "))
	for _, kw := range keywords {
		if strings.Contains(activities, kw) {
			score += keywordHitPoints
		}
	}

	if freeText != "" {
		text := strings.ToLower(freeText)
		textScore := 0.0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				textScore += keywordHitPoints
			}
		}
		if textScore > freeTextScoreLimit {
			textScore = freeTextScoreLimit
		}
		score += textScore * freeTextWeight
	}

	return clampScore(score)
}
