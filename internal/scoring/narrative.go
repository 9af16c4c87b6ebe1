package scoring

import (
	"fmt"
	"strings"

	"career-backend/internal/careers"
)

// Confidence bands over the final match score.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"

	highConfidenceCutoff   = 70
	mediumConfidenceCutoff = 50
)

const (
	strongInterestCutoff = 60
	strongSubjectCutoff  = 75
	maxTopReasons        = 3
	maxStudyPathCourses  = 3
)

var letterTraits = map[byte]string{
	'R': "hands-on, practical interests",
	'I': "analytical, curious mindset",
	'A': "creative, expressive side",
	'S': "people-focused, helping nature",
	'E': "leadership and persuasion",
	'C': "organized, detail-oriented style",
}

func confidenceBand(score int) string {
	switch {
	case score >= highConfidenceCutoff:
		return ConfidenceHigh
	case score >= mediumConfidenceCutoff:
		return ConfidenceMedium
	}
	return ConfidenceLow
}

// topReasons explains a match in the student's own terms: strong interest
// letters shared with the career's profile first, then strong marks in its
// primary subjects. The career's generic fit line backstops matches with
// no standout signal so the list is never empty.
func topReasons(career careers.Career, breakdown FactorBreakdown, vector RiasecVector, in NormalizedInputs) []string {
	var reasons []string

	for i := 0; i < len(career.RiasecProfile) && len(reasons) < maxTopReasons; i++ {
		letter := career.RiasecProfile[i]
		if vector.Value(letter) >= strongInterestCutoff {
			reasons = append(reasons, fmt.Sprintf("Your %s matches this field well", letterTraits[letter]))
		}
	}

	for _, subject := range career.PrimarySubjects {
		if len(reasons) >= maxTopReasons {
			break
		}
		if score, ok := lookupSubject(in.SubjectScores, subject); ok && score > strongSubjectCutoff {
			reasons = append(reasons, fmt.Sprintf("Strong performance in %s (%d%%)", subject, score))
		}
	}

	if breakdown.Practical > practicalBase && len(reasons) < maxTopReasons {
		reasons = append(reasons, "Your activities show real engagement with this area")
	}

	if len(reasons) == 0 && career.WhyFit != "" {
		reasons = append(reasons, career.WhyFit)
	}
	return reasons
}

func studyPath(career careers.Career) []string {
	courses := career.TopCourses
	if len(courses) > maxStudyPathCourses {
		courses = courses[:maxStudyPathCourses]
	}
	out := make([]string, len(courses))
	copy(out, courses)
	return out
}

// firstThreeSteps suggests concrete next actions, using the career's
// microprojects when the catalog provides them.
func firstThreeSteps(career careers.Career) []string {
	steps := []string{
		fmt.Sprintf("Explore a beginner online course about %s", career.Name),
		fmt.Sprintf("Talk to someone working as a %s about their day-to-day", career.Name),
	}
	if len(career.Microprojects) > 0 {
		steps = append(steps, fmt.Sprintf("Try a starter project: %s", career.Microprojects[0]))
	} else {
		steps = append(steps, fmt.Sprintf("Read about the main paths into %s", career.Name))
	}
	return steps
}

// whatWouldChange names the weakest primary subject as the lever that
// would most move this recommendation.
func whatWouldChange(career careers.Career, in NormalizedInputs) string {
	weakest := ""
	weakestScore := 0
	for _, subject := range career.PrimarySubjects {
		score, ok := lookupSubject(in.SubjectScores, subject)
		if !ok || score >= subjectPenaltyCutoff {
			continue
		}
		if weakest == "" || score < weakestScore {
			weakest = subject
			weakestScore = score
		}
	}
	if weakest != "" {
		return fmt.Sprintf("Improving your %s marks would significantly strengthen this match", weakest)
	}
	return "Deeper hands-on exposure to this field would raise our confidence in this match"
}

// summaryParagraph opens the report: the student's leading interest
// themes and their strongest bucket.
func summaryParagraph(name string, vector RiasecVector, buckets []CareerBucket) string {
	if name == "" {
		name = "This student"
	}

	var traits []string
	for _, letter := range riasecLetters {
		if vector.Value(letter) >= strongInterestCutoff {
			traits = append(traits, letterTraits[letter])
		}
		if len(traits) == 2 {
			break
		}
	}

	var b strings.Builder
	switch len(traits) {
	case 0:
		fmt.Fprintf(&b, "%s shows a balanced mix of interests across different areas.", name)
	case 1:
		fmt.Fprintf(&b, "%s stands out for a %s.", name, traits[0])
	default:
		fmt.Fprintf(&b, "%s stands out for a %s combined with a %s.", name, traits[0], traits[1])
	}
	if len(buckets) > 0 {
		fmt.Fprintf(&b, " Careers in %s look like the strongest fit right now, and the matches below explain why.", buckets[0].BucketName)
	}
	return b.String()
}
