package scoring

import "career-backend/internal/careers"

const (
	contextBase        = 50.0
	parentFamiliarity  = 15.0
	studyAbroadBonus   = 10.0
	workStyleFitPoints = 10.0
)

// parentBucketAffinity maps a parent's field of work to the career bucket
// it gives the family direct exposure to.
var parentBucketAffinity = map[string]string{
	"IT / Software":         "Computer Science & Software Development",
	"Engineering":           "Engineering & Core Technology",
	"Finance / Banking":     "Business Finance & Consulting",
	"Medicine / Healthcare": "Healthcare & Life Sciences",
	"Education":             "Education & Training",
	"Law / Government":      "Law Public Policy & Social Impact",
	"Creative Arts":         "Design Media & Creative Industries",
	"Data / Analytics":      "Data AI & Analytics",
	"Business / Trade":      "Business Finance & Consulting",
}

// workStyleBuckets maps a stated work-style preference to the buckets
// whose day-to-day matches it.
var workStyleBuckets = map[string][]string{
	"Office / Desk": {
		"Computer Science & Software Development",
		"Data AI & Analytics",
		"Business Finance & Consulting",
	},
	"Lab / Research": {
		"Data AI & Analytics",
		"Healthcare & Life Sciences",
	},
	"Outdoors / Field": {
		"Engineering & Core Technology",
	},
	"Creative Studio": {
		"Design Media & Creative Industries",
	},
	"With People": {
		"Education & Training",
		"Healthcare & Life Sciences",
		"Law Public Policy & Social Impact",
	},
}

// ContextFitScore measures how well a career fits the student's
// circumstances: family exposure to the field, openness to studying
// abroad for emerging careers, and preferred working environment. Each
// signal is optional; absent signals leave the neutral base untouched.
func ContextFitScore(career careers.Career, parents []string, workStyle string, studyAbroad *bool) float64 {
	score := contextBase

	for _, parent := range parents {
		if parentBucketAffinity[parent] == career.Bucket {
			score += parentFamiliarity
			break
		}
	}

	if studyAbroad != nil && *studyAbroad && career.HasTag("new_age") {
		score += studyAbroadBonus
	}

	if workStyle != "" {
		for _, bucket := range workStyleBuckets[workStyle] {
			if bucket == career.Bucket {
				score += workStyleFitPoints
				break
			}
		}
	}

	return clampScore(score)
}
