// Package scoring computes deterministic career recommendations from a
// student's questionnaire submission. It normalizes raw answers, derives a
// RIASEC interest vector, scores every career in the catalog across four
// weighted factors, and assembles a ranked, bucketed report with
// human-readable explanations. All functions are pure; the same submission
// and catalog always produce the same report.
package scoring

// Submission is the raw questionnaire input for one student. Answers maps
// question ids to untyped values as decoded from JSON; the question bank
// decides how each value is interpreted.
type Submission struct {
	UserID           string         `json:"userId"`
	UserName         string         `json:"userName"`
	SchoolName       string         `json:"schoolName"`
	Grade            int            `json:"grade"`
	Board            string         `json:"board"`
	Answers          map[string]any `json:"answers"`
	SubjectScores    map[string]int `json:"subjectScores"`
	Extracurriculars []string       `json:"extracurriculars"`
	ParentCareers    []string       `json:"parentCareers"`
	WorkStyle        string         `json:"workStylePreference"`
	StudyAbroad      *bool          `json:"studyAbroadPreference"`
}

// NormalizedInputs is the validated, typed view of a submission that the
// scorers consume. Missing or malformed answers are simply absent here.
type NormalizedInputs struct {
	// RiasecAnswers holds ratings (1-5) keyed by interest question id.
	RiasecAnswers map[string]int
	// SubjectScores holds academic marks (0-100) keyed by subject name.
	SubjectScores    map[string]int
	Extracurriculars []string
	ParentCareers    []string
	// FreeText is every free-text answer joined into one lowercase blob.
	FreeText    string
	WorkStyle   string
	StudyAbroad *bool
}

// RiasecVector holds the student's normalized interest scores, one per
// RIASEC letter, each in [0,100].
type RiasecVector struct {
	R int `json:"R"`
	I int `json:"I"`
	A int `json:"A"`
	S int `json:"S"`
	E int `json:"E"`
	C int `json:"C"`
}

// Value returns the score for a single RIASEC letter, or -1 if the letter
// is not one of the six.
func (v RiasecVector) Value(letter byte) int {
	switch letter {
	case 'R':
		return v.R
	case 'I':
		return v.I
	case 'A':
		return v.A
	case 'S':
		return v.S
	case 'E':
		return v.E
	case 'C':
		return v.C
	}
	return -1
}

func (v *RiasecVector) set(letter byte, score int) {
	switch letter {
	case 'R':
		v.R = score
	case 'I':
		v.I = score
	case 'A':
		v.A = score
	case 'S':
		v.S = score
	case 'E':
		v.E = score
	case 'C':
		v.C = score
	}
}

// FactorBreakdown records the four per-factor scores behind one career
// match, before and after weighting. Kept on the match so explanations and
// tests can see why a career ranked where it did.
type FactorBreakdown struct {
	Riasec    float64 `json:"riasec"`
	Subject   float64 `json:"subject"`
	Practical float64 `json:"practical"`
	Context   float64 `json:"context"`
}

// CareerMatch is one scored career inside a bucket.
type CareerMatch struct {
	CareerID        string          `json:"careerId"`
	CareerName      string          `json:"careerName"`
	MatchScore      int             `json:"matchScore"`
	Breakdown       FactorBreakdown `json:"factorBreakdown"`
	TopReasons      []string        `json:"topReasons"`
	StudyPath       []string        `json:"studyPath"`
	First3Steps     []string        `json:"first3Steps"`
	Confidence      string          `json:"confidence"`
	WhatWouldChange string          `json:"whatWouldChangeRecommendation"`
}

// CareerBucket groups ranked careers under one catalog bucket.
type CareerBucket struct {
	BucketName  string        `json:"bucketName"`
	BucketScore int           `json:"bucketScore"`
	Careers     []CareerMatch `json:"careers"`
}

// CareerInsights carries the per-career commentary an enhancement service
// may attach, keyed by career name.
type CareerInsights struct {
	Explanations           map[string]string   `json:"explanations,omitempty"`
	StudyPaths             map[string][]string `json:"studyPaths,omitempty"`
	ConfidenceExplanations map[string]string   `json:"confidenceExplanations,omitempty"`
}

// ActionItem is one step of an AI-suggested action plan.
type ActionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline,omitempty"`
}

// StudentReport is the full recommendation report returned to the client.
// The AI fields stay zero-valued unless an enhancement pass succeeds.
type StudentReport struct {
	ReportID         string         `json:"reportId"`
	StudentName      string         `json:"studentName"`
	SchoolName       string         `json:"schoolName,omitempty"`
	Grade            int            `json:"grade"`
	Board            string         `json:"board"`
	VibeScores       RiasecVector   `json:"vibeScores"`
	SubjectScores    map[string]int `json:"subjectScores,omitempty"`
	Extracurriculars []string       `json:"extracurriculars,omitempty"`
	Top5Buckets      []CareerBucket `json:"top5Buckets"`
	SummaryParagraph string         `json:"summaryParagraph"`

	AIEnhanced               bool            `json:"aiEnhanced"`
	EnhancedSummary          string          `json:"enhancedSummary,omitempty"`
	SkillRecommendations     []string        `json:"skillRecommendations,omitempty"`
	CareerTrajectoryInsights string          `json:"careerTrajectoryInsights,omitempty"`
	DetailedCareerInsights   *CareerInsights `json:"detailedCareerInsights,omitempty"`
	ActionPlan               []ActionItem    `json:"actionPlan,omitempty"`
}
