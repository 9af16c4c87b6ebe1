package reports

import "career-backend/internal/scoring"

// SubmissionRequest is the POST /api/v1/reports body. Answers stays
// untyped here; the scoring normalizer decides how each value is read.
type SubmissionRequest struct {
	UserID           string         `json:"userId"`
	UserName         string         `json:"userName" binding:"required"`
	SchoolName       string         `json:"schoolName"`
	Grade            int            `json:"grade" binding:"required,gte=6,lte=12"`
	Board            string         `json:"board" binding:"required"`
	Answers          map[string]any `json:"answers"`
	SubjectScores    map[string]int `json:"subjectScores"`
	Extracurriculars []string       `json:"extracurriculars"`
	ParentCareers    []string       `json:"parentCareers"`
	WorkStyle        string         `json:"workStylePreference"`
	StudyAbroad      *bool          `json:"studyAbroadPreference"`
}

func (r SubmissionRequest) toSubmission() scoring.Submission {
	return scoring.Submission{
		UserID:           r.UserID,
		UserName:         r.UserName,
		SchoolName:       r.SchoolName,
		Grade:            r.Grade,
		Board:            r.Board,
		Answers:          r.Answers,
		SubjectScores:    r.SubjectScores,
		Extracurriculars: r.Extracurriculars,
		ParentCareers:    r.ParentCareers,
		WorkStyle:        r.WorkStyle,
		StudyAbroad:      r.StudyAbroad,
	}
}
