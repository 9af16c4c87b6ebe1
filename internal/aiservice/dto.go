package aiservice

import "career-backend/internal/scoring"

// Wire types for the enhancement service, which speaks snake_case.

type studentProfile struct {
	Name             string         `json:"name"`
	Grade            int            `json:"grade"`
	Board            string         `json:"board"`
	RiasecScores     map[string]int `json:"riasec_scores"`
	SubjectScores    map[string]int `json:"subject_scores"`
	Extracurriculars []string       `json:"extracurriculars"`
}

type careerMatch struct {
	CareerName string   `json:"career_name"`
	BucketName string   `json:"bucket_name"`
	MatchScore int      `json:"match_score"`
	Confidence string   `json:"confidence"`
	TopReasons []string `json:"top_reasons"`
	StudyPath  []string `json:"study_path"`
}

type careerBucket struct {
	BucketName  string `json:"bucket_name"`
	BucketScore int    `json:"bucket_score"`
}

type generateRequest struct {
	StudentProfile studentProfile `json:"student_profile"`
	CareerMatches  []careerMatch  `json:"career_matches"`
	TopBuckets     []careerBucket `json:"top_buckets"`
}

type enhancedCareerInsights struct {
	DetailedExplanations   map[string]string   `json:"detailed_explanations"`
	PersonalizedStudyPaths map[string][]string `json:"personalized_study_paths"`
	ConfidenceExplanations map[string]string   `json:"confidence_explanations"`
}

type actionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
}

type generateResponse struct {
	PersonalizedSummary      string                  `json:"personalized_summary"`
	SkillRecommendations     []string                `json:"skill_recommendations"`
	CareerTrajectoryInsights string                  `json:"career_trajectory_insights"`
	EnhancedCareerInsights   *enhancedCareerInsights `json:"enhanced_career_insights"`
	ActionPlan               []actionItem            `json:"action_plan"`
}

// newGenerateRequest reduces a full report to the view the enhancement
// service needs: the student's profile plus the ranked matches, without
// narrative fields the service is about to rewrite anyway.
func newGenerateRequest(report scoring.StudentReport) generateRequest {
	req := generateRequest{
		StudentProfile: studentProfile{
			Name:  report.StudentName,
			Grade: report.Grade,
			Board: report.Board,
			RiasecScores: map[string]int{
				"R": report.VibeScores.R,
				"I": report.VibeScores.I,
				"A": report.VibeScores.A,
				"S": report.VibeScores.S,
				"E": report.VibeScores.E,
				"C": report.VibeScores.C,
			},
			SubjectScores:    report.SubjectScores,
			Extracurriculars: report.Extracurriculars,
		},
	}
	for _, bucket := range report.Top5Buckets {
		req.TopBuckets = append(req.TopBuckets, careerBucket{
			BucketName:  bucket.BucketName,
			BucketScore: bucket.BucketScore,
		})
		for _, match := range bucket.Careers {
			req.CareerMatches = append(req.CareerMatches, careerMatch{
				CareerName: match.CareerName,
				BucketName: bucket.BucketName,
				MatchScore: match.MatchScore,
				Confidence: match.Confidence,
				TopReasons: match.TopReasons,
				StudyPath:  match.StudyPath,
			})
		}
	}
	return req
}
