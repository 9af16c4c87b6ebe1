package scoring

import (
	"math"
	"sort"

	"career-backend/internal/careers"
)

// Factor weights for the final match score. They sum to 1, so the final
// score inherits the [0,100] range of its factors.
const (
	weightRiasec    = 0.40
	weightSubject   = 0.30
	weightPractical = 0.20
	weightContext   = 0.10
)

// Defaults for how much of the ranking makes it into the report.
const (
	DefaultTopBuckets       = 5
	DefaultCareersPerBucket = 3
)

// Engine turns submissions into reports. It is stateless beyond its
// configuration and safe for concurrent use.
type Engine struct {
	bank             *QuestionBank
	topBuckets       int
	careersPerBucket int
}

// NewEngine builds an engine over a question bank. Non-positive limits
// fall back to the defaults.
func NewEngine(bank *QuestionBank, topBuckets, careersPerBucket int) *Engine {
	if bank == nil {
		bank = DefaultQuestionBank()
	}
	if topBuckets <= 0 {
		topBuckets = DefaultTopBuckets
	}
	if careersPerBucket <= 0 {
		careersPerBucket = DefaultCareersPerBucket
	}
	return &Engine{bank: bank, topBuckets: topBuckets, careersPerBucket: careersPerBucket}
}

// scoredCareer pairs a catalog entry with its computed match while the
// ranking is still in flight.
type scoredCareer struct {
	career careers.Career
	match  CareerMatch
}

// BuildReport scores every catalog career for the submission and
// assembles the ranked report. Given the same catalog and submission it
// always produces the same report.
func (e *Engine) BuildReport(catalog []careers.Career, sub Submission) StudentReport {
	in := e.bank.Normalize(sub)
	vector := e.bank.RiasecVector(in.RiasecAnswers)

	scored := make([]scoredCareer, 0, len(catalog))
	for _, career := range catalog {
		scored = append(scored, scoredCareer{
			career: career,
			match:  e.scoreCareer(career, in, vector),
		})
	}

	buckets := e.rankBuckets(scored)

	return StudentReport{
		StudentName:      sub.UserName,
		SchoolName:       sub.SchoolName,
		Grade:            sub.Grade,
		Board:            sub.Board,
		VibeScores:       vector,
		SubjectScores:    in.SubjectScores,
		Extracurriculars: in.Extracurriculars,
		Top5Buckets:      buckets,
		SummaryParagraph: summaryParagraph(sub.UserName, vector, buckets),
	}
}

// scoreCareer computes the four factor scores, the weighted final score,
// and the narrative attached to one career.
func (e *Engine) scoreCareer(career careers.Career, in NormalizedInputs, vector RiasecVector) CareerMatch {
	breakdown := FactorBreakdown{
		Riasec:    RiasecMatchScore(career, vector),
		Subject:   SubjectMatchScore(career, in.SubjectScores),
		Practical: PracticalFitScore(career, in.Extracurriculars, in.FreeText),
		Context:   ContextFitScore(career, in.ParentCareers, in.WorkStyle, in.StudyAbroad),
	}

	final := weightRiasec*breakdown.Riasec +
		weightSubject*breakdown.Subject +
		weightPractical*breakdown.Practical +
		weightContext*breakdown.Context
	score := int(math.Round(clampScore(final)))

	return CareerMatch{
		CareerID:        career.ID,
		CareerName:      career.Name,
		MatchScore:      score,
		Breakdown:       breakdown,
		TopReasons:      topReasons(career, breakdown, vector, in),
		StudyPath:       studyPath(career),
		First3Steps:     firstThreeSteps(career),
		Confidence:      confidenceBand(score),
		WhatWouldChange: whatWouldChange(career, in),
	}
}

// rankBuckets groups scored careers by catalog bucket, scores each bucket
// as the mean of its members, and returns the strongest buckets with
// their strongest careers. All orderings are total: score descending,
// then catalog position ascending, so equal inputs rank identically on
// every run.
func (e *Engine) rankBuckets(scored []scoredCareer) []CareerBucket {
	type bucketAcc struct {
		name     string
		members  []scoredCareer
		total    int
		position int
	}

	var order []string
	byName := make(map[string]*bucketAcc)
	for _, sc := range scored {
		acc, ok := byName[sc.career.Bucket]
		if !ok {
			acc = &bucketAcc{name: sc.career.Bucket, position: sc.career.Position}
			byName[sc.career.Bucket] = acc
			order = append(order, sc.career.Bucket)
		}
		acc.members = append(acc.members, sc)
		acc.total += sc.match.MatchScore
		if sc.career.Position < acc.position {
			acc.position = sc.career.Position
		}
	}

	accs := make([]*bucketAcc, 0, len(order))
	for _, name := range order {
		accs = append(accs, byName[name])
	}

	bucketScore := func(acc *bucketAcc) int {
		return int(math.Round(float64(acc.total) / float64(len(acc.members))))
	}
	sort.SliceStable(accs, func(i, j int) bool {
		si, sj := bucketScore(accs[i]), bucketScore(accs[j])
		if si != sj {
			return si > sj
		}
		return accs[i].position < accs[j].position
	})
	if len(accs) > e.topBuckets {
		accs = accs[:e.topBuckets]
	}

	buckets := make([]CareerBucket, 0, len(accs))
	for _, acc := range accs {
		members := acc.members
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].match.MatchScore != members[j].match.MatchScore {
				return members[i].match.MatchScore > members[j].match.MatchScore
			}
			return members[i].career.Position < members[j].career.Position
		})
		if len(members) > e.careersPerBucket {
			members = members[:e.careersPerBucket]
		}

		matches := make([]CareerMatch, 0, len(members))
		for _, m := range members {
			matches = append(matches, m.match)
		}
		buckets = append(buckets, CareerBucket{
			BucketName:  acc.name,
			BucketScore: bucketScore(acc),
			Careers:     matches,
		})
	}
	return buckets
}
