package aiservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"career-backend/internal/scoring"
)

func baselineReport() scoring.StudentReport {
	return scoring.StudentReport{
		ReportID:    "r-123",
		StudentName: "Aisha",
		Grade:       10,
		Board:       "CBSE",
		VibeScores:  scoring.RiasecVector{I: 100, C: 40},
		Top5Buckets: []scoring.CareerBucket{
			{
				BucketName:  "Data AI & Analytics",
				BucketScore: 71,
				Careers: []scoring.CareerMatch{
					{CareerName: "Data Scientist", MatchScore: 72, Confidence: "High"},
				},
			},
		},
		SummaryParagraph: "baseline summary",
	}
}

func TestEnhanceSuccess(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/generate-report" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"personalized_summary":       "Aisha, your analytical streak is rare.",
			"skill_recommendations":      []string{"Python", "statistics"},
			"career_trajectory_insights": "Analyst to scientist within five years.",
			"enhanced_career_insights": map[string]any{
				"detailed_explanations":    map[string]string{"Data Scientist": "because"},
				"personalized_study_paths": map[string][]string{"Data Scientist": {"B.Stat"}},
				"confidence_explanations":  map[string]string{"Data Scientist": "strong signals"},
			},
			"action_plan": []map[string]string{
				{"title": "Join a data club", "description": "weekly", "timeline": "this term"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, true, time.Second)
	res := client.Enhance(context.Background(), baselineReport())

	if !res.Enhanced || res.Reason != "" {
		t.Fatalf("Enhanced = %v, Reason = %q", res.Enhanced, res.Reason)
	}
	if !res.Report.AIEnhanced {
		t.Error("AIEnhanced not set")
	}
	if res.Report.EnhancedSummary != "Aisha, your analytical streak is rare." {
		t.Errorf("EnhancedSummary = %q", res.Report.EnhancedSummary)
	}
	if res.Report.SummaryParagraph != res.Report.EnhancedSummary {
		t.Errorf("SummaryParagraph = %q, want AI summary", res.Report.SummaryParagraph)
	}
	if want := []string{"Python", "statistics"}; !reflect.DeepEqual(res.Report.SkillRecommendations, want) {
		t.Errorf("SkillRecommendations = %v", res.Report.SkillRecommendations)
	}
	if res.Report.DetailedCareerInsights == nil ||
		res.Report.DetailedCareerInsights.Explanations["Data Scientist"] != "because" {
		t.Errorf("DetailedCareerInsights = %+v", res.Report.DetailedCareerInsights)
	}
	if len(res.Report.ActionPlan) != 1 || res.Report.ActionPlan[0].Title != "Join a data club" {
		t.Errorf("ActionPlan = %+v", res.Report.ActionPlan)
	}

	// The request carried the reduced profile view.
	if gotBody.StudentProfile.Name != "Aisha" || gotBody.StudentProfile.RiasecScores["I"] != 100 {
		t.Errorf("request profile = %+v", gotBody.StudentProfile)
	}
	if len(gotBody.CareerMatches) != 1 || gotBody.CareerMatches[0].BucketName != "Data AI & Analytics" {
		t.Errorf("request matches = %+v", gotBody.CareerMatches)
	}
}

// Every failure mode must hand back the baseline untouched.
func TestEnhanceFailuresReturnBaseline(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		reason  string
	}{
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
			reason: "call ai service",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model overloaded", http.StatusInternalServerError)
			},
			reason: "returned 500",
		},
		{
			name: "malformed response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			reason: "decode response",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			baseline := baselineReport()
			client := NewClient(srv.URL, true, 50*time.Millisecond)
			res := client.Enhance(context.Background(), baseline)

			if res.Enhanced {
				t.Fatal("Enhanced = true on failure")
			}
			if !strings.Contains(res.Reason, tc.reason) {
				t.Errorf("Reason = %q, want it to mention %q", res.Reason, tc.reason)
			}
			if !reflect.DeepEqual(res.Report, baseline) {
				t.Errorf("baseline mutated:\nwant %+v\ngot  %+v", baseline, res.Report)
			}
		})
	}
}

func TestEnhanceDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("disabled client made a request")
	}))
	defer srv.Close()

	baseline := baselineReport()
	res := NewClient(srv.URL, false, time.Second).Enhance(context.Background(), baseline)

	if res.Enhanced || res.Reason != "ai service disabled" {
		t.Errorf("Enhanced = %v, Reason = %q", res.Enhanced, res.Reason)
	}
	if !reflect.DeepEqual(res.Report, baseline) {
		t.Error("baseline mutated by disabled client")
	}
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if !NewClient(srv.URL, true, time.Second).Healthy(context.Background()) {
		t.Error("healthy service reported unhealthy")
	}
	if NewClient(srv.URL, false, time.Second).Healthy(context.Background()) {
		t.Error("disabled client reported healthy")
	}
	if NewClient("http://127.0.0.1:0", true, time.Second).Healthy(context.Background()) {
		t.Error("unreachable service reported healthy")
	}
}
