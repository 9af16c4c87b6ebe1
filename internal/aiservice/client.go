// Package aiservice talks to the external report-enhancement service. The
// service is strictly optional: every failure mode collapses to returning
// the caller's baseline report untouched, so a broken or disabled AI
// backend can never fail a report request.
package aiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"career-backend/internal/scoring"
	"career-backend/internal/shared/telemetry"
)

const (
	generateReportPath = "/api/v1/generate-report"
	healthPath         = "/api/v1/health"

	healthTimeout = 3 * time.Second
)

// Result is the outcome of one enhancement attempt. Report is always
// usable: either the enhanced report or the untouched baseline. Reason
// explains a false Enhanced flag.
type Result struct {
	Report   scoring.StudentReport
	Enhanced bool
	Reason   string
}

// Enhancer is the narrow surface the report service depends on.
type Enhancer interface {
	Enhance(ctx context.Context, report scoring.StudentReport) Result
	Healthy(ctx context.Context) bool
}

// Client calls the enhancement service over HTTP. A disabled client
// short-circuits without any network traffic.
type Client struct {
	baseURL string
	enabled bool
	http    *http.Client
}

func NewClient(baseURL string, enabled bool, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		enabled: enabled,
		http:    &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether enhancement attempts are configured on.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Enhance makes a single attempt to enrich the report with AI narrative.
// It never returns an error: any failure is logged and the baseline comes
// back with Enhanced=false. Numeric scores in the returned report are the
// baseline's own; the service only contributes narrative fields.
func (c *Client) Enhance(ctx context.Context, report scoring.StudentReport) Result {
	if !c.enabled {
		return Result{Report: report, Reason: "ai service disabled"}
	}

	resp, err := c.generate(ctx, report)
	if err != nil {
		telemetry.Error("ai.enhance_failed", map[string]any{
			"reportId": report.ReportID,
			"error":    err.Error(),
		})
		return Result{Report: report, Reason: err.Error()}
	}

	enhanced := mergeEnhancements(report, resp)
	telemetry.Info("ai.enhanced", map[string]any{
		"reportId":    report.ReportID,
		"skills":      len(resp.SkillRecommendations),
		"actionItems": len(resp.ActionPlan),
	})
	return Result{Report: enhanced, Enhanced: true}
}

func (c *Client) generate(ctx context.Context, report scoring.StudentReport) (*generateResponse, error) {
	body, err := json.Marshal(newGenerateRequest(report))
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generateReportPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call ai service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Cap the read so a misbehaving service cannot flood the log.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ai service returned %d: %s", resp.StatusCode, snippet)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// Healthy probes the service health endpoint with a short deadline of its
// own, independent of the enhancement timeout.
func (c *Client) Healthy(ctx context.Context) bool {
	if !c.enabled {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// mergeEnhancements copies the service's narrative fields onto the
// baseline. Numeric scores, bucket ordering, and per-career matches are
// deliberately left alone.
func mergeEnhancements(baseline scoring.StudentReport, resp *generateResponse) scoring.StudentReport {
	out := baseline
	out.AIEnhanced = true
	out.EnhancedSummary = resp.PersonalizedSummary
	out.SkillRecommendations = resp.SkillRecommendations
	out.CareerTrajectoryInsights = resp.CareerTrajectoryInsights
	if resp.PersonalizedSummary != "" {
		out.SummaryParagraph = resp.PersonalizedSummary
	}

	if insights := resp.EnhancedCareerInsights; insights != nil {
		out.DetailedCareerInsights = &scoring.CareerInsights{
			Explanations:           insights.DetailedExplanations,
			StudyPaths:             insights.PersonalizedStudyPaths,
			ConfidenceExplanations: insights.ConfidenceExplanations,
		}
	}

	if len(resp.ActionPlan) > 0 {
		plan := make([]scoring.ActionItem, 0, len(resp.ActionPlan))
		for _, item := range resp.ActionPlan {
			plan = append(plan, scoring.ActionItem{
				Title:       item.Title,
				Description: item.Description,
				Timeline:    item.Timeline,
			})
		}
		out.ActionPlan = plan
	}
	return out
}
