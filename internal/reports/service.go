// Package reports orchestrates report generation: catalog lookup,
// deterministic scoring, and the optional AI enhancement pass.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"career-backend/internal/aiservice"
	"career-backend/internal/careers"
	"career-backend/internal/scoring"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/telemetry"
)

// Service builds student reports. Enhancer may be nil when no AI backend
// is configured at all.
type Service struct {
	Careers  careers.Repo
	Engine   *scoring.Engine
	Enhancer aiservice.Enhancer
}

func NewService(repo careers.Repo, engine *scoring.Engine, enhancer aiservice.Enhancer) *Service {
	return &Service{Careers: repo, Engine: engine, Enhancer: enhancer}
}

// ComputeCareerReport runs the full pipeline for one submission. The only
// error path is an unreadable catalog; scoring itself cannot fail, and an
// AI failure degrades to the baseline report rather than erroring.
func (s *Service) ComputeCareerReport(ctx context.Context, sub scoring.Submission) (scoring.StudentReport, error) {
	start := time.Now()
	metrics.IncReportStarted()

	catalog, err := s.Careers.List(ctx)
	if err != nil {
		metrics.IncReportFailed()
		return scoring.StudentReport{}, fmt.Errorf("load career catalog: %w", err)
	}

	report := s.Engine.BuildReport(catalog, sub)
	report.ReportID = uuid.NewString()

	if s.Enhancer != nil {
		res := s.Enhancer.Enhance(ctx, report)
		report = res.Report
		if res.Enhanced {
			metrics.IncReportEnhanced("enhanced")
		} else {
			metrics.IncReportEnhanced("skipped")
			telemetry.Info("report.baseline_only", map[string]any{
				"reportId": report.ReportID,
				"reason":   res.Reason,
			})
		}
	}

	metrics.IncReportCompleted()
	metrics.ObserveReportDurationMs(float64(time.Since(start).Milliseconds()))
	telemetry.Info("report.computed", map[string]any{
		"reportId":   report.ReportID,
		"student":    report.StudentName,
		"buckets":    len(report.Top5Buckets),
		"aiEnhanced": report.AIEnhanced,
	})
	return report, nil
}

// AIHealthy reports whether the enhancement backend is reachable.
func (s *Service) AIHealthy(ctx context.Context) bool {
	if s.Enhancer == nil {
		return false
	}
	return s.Enhancer.Healthy(ctx)
}
