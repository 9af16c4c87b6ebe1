package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	reportStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_started_total",
		Help: "Total career reports started",
	})
	reportCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_completed_total",
		Help: "Total career reports completed",
	})
	reportFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_failed_total",
		Help: "Total career reports failed",
	})
	reportEnhancedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_ai_enhanced_total",
		Help: "Total reports by AI enhancement outcome",
	}, []string{"outcome"})
	reportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "report_duration_ms",
		Help:    "Report computation duration in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000, 30000, 120000},
	})
)

// IncReportStarted increments the started counter.
func IncReportStarted() {
	reportStartedTotal.Inc()
}

// IncReportCompleted increments the completed counter.
func IncReportCompleted() {
	reportCompletedTotal.Inc()
}

// IncReportFailed increments the failed counter.
func IncReportFailed() {
	reportFailedTotal.Inc()
}

// IncReportEnhanced records an AI-enhancement outcome ("enhanced", "skipped" or "failed").
func IncReportEnhanced(outcome string) {
	reportEnhancedTotal.WithLabelValues(outcome).Inc()
}

// ObserveReportDurationMs records a report computation duration in milliseconds.
func ObserveReportDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	reportDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
