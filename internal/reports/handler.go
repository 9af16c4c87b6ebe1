package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/careers"
	"career-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reports service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports", h.createReport)
	rg.GET("/ai/health", h.aiHealth)
}

func (h *Handler) createReport(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			"userName, grade (6-12) and board are required", err.Error())
		return
	}

	report, err := h.Svc.ComputeCareerReport(c.Request.Context(), req.toSubmission())
	if err != nil {
		if errors.Is(err, careers.ErrEmptyCatalog) {
			respond.Error(c, http.StatusServiceUnavailable, "catalog_unavailable",
				"career catalog is not loaded", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error",
			"failed to compute career report", nil)
		return
	}

	// Breadcrumbs for the request-completion log line.
	c.Set("reportId", report.ReportID)
	c.Set("aiEnhanced", report.AIEnhanced)

	respond.OK(c, report)
}

func (h *Handler) aiHealth(c *gin.Context) {
	healthy := h.Svc.AIHealthy(c.Request.Context())
	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	respond.JSON(c, status, gin.H{"aiService": healthy})
}
