package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/dto"
	"github.com/SscSPs/bizbooks_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the dashboard and report exports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to the dashboard and reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/reports/:kind", h.getReport)
}

// getDashboard godoc
// @Summary Dashboard totals for a period
// @Description Totals, profit, receivables, payables, a month-by-month chart and expenses by category.
// @Tags reports
// @Produce json
// @Param range query string false "all, thisMonth, lastMonth, thisYear, lastYear or custom"
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	summary, err := h.reportingService.GetDashboard(c.Request.Context(), params, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getReport godoc
// @Summary Report rows for a period
// @Description Every record of the collection in the period, newest first.
// @Tags reports
// @Produce json
// @Param kind path string true "sales, purchases or expenses"
// @Param range query string false "all, thisMonth, lastMonth, thisYear, lastYear or custom"
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{kind} [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	kind := c.Param("kind")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("report", kind))
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	report, err := h.reportingService.GetReport(c.Request.Context(), kind, params, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, report)
}
