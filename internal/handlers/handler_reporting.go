package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// bindReportDates parses the report query. It answers the request itself and
// reports false when the dates are malformed.
func (h *reportingHandler) bindReportDates(c *gin.Context, logger *slog.Logger) (dto.ReportDateParams, bool) {
	var params dto.ReportDateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid report date query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
		return params, false
	}
	return params, true
}

// dateOr returns the parsed value of s, or fallback when s is empty. The
// value has already passed the binding's datetime check.
func dateOr(s string, fallback time.Time) time.Time {
	t, _ := dto.ParseReportDate(s)
	if t == nil {
		return fallback
	}
	return *t
}

func (h *reportingHandler) today() time.Time {
	now := h.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance report as of a specific date
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := h.bindReportDates(c, logger)
	if !ok {
		return
	}
	asOf := dateOr(params.AsOf, h.today())

	logger = logger.With(slog.String("asOf", asOf.Format(time.DateOnly)))
	logger.Info("Received request to generate trial balance report")

	report, err := h.reportingService.TrialBalance(c.Request.Context(), businessID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(report.Rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss report for a specific period
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param from query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := h.bindReportDates(c, logger)
	if !ok {
		return
	}

	today := h.today()
	from := dateOr(params.From, time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC))
	to := dateOr(params.To, today)
	if from.After(to) {
		logger.Warn("Invalid date range", slog.Time("from", from), slog.Time("to", to))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from must be before or equal to to"})
		return
	}

	logger = logger.With(
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
	)
	logger.Info("Received request to generate profit and loss report")

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to generate profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated successfully",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet report as of a specific date. Retained earnings are folded into equity.
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := h.bindReportDates(c, logger)
	if !ok {
		return
	}
	asOf := dateOr(params.AsOf, h.today())

	logger = logger.With(slog.String("asOf", asOf.Format(time.DateOnly)))
	logger.Info("Received request to generate balance sheet report")

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), businessID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate balance sheet report")
		return
	}

	logger.Info("Balance sheet report generated successfully",
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}
