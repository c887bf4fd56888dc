package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/gin-gonic/gin"
)

type financialYearHandler struct {
	financialYearService portssvc.FinancialYearSvcFacade
}

func newFinancialYearHandler(fs portssvc.FinancialYearSvcFacade) *financialYearHandler {
	return &financialYearHandler{financialYearService: fs}
}

func registerFinancialYearRoutes(rg *gin.RouterGroup, financialYearService portssvc.FinancialYearSvcFacade) {
	h := newFinancialYearHandler(financialYearService)

	years := rg.Group("/financial-years")
	{
		years.POST("", h.createFinancialYear)
		years.GET("", h.listFinancialYears)
		years.GET("/active", h.getActiveFinancialYear)
		years.GET("/:financial_year_id", h.getFinancialYear)
		years.POST("/:financial_year_id/activate", h.activateFinancialYear)
	}
}

// createFinancialYear godoc
// @Summary Open a financial year
// @Description Creates a financial year, optionally making it the active one
// @Tags financial-years
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param year body dto.CreateFinancialYearRequest true "Financial year"
// @Success 201 {object} dto.FinancialYearResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /businesses/{business_id}/financial-years [post]
func (h *financialYearHandler) createFinancialYear(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateFinancialYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFinancialYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	fy, err := h.financialYearService.CreateFinancialYear(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create financial year")
		return
	}

	logger.Info("Financial year created successfully", slog.String("financial_year_id", fy.FinancialYearID))
	c.JSON(http.StatusCreated, dto.ToFinancialYearResponse(fy))
}

// listFinancialYears godoc
// @Summary List financial years
// @Tags financial-years
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {array} dto.FinancialYearResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/financial-years [get]
func (h *financialYearHandler) listFinancialYears(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}

	years, err := h.financialYearService.ListFinancialYears(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to list financial years")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialYearResponses(years))
}

// getActiveFinancialYear godoc
// @Summary Get the active financial year
// @Tags financial-years
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 404 {object} ErrorResponse "No active financial year"
// @Security BearerAuth
// @Router /businesses/{business_id}/financial-years/active [get]
func (h *financialYearHandler) getActiveFinancialYear(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}

	fy, err := h.financialYearService.GetActiveFinancialYear(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve active financial year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy))
}

// getFinancialYear godoc
// @Summary Get a financial year
// @Tags financial-years
// @Produce json
// @Param business_id path string true "Business ID"
// @Param financial_year_id path string true "Financial year ID"
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 404 {object} ErrorResponse "Financial year not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/financial-years/{financial_year_id} [get]
func (h *financialYearHandler) getFinancialYear(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	fyID := c.Param("financial_year_id")

	fy, err := h.financialYearService.GetFinancialYear(c.Request.Context(), businessID, fyID)
	if err != nil {
		respondError(c, logger.With(slog.String("financial_year_id", fyID)), err, "Failed to retrieve financial year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy))
}

// activateFinancialYear godoc
// @Summary Activate a financial year
// @Description Makes the year the only active one of the business
// @Tags financial-years
// @Produce json
// @Param business_id path string true "Business ID"
// @Param financial_year_id path string true "Financial year ID"
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 404 {object} ErrorResponse "Financial year not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/financial-years/{financial_year_id}/activate [post]
func (h *financialYearHandler) activateFinancialYear(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	fyID := c.Param("financial_year_id")

	fy, err := h.financialYearService.ActivateFinancialYear(c.Request.Context(), businessID, fyID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("financial_year_id", fyID)), err, "Failed to activate financial year")
		return
	}

	logger.Info("Financial year activated successfully", slog.String("financial_year_id", fyID))
	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy))
}
