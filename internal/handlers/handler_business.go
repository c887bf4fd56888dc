package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// businessHandler handles HTTP requests related to businesses and their settings.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

func newBusinessHandler(bs portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{businessService: bs}
}

// registerBusinessRoutes registers the top-level business routes and returns
// the group every tenant-scoped route hangs off.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) *gin.RouterGroup {
	h := newBusinessHandler(businessService)

	rg.POST("/businesses", h.createBusiness)

	business := rg.Group("/businesses/:" + businessIDParam)
	{
		business.GET("", h.getBusiness)
		business.PATCH("/settings", h.updateSettings)
		business.POST("/references/:document_type", h.nextReference)
	}
	return business
}

// createBusiness godoc
// @Summary Create a business
// @Description Creates a new business (tenant) with default settings
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create business"
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create business")
		return
	}

	logger.Info("Business created successfully", slog.String("business_id", business.BusinessID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// getBusiness godoc
// @Summary Get a business
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} ErrorResponse "Business not found"
// @Security BearerAuth
// @Router /businesses/{business_id} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve business")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// updateSettings godoc
// @Summary Update business settings
// @Description Changes document prefixes, display preferences or the suspense account. Omitted fields are kept.
// @Tags businesses
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param settings body dto.UpdateSettingsRequest true "Settings to change"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Business or suspense account not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/settings [patch]
func (h *businessHandler) updateSettings(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.UpdateSettings(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update business settings")
		return
	}

	logger.Info("Business settings updated successfully")
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// nextReference godoc
// @Summary Issue the next reference number
// @Description Advances the business's counter for a document type and returns "{prefix}{n}"
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Param document_type path string true "JOURNAL_ENTRY, INVOICE or PURCHASE_ORDER"
// @Success 200 {object} dto.NextReferenceResponse
// @Failure 400 {object} ErrorResponse "Unknown document type"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/references/{document_type} [post]
func (h *businessHandler) nextReference(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	docType := domain.DocumentType(c.Param("document_type"))

	ref, err := h.businessService.NextReference(c.Request.Context(), businessID, docType)
	if err != nil {
		respondError(c, logger, err, "Failed to issue reference number")
		return
	}

	logger.Info("Reference number issued", slog.String("reference", ref))
	c.JSON(http.StatusOK, dto.NextReferenceResponse{DocumentType: docType, ReferenceNumber: ref})
}
