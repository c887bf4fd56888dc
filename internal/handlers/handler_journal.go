package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// RegisterJournalRoutes registers the journal entry lifecycle routes under a business group.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:entry_id", h.getJournal)
		journals.DELETE("/:entry_id", h.deleteJournal)
		journals.POST("/:entry_id/post", h.postJournal)
		journals.POST("/:entry_id/cancel", h.cancelJournal)
	}
}

// createJournal godoc
// @Summary Create a draft journal entry
// @Description Creates a DRAFT entry with its items. The reference number is generated when omitted and the active financial year is used when none is given.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   journal body dto.CreateJournalRequest true "Journal entry"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse "Invalid request or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account or financial year not found"
// @Failure 409 {object} ErrorResponse "Reference number already used"
// @Failure 500 {object} ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Router /businesses/{business_id}/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.CreateJournal(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

// getJournal godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry with its items
// @Tags journals
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   entry_id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /businesses/{business_id}/journals/{entry_id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	entryID := c.Param("entry_id")

	entry, err := h.journalService.GetJournal(c.Request.Context(), businessID, entryID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(entry))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists entries newest first with token-based pagination
// @Tags journals
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   status query string false "DRAFT, POSTED or CANCELLED"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /businesses/{business_id}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, nextToken, err := h.journalService.ListJournals(c.Request.Context(), businessID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}

	logger.Info("Journal entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListJournalsResponse(entries, nextToken))
}

// postJournal godoc
// @Summary Post a journal entry
// @Description Moves a balanced DRAFT entry to POSTED so it counts toward balances
// @Tags journals
// @Produce json
// @Param business_id path string true "Business ID"
// @Param entry_id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 409 {object} ErrorResponse "Entry is not a draft"
// @Failure 422 {object} ErrorResponse "Debits and credits differ"
// @Security BearerAuth
// @Router /businesses/{business_id}/journals/{entry_id}/post [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	entryID := c.Param("entry_id")

	entry, err := h.journalService.PostJournal(c.Request.Context(), businessID, entryID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to post journal entry")
		return
	}

	logger.Info("Journal entry posted successfully", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(entry))
}

// cancelJournal godoc
// @Summary Cancel a journal entry
// @Description Moves a POSTED entry to CANCELLED. Its items stop counting toward balances.
// @Tags journals
// @Produce json
// @Param business_id path string true "Business ID"
// @Param entry_id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 409 {object} ErrorResponse "Entry is not posted"
// @Security BearerAuth
// @Router /businesses/{business_id}/journals/{entry_id}/cancel [post]
func (h *journalHandler) cancelJournal(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	entryID := c.Param("entry_id")

	entry, err := h.journalService.CancelJournal(c.Request.Context(), businessID, entryID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to cancel journal entry")
		return
	}

	logger.Info("Journal entry cancelled successfully", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(entry))
}

// deleteJournal godoc
// @Summary Delete a draft journal entry
// @Tags journals
// @Param business_id path string true "Business ID"
// @Param entry_id path string true "Journal entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 409 {object} ErrorResponse "Entry is not a draft"
// @Security BearerAuth
// @Router /businesses/{business_id}/journals/{entry_id} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	entryID := c.Param("entry_id")

	if err := h.journalService.DeleteJournal(c.Request.Context(), businessID, entryID); err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to delete journal entry")
		return
	}

	logger.Info("Journal entry deleted successfully", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
