package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers category and account routes under a business group.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deleteAccount)
		accounts.POST("/:account_id/deactivate", h.deactivateAccount)
		accounts.POST("/:account_id/activate", h.activateAccount)
	}
}

// createCategory godoc
// @Summary Create an account category
// @Description Creates a category. Its type fixes the sign convention of every account under it and cannot be changed.
// @Tags accounts
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /businesses/{business_id}/categories [post]
func (h *accountHandler) createCategory(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.accountService.CreateCategory(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create account category")
		return
	}

	logger.Info("Account category created successfully", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List account categories
// @Tags accounts
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/categories [get]
func (h *accountHandler) listCategories(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}

	categories, err := h.accountService.ListCategories(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to list account categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an active account under a category of the business
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Account code already used"
// @Failure 500 {object} ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create account", slog.String("code", req.Code), slog.String("account_name", req.Name))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account by its ID
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	account, err := h.accountService.GetAccount(c.Request.Context(), businessID, accountID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the business's accounts ordered by code
// @Tags accounts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   categoryType query string false "ASSET, LIABILITY, EQUITY, REVENUE or EXPENSE"
// @Param   activeOnly query bool false "Only active accounts"
// @Param   limit query int false "Limit number of results"
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), businessID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates an account's name or description. Code and category are fixed.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   account_id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), businessID, accountID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to update account")
		return
	}

	logger.Info("Account updated successfully", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Stops the account from accepting new journal items. Existing items keep counting.
// @Tags accounts
// @Produce json
// @Param business_id path string true "Business ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Account already inactive"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/deactivate [post]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	account, err := h.accountService.DeactivateAccount(c.Request.Context(), businessID, accountID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to deactivate account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// activateAccount godoc
// @Summary Reactivate an account
// @Tags accounts
// @Produce json
// @Param business_id path string true "Business ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Account already active"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/activate [post]
func (h *accountHandler) activateAccount(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	account, err := h.accountService.ActivateAccount(c.Request.Context(), businessID, accountID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to activate account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account no journal item has ever referenced
// @Tags accounts
// @Param business_id path string true "Business ID"
// @Param account_id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Account is referenced by journal items"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	if err := h.accountService.DeleteAccount(c.Request.Context(), businessID, accountID); err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to delete account")
		return
	}

	logger.Info("Account deleted successfully", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}
