package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves balances and statements computed from posted items.
type ledgerHandler struct {
	ledgerService   portssvc.LedgerSvc
	businessService portssvc.BusinessSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvc, bs portssvc.BusinessSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, businessService: bs}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc, businessService portssvc.BusinessSvcFacade) {
	h := newLedgerHandler(ledgerService, businessService)

	accounts := rg.Group("/accounts/:account_id")
	{
		accounts.GET("/balance", h.getBalance)
		accounts.GET("/statement", h.getStatement)
	}
}

// getBalance godoc
// @Summary Get an account balance
// @Description Computes the balance from posted journal items, optionally as of a date
// @Tags ledger
// @Produce json
// @Param business_id path string true "Business ID"
// @Param account_id path string true "Account ID"
// @Param asOf query string false "Balance date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	var params dto.ReportDateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid balance query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	asOf, _ := dto.ParseReportDate(params.AsOf)

	balance, err := h.ledgerService.BalanceOf(c.Request.Context(), businessID, accountID, asOf)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to compute balance")
		return
	}
	business, err := h.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to load business settings")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		AsOf:      asOf,
		Balance:   balance,
		Formatted: utils.FormatAmount(balance, business.Settings),
	})
}

// getStatement godoc
// @Summary Get an account statement
// @Description Lists posted lines within a date range with opening, running and closing balances
// @Tags ledger
// @Produce json
// @Param business_id path string true "Business ID"
// @Param account_id path string true "Account ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountStatementResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/statement [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	var params dto.ReportDateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	from, _ := dto.ParseReportDate(params.From)
	to, _ := dto.ParseReportDate(params.To)
	if from != nil && to != nil && from.After(*to) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from must be before or equal to to"})
		return
	}

	statement, err := h.ledgerService.AccountStatement(c.Request.Context(), businessID, accountID, from, to)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to build account statement")
		return
	}
	business, err := h.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to load business settings")
		return
	}

	logger.Info("Account statement generated", slog.String("account_id", accountID), slog.Int("lines", len(statement.Lines)))
	c.JSON(http.StatusOK, dto.ToAccountStatementResponse(statement, utils.FormatAmount(statement.ClosingBalance, business.Settings)))
}
