package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/gin-gonic/gin"
)

// bankAccountHandler handles bank accounts and the entries generated from bank movements.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
	businessService    portssvc.BusinessSvcFacade
}

func newBankAccountHandler(bas portssvc.BankAccountSvcFacade, bs portssvc.BusinessSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{bankAccountService: bas, businessService: bs}
}

func registerBankAccountRoutes(rg *gin.RouterGroup, bankAccountService portssvc.BankAccountSvcFacade, businessService portssvc.BusinessSvcFacade) {
	h := newBankAccountHandler(bankAccountService, businessService)

	banks := rg.Group("/bank-accounts")
	{
		banks.POST("", h.createBankAccount)
		banks.GET("", h.listBankAccounts)
		banks.GET("/:bank_account_id", h.getBankAccount)
		banks.POST("/:bank_account_id/deposits", h.deposit)
		banks.POST("/:bank_account_id/withdrawals", h.withdraw)
		banks.POST("/:bank_account_id/reconciliations", h.reconcile)
	}
	rg.POST("/bank-transfers", h.transfer)
}

// settings loads the business's display settings, answering the request itself on failure.
func (h *bankAccountHandler) settings(c *gin.Context, logger *slog.Logger, businessID string) (domain.BusinessSettings, bool) {
	business, err := h.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to load business settings")
		return domain.BusinessSettings{}, false
	}
	return business.Settings, true
}

// createBankAccount godoc
// @Summary Create a bank account
// @Description Wraps an ASSET account of the business with bank details
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param bankAccount body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input or account is not an asset"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Account already wrapped by a bank account"
// @Security BearerAuth
// @Router /businesses/{business_id}/bank-accounts [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	bank, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create bank account")
		return
	}
	settings, ok := h.settings(c, logger, businessID)
	if !ok {
		return
	}

	logger.Info("Bank account created successfully", slog.String("bank_account_id", bank.BankAccountID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(bank, utils.FormatAmount(bank.Balance, settings)))
}

// listBankAccounts godoc
// @Summary List bank accounts with balances
// @Tags bank-accounts
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {array} dto.BankAccountResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/bank-accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}

	banks, err := h.bankAccountService.ListBankAccounts(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger, err, "Failed to list bank accounts")
		return
	}
	settings, ok := h.settings(c, logger, businessID)
	if !ok {
		return
	}

	resp := make([]dto.BankAccountResponse, len(banks))
	for i := range banks {
		resp[i] = dto.ToBankAccountResponse(&banks[i], utils.FormatAmount(banks[i].Balance, settings))
	}
	c.JSON(http.StatusOK, resp)
}

// getBankAccount godoc
// @Summary Get a bank account with its balance
// @Tags bank-accounts
// @Produce json
// @Param business_id path string true "Business ID"
// @Param bank_account_id path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/bank-accounts/{bank_account_id} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger, businessID, _, ok := requestScope(c)
	if !ok {
		return
	}
	bankAccountID := c.Param("bank_account_id")

	bank, err := h.bankAccountService.GetBankAccount(c.Request.Context(), businessID, bankAccountID)
	if err != nil {
		respondError(c, logger.With(slog.String("bank_account_id", bankAccountID)), err, "Failed to retrieve bank account")
		return
	}
	settings, ok := h.settings(c, logger, businessID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(bank, utils.FormatAmount(bank.Balance, settings)))
}

// deposit godoc
// @Summary Deposit into a bank account
// @Description Posts an entry debiting the bank and crediting the counter account
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param deposit body dto.BankTransactionRequest true "Deposit"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Bank or counter account not found"
// @Failure 409 {object} ErrorResponse "Bank account inactive"
// @Security BearerAuth
// @Router /businesses/{business_id}/bank-accounts/{bank_account_id}/deposits [post]
func (h *bankAccountHandler) deposit(c *gin.Context) {
	h.bankMovement(c, h.bankAccountService.Deposit, "deposit")
}

// withdraw godoc
// @Summary Withdraw from a bank account
// @Description Posts an entry debiting the counter account and crediting the bank
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param withdrawal body dto.BankTransactionRequest true "Withdrawal"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Bank or counter account not found"
// @Failure 409 {object} ErrorResponse "Bank account inactive"
// @Security BearerAuth
// @Router /businesses/{business_id}/bank-accounts/{bank_account_id}/withdrawals [post]
func (h *bankAccountHandler) withdraw(c *gin.Context) {
	h.bankMovement(c, h.bankAccountService.Withdraw, "withdrawal")
}

type bankMovementFunc func(ctx context.Context, businessID, bankAccountID string, req dto.BankTransactionRequest, userID string) (*domain.JournalEntry, error)

func (h *bankAccountHandler) bankMovement(c *gin.Context, book bankMovementFunc, kind string) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	bankAccountID := c.Param("bank_account_id")
	logger = logger.With(slog.String("bank_account_id", bankAccountID), slog.String("kind", kind))

	var req dto.BankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bank movement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := book(c.Request.Context(), businessID, bankAccountID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to book bank "+kind)
		return
	}

	logger.Info("Bank movement booked successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

// transfer godoc
// @Summary Transfer between bank accounts
// @Description Posts an entry debiting the destination bank and crediting the source bank
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param transfer body dto.TransferRequest true "Transfer"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse "Invalid input or same source and destination"
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/bank-transfers [post]
func (h *bankAccountHandler) transfer(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.bankAccountService.Transfer(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer between bank accounts")
		return
	}

	logger.Info("Bank transfer booked successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

// reconcile godoc
// @Summary Reconcile a bank account
// @Description Posts the difference between the statement balance and the ledger balance on the statement date
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param bank_account_id path string true "Bank account ID"
// @Param reconciliation body dto.ReconcileRequest true "Statement"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or no adjustment account"
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /businesses/{business_id}/bank-accounts/{bank_account_id}/reconciliations [post]
func (h *bankAccountHandler) reconcile(c *gin.Context) {
	logger, businessID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	bankAccountID := c.Param("bank_account_id")

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.bankAccountService.Reconcile(c.Request.Context(), businessID, bankAccountID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("bank_account_id", bankAccountID)), err, "Failed to reconcile bank account")
		return
	}

	logger.Info("Bank account reconciled successfully",
		slog.String("bank_account_id", bankAccountID), slog.String("adjustment", result.Adjustment.String()))
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(result))
}
