package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CreateBankAccountRequest wraps an existing ASSET account with bank details.
type CreateBankAccountRequest struct {
	AccountID     string `json:"accountID" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	Branch        string `json:"branch"`
}

// BankTransactionRequest is the common body of a deposit or a withdrawal.
// CounterAccountID is the income account credited by a deposit, or the
// expense/destination account debited by a withdrawal.
type BankTransactionRequest struct {
	CounterAccountID string       `json:"counterAccountID" binding:"required"`
	Amount           domain.Money `json:"amount" binding:"money_positive" swaggertype:"string" example:"1000.00"`
	Date             time.Time    `json:"date" binding:"required" swaggertype:"string" format:"date" example:"2024-03-01"`
	Narration        string       `json:"narration" binding:"required"`
	ReferenceNumber  *string      `json:"referenceNumber" binding:"omitempty,max=64"`
}

// TransferRequest moves money between two bank accounts of the business.
type TransferRequest struct {
	FromBankAccountID string       `json:"fromBankAccountID" binding:"required"`
	ToBankAccountID   string       `json:"toBankAccountID" binding:"required"`
	Amount            domain.Money `json:"amount" binding:"money_positive" swaggertype:"string" example:"250.00"`
	Date              time.Time    `json:"date" binding:"required" swaggertype:"string" format:"date" example:"2024-03-01"`
	Narration         string       `json:"narration" binding:"required"`
	ReferenceNumber   *string      `json:"referenceNumber" binding:"omitempty,max=64"`
}

// ReconcileRequest aligns the ledger with a bank statement. AdjustmentAccountID
// defaults to the business's suspense account.
type ReconcileRequest struct {
	StatementDate       time.Time    `json:"statementDate" binding:"required" swaggertype:"string" format:"date" example:"2024-03-31"`
	StatementBalance    domain.Money `json:"statementBalance" swaggertype:"string" example:"5050.00"`
	AdjustmentAccountID *string      `json:"adjustmentAccountID"`
	Narration           string       `json:"narration" binding:"required"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string       `json:"bankAccountID"`
	AccountID     string       `json:"accountID"`
	BankName      string       `json:"bankName"`
	AccountName   string       `json:"accountName"`
	AccountNumber string       `json:"accountNumber"`
	Branch        string       `json:"branch"`
	IsActive      bool         `json:"isActive"`
	Balance       domain.Money `json:"balance" swaggertype:"string"`
	Formatted     string       `json:"formatted"`
	CreatedAt     time.Time    `json:"createdAt"`
	CreatedBy     string       `json:"createdBy"`
}

// ReconciliationResponse reports the outcome of a reconciliation.
// Entry is absent when the ledger already matched the statement.
type ReconciliationResponse struct {
	BankAccountID    string           `json:"bankAccountID"`
	StatementDate    time.Time        `json:"statementDate"`
	StatementBalance domain.Money     `json:"statementBalance" swaggertype:"string"`
	LedgerBalance    domain.Money     `json:"ledgerBalance" swaggertype:"string"`
	Adjustment       domain.Money     `json:"adjustment" swaggertype:"string"`
	Entry            *JournalResponse `json:"entry,omitempty"`
}

// ToBankAccountResponse converts a bank account and its balance. formatted is
// the display form of the balance.
func ToBankAccountResponse(b *domain.BankAccountWithBalance, formatted string) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: b.BankAccountID,
		AccountID:     b.AccountID,
		BankName:      b.BankName,
		AccountName:   b.AccountName,
		AccountNumber: b.AccountNumber,
		Branch:        b.Branch,
		IsActive:      b.IsActive,
		Balance:       b.Balance,
		Formatted:     formatted,
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
	}
}

// ToReconciliationResponse converts a domain.ReconciliationResult.
func ToReconciliationResponse(r *domain.ReconciliationResult) ReconciliationResponse {
	resp := ReconciliationResponse{
		BankAccountID:    r.BankAccountID,
		StatementDate:    r.StatementDate,
		StatementBalance: r.StatementBalance,
		LedgerBalance:    r.LedgerBalance,
		Adjustment:       r.Adjustment,
	}
	if r.Entry != nil {
		entry := ToJournalResponse(r.Entry)
		resp.Entry = &entry
	}
	return resp
}
