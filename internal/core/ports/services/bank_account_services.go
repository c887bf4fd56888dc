package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// BankAccountReaderSvc defines read operations for bank accounts
type BankAccountReaderSvc interface {
	GetBankAccount(ctx context.Context, businessID string, bankAccountID string) (*domain.BankAccountWithBalance, error)
	ListBankAccounts(ctx context.Context, businessID string) ([]domain.BankAccountWithBalance, error)
}

// BankAccountWriterSvc defines write operations for bank accounts
type BankAccountWriterSvc interface {
	// CreateBankAccount wraps an ASSET account that no other bank account wraps.
	CreateBankAccount(ctx context.Context, businessID string, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccountWithBalance, error)
}

// BankTransactionSvc generates posted journal entries for bank movements.
type BankTransactionSvc interface {
	Deposit(ctx context.Context, businessID string, bankAccountID string, req dto.BankTransactionRequest, userID string) (*domain.JournalEntry, error)
	Withdraw(ctx context.Context, businessID string, bankAccountID string, req dto.BankTransactionRequest, userID string) (*domain.JournalEntry, error)
	Transfer(ctx context.Context, businessID string, req dto.TransferRequest, userID string) (*domain.JournalEntry, error)

	// Reconcile posts the difference between a statement balance and the ledger
	// balance on the statement date. No entry is created when they agree.
	Reconcile(ctx context.Context, businessID string, bankAccountID string, req dto.ReconcileRequest, userID string) (*domain.ReconciliationResult, error)
}

// BankAccountSvcFacade combines all bank-account service interfaces
type BankAccountSvcFacade interface {
	BankAccountReaderSvc
	BankAccountWriterSvc
	BankTransactionSvc
}
