package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// BankAccountReader defines read operations for bank accounts
type BankAccountReader interface {
	FindBankAccountByID(ctx context.Context, businessID, bankAccountID string) (*domain.BankAccount, error)
	FindBankAccountByAccountID(ctx context.Context, businessID, accountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, businessID string) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank accounts
type BankAccountWriter interface {
	SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error
	UpdateBankAccount(ctx context.Context, bankAccount domain.BankAccount) error
}

// BankAccountRepositoryFacade combines all bank-account repository interfaces
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
