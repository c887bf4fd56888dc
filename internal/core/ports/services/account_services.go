package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// AccountCategorySvc defines operations for account categories
type AccountCategorySvc interface {
	// CreateCategory persists a new category. Its type can never change afterwards.
	CreateCategory(ctx context.Context, businessID string, req dto.CreateCategoryRequest, userID string) (*domain.AccountCategory, error)

	// ListCategories retrieves every category of the business.
	ListCategories(ctx context.Context, businessID string) ([]domain.AccountCategory, error)
}

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an account of the business.
	GetAccount(ctx context.Context, businessID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves accounts ordered by code.
	ListAccounts(ctx context.Context, businessID string, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new active account under a category.
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an account's name and description.
	UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount stops the account from accepting new journal items.
	DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error)

	// ActivateAccount reverses DeactivateAccount.
	ActivateAccount(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error)

	// DeleteAccount removes an account no journal item has ever referenced.
	DeleteAccount(ctx context.Context, businessID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountCategorySvc
	AccountReaderSvc
	AccountWriterSvc
}
