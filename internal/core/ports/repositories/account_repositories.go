package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// AccountCategoryRepository defines operations for account categories.
type AccountCategoryRepository interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.AccountCategory) error

	// FindCategoryByID retrieves a category owned by the business.
	FindCategoryByID(ctx context.Context, businessID, categoryID string) (*domain.AccountCategory, error)

	// ListCategories retrieves every category of the business.
	ListCategories(ctx context.Context, businessID string) ([]domain.AccountCategory, error)
}

// AccountFilter narrows ListAccounts. Zero Limit means no limit.
type AccountFilter struct {
	CategoryType *domain.AccountCategoryType
	ActiveOnly   bool
	Limit        int
	Offset       int
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account owned by the business.
	FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves the business's accounts among accountIDs. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts ordered by code.
	ListAccounts(ctx context.Context, businessID string, filter AccountFilter) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A code already used in the business yields ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates name, description, active flag and audit fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, businessID, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountCategoryRepository
	AccountReader
	AccountWriter
}
