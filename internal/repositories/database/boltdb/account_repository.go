package boltdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

// BoltAccountRepository stores account categories and the chart of accounts.
// The account_codes bucket maps "<businessID>/<code>" to the account id.
type BoltAccountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepositoryFacade = (*BoltAccountRepository)(nil)

// SaveCategory inserts a new account category.
func (r *BoltAccountRepository) SaveCategory(ctx context.Context, category domain.AccountCategory) error {
	m := mapping.ToModelAccountCategory(category)
	return r.update(ctx, func(tx *bolt.Tx) error {
		if _, err := loadBusiness(tx, m.BusinessID); err != nil {
			return fmt.Errorf("%w: business %s does not exist", apperrors.ErrInvalidState, m.BusinessID)
		}
		b, err := bucket(tx, bucketCategories)
		if err != nil {
			return err
		}
		key := bizKey(m.BusinessID, m.CategoryID)
		if b.Get(key) != nil {
			return fmt.Errorf("%w: account category %s", apperrors.ErrDuplicate, m.CategoryID)
		}
		return putJSON(b, key, m)
	})
}

func loadCategory(tx *bolt.Tx, businessID, categoryID string) (*models.AccountCategory, error) {
	b, err := bucket(tx, bucketCategories)
	if err != nil {
		return nil, err
	}
	var m models.AccountCategory
	found, err := getJSON(b, bizKey(businessID, categoryID), &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("account category", categoryID)
	}
	return &m, nil
}

// FindCategoryByID retrieves a category owned by the business.
func (r *BoltAccountRepository) FindCategoryByID(ctx context.Context, businessID, categoryID string) (*domain.AccountCategory, error) {
	var result *domain.AccountCategory
	err := r.view(ctx, func(tx *bolt.Tx) error {
		m, err := loadCategory(tx, businessID, categoryID)
		if err != nil {
			return err
		}
		c := mapping.ToDomainAccountCategory(*m)
		result = &c
		return nil
	})
	return result, err
}

// ListCategories retrieves every category of the business ordered by type then name.
func (r *BoltAccountRepository) ListCategories(ctx context.Context, businessID string) ([]domain.AccountCategory, error) {
	var ms []models.AccountCategory
	err := r.view(ctx, func(tx *bolt.Tx) error {
		var err error
		ms, err = decodeAll[models.AccountCategory](tx, bucketCategories, businessID)
		return err
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].CategoryType != ms[j].CategoryType {
			return ms[i].CategoryType < ms[j].CategoryType
		}
		return ms[i].Name < ms[j].Name
	})

	categories := make([]domain.AccountCategory, len(ms))
	for i, m := range ms {
		categories[i] = mapping.ToDomainAccountCategory(m)
	}
	return categories, nil
}

// SaveAccount inserts a new account. A duplicate code within the business yields ErrDuplicate.
func (r *BoltAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	return r.update(ctx, func(tx *bolt.Tx) error {
		if _, err := loadCategory(tx, m.BusinessID, m.CategoryID); err != nil {
			return fmt.Errorf("%w: account category %s does not exist", apperrors.ErrInvalidState, m.CategoryID)
		}
		codes, err := bucket(tx, bucketAccountCodes)
		if err != nil {
			return err
		}
		codeKey := bizKey(m.BusinessID, m.Code)
		if codes.Get(codeKey) != nil {
			return fmt.Errorf("%w: account with code %s", apperrors.ErrDuplicate, m.Code)
		}
		accounts, err := bucket(tx, bucketAccounts)
		if err != nil {
			return err
		}
		key := bizKey(m.BusinessID, m.AccountID)
		if accounts.Get(key) != nil {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, m.AccountID)
		}
		if err := codes.Put(codeKey, []byte(m.AccountID)); err != nil {
			return apperrors.NewInternalError("failed to index account code "+m.Code, err)
		}
		return putJSON(accounts, key, m)
	})
}

func loadAccount(tx *bolt.Tx, businessID, accountID string) (*models.Account, error) {
	b, err := bucket(tx, bucketAccounts)
	if err != nil {
		return nil, err
	}
	var m models.Account
	found, err := getJSON(b, bizKey(businessID, accountID), &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return &m, nil
}

// FindAccountByID retrieves an account owned by the business.
func (r *BoltAccountRepository) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	var result *domain.Account
	err := r.view(ctx, func(tx *bolt.Tx) error {
		m, err := loadAccount(tx, businessID, accountID)
		if err != nil {
			return err
		}
		a := mapping.ToDomainAccount(*m)
		result = &a
		return nil
	})
	return result, err
}

// FindAccountsByIDs retrieves the business's accounts among accountIDs.
func (r *BoltAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	err := r.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketAccounts)
		if err != nil {
			return err
		}
		for _, id := range accountIDs {
			var m models.Account
			found, err := getJSON(b, bizKey(businessID, id), &m)
			if err != nil {
				return err
			}
			if found {
				result[id] = mapping.ToDomainAccount(m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListAccounts retrieves accounts ordered by code.
func (r *BoltAccountRepository) ListAccounts(ctx context.Context, businessID string, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	var ms []models.Account
	err := r.view(ctx, func(tx *bolt.Tx) error {
		var err error
		ms, err = decodeAll[models.Account](tx, bucketAccounts, businessID)
		return err
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].Code < ms[j].Code })

	accounts := []domain.Account{}
	for _, m := range ms {
		if filter.CategoryType != nil && m.CategoryType != string(*filter.CategoryType) {
			continue
		}
		if filter.ActiveOnly && !m.IsActive {
			continue
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(accounts) {
			return []domain.Account{}, nil
		}
		accounts = accounts[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(accounts) {
		accounts = accounts[:filter.Limit]
	}
	return accounts, nil
}

// UpdateAccount updates the mutable fields of an account.
func (r *BoltAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return r.update(ctx, func(tx *bolt.Tx) error {
		m, err := loadAccount(tx, account.BusinessID, account.AccountID)
		if err != nil {
			return err
		}
		m.Name = account.Name
		m.Description = account.Description
		m.IsActive = account.IsActive
		m.LastUpdatedAt = account.LastUpdatedAt
		m.LastUpdatedBy = account.LastUpdatedBy

		b, err := bucket(tx, bucketAccounts)
		if err != nil {
			return err
		}
		return putJSON(b, bizKey(m.BusinessID, m.AccountID), m)
	})
}

// DeleteAccount removes an account. Like the SQL foreign keys, it refuses
// while journal items, a bank account or the suspense setting reference it.
func (r *BoltAccountRepository) DeleteAccount(ctx context.Context, businessID, accountID string) error {
	return r.update(ctx, func(tx *bolt.Tx) error {
		m, err := loadAccount(tx, businessID, accountID)
		if err != nil {
			return err
		}

		used, err := accountHasItems(tx, businessID, accountID)
		if err != nil {
			return err
		}
		if used {
			return fmt.Errorf("%w: account %s is still referenced by journal items", apperrors.ErrInvalidState, accountID)
		}
		links, err := bucket(tx, bucketBankAccountLinks)
		if err != nil {
			return err
		}
		if links.Get(bizKey(businessID, accountID)) != nil {
			return fmt.Errorf("%w: account %s is still referenced by a bank account", apperrors.ErrInvalidState, accountID)
		}
		business, err := loadBusiness(tx, businessID)
		if err != nil {
			return err
		}
		if business.SuspenseAccountID != nil && *business.SuspenseAccountID == accountID {
			return fmt.Errorf("%w: account %s is the suspense account", apperrors.ErrInvalidState, accountID)
		}

		codes, err := bucket(tx, bucketAccountCodes)
		if err != nil {
			return err
		}
		accounts, err := bucket(tx, bucketAccounts)
		if err != nil {
			return err
		}
		if err := codes.Delete(bizKey(businessID, m.Code)); err != nil {
			return apperrors.NewInternalError("failed to drop account code index", err)
		}
		if err := accounts.Delete(bizKey(businessID, accountID)); err != nil {
			return apperrors.NewInternalError("failed to delete account "+accountID, err)
		}
		return nil
	})
}
