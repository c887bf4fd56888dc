package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
)

// PgxAccountRepository stores account categories and the chart of accounts.
type PgxAccountRepository struct {
	BaseRepository
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const categoryColumns = `category_id, business_id, name, category_type, description,
	created_at, created_by, last_updated_at, last_updated_by`

const accountColumns = `account_id, business_id, category_id, category_type, code, name, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row rowScanner) (models.AccountCategory, error) {
	var m models.AccountCategory
	err := row.Scan(&m.CategoryID, &m.BusinessID, &m.Name, &m.CategoryType, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func scanAccount(row rowScanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(&m.AccountID, &m.BusinessID, &m.CategoryID, &m.CategoryType, &m.Code, &m.Name,
		&m.Description, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// SaveCategory inserts a new account category.
func (r *PgxAccountRepository) SaveCategory(ctx context.Context, category domain.AccountCategory) error {
	m := mapping.ToModelAccountCategory(category)
	query := `INSERT INTO account_categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.DB.Exec(ctx, query, m.CategoryID, m.BusinessID, m.Name, m.CategoryType, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapError(err, "failed to save account category %s", m.CategoryID)
}

// FindCategoryByID retrieves a category owned by the business.
func (r *PgxAccountRepository) FindCategoryByID(ctx context.Context, businessID, categoryID string) (*domain.AccountCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM account_categories WHERE business_id = $1 AND category_id = $2;`
	m, err := scanCategory(r.DB.QueryRow(ctx, query, businessID, categoryID))
	if err != nil {
		return nil, mapError(err, "account category %s", categoryID)
	}
	c := mapping.ToDomainAccountCategory(m)
	return &c, nil
}

// ListCategories retrieves every category of the business ordered by type then name.
func (r *PgxAccountRepository) ListCategories(ctx context.Context, businessID string) ([]domain.AccountCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM account_categories WHERE business_id = $1 ORDER BY category_type, name;`
	rows, err := r.DB.Query(ctx, query, businessID)
	if err != nil {
		return nil, mapError(err, "failed to list account categories for business %s", businessID)
	}
	defer rows.Close()

	categories := []domain.AccountCategory{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan account category")
		}
		categories = append(categories, mapping.ToDomainAccountCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating account categories")
	}
	return categories, nil
}

// SaveAccount inserts a new account. A duplicate code within the business yields ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := r.DB.Exec(ctx, query, m.AccountID, m.BusinessID, m.CategoryID, m.CategoryType, m.Code, m.Name,
		m.Description, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapError(err, "account with code %s", m.Code)
}

// FindAccountByID retrieves an account owned by the business.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 AND account_id = $2;`
	m, err := scanAccount(r.DB.QueryRow(ctx, query, businessID, accountID))
	if err != nil {
		return nil, mapError(err, "account %s", accountID)
	}
	a := mapping.ToDomainAccount(m)
	return &a, nil
}

// FindAccountsByIDs retrieves the business's accounts among accountIDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 AND account_id = ANY($2);`
	rows, err := r.DB.Query(ctx, query, businessID, accountIDs)
	if err != nil {
		return nil, mapError(err, "failed to query accounts by IDs")
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan account")
		}
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating accounts")
	}
	return result, nil
}

// ListAccounts retrieves accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, businessID string, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1`)
	args := []any{businessID}

	if filter.CategoryType != nil {
		args = append(args, string(*filter.CategoryType))
		sb.WriteString(" AND category_type = $" + strconv.Itoa(len(args)))
	}
	if filter.ActiveOnly {
		sb.WriteString(" AND is_active")
	}
	sb.WriteString(" ORDER BY code")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
	}

	rows, err := r.DB.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, mapError(err, "failed to list accounts for business %s", businessID)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan account")
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating accounts")
	}
	return accounts, nil
}

// UpdateAccount updates the mutable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $3, description = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE business_id = $1 AND account_id = $2;
	`
	tag, err := r.DB.Exec(ctx, query, m.BusinessID, m.AccountID, m.Name, m.Description, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update account %s", m.AccountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account", m.AccountID)
	}
	return nil
}

// DeleteAccount removes an account. Journal items referencing it make the
// foreign key refuse, which surfaces as ErrInvalidState.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, businessID, accountID string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM accounts WHERE business_id = $1 AND account_id = $2;`, businessID, accountID)
	if err != nil {
		return mapError(err, "account %s", accountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
