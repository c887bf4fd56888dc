package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
)

// PgxBankAccountRepository stores bank account metadata.
type PgxBankAccountRepository struct {
	BaseRepository
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

const bankAccountColumns = `bank_account_id, business_id, account_id, bank_name, account_name, account_number, branch, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBankAccount(row rowScanner) (models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(&m.BankAccountID, &m.BusinessID, &m.AccountID, &m.BankName, &m.AccountName, &m.AccountNumber,
		&m.Branch, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// SaveBankAccount inserts a bank account. Wrapping an account twice yields ErrDuplicate.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error {
	m := mapping.ToModelBankAccount(bankAccount)
	query := `INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := r.DB.Exec(ctx, query, m.BankAccountID, m.BusinessID, m.AccountID, m.BankName, m.AccountName,
		m.AccountNumber, m.Branch, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapError(err, "bank account for account %s", m.AccountID)
}

func (r *PgxBankAccountRepository) findOne(ctx context.Context, where string, args ...any) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE ` + where + `;`
	m, err := scanBankAccount(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	b := mapping.ToDomainBankAccount(m)
	return &b, nil
}

// FindBankAccountByID retrieves a bank account owned by the business.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, businessID, bankAccountID string) (*domain.BankAccount, error) {
	b, err := r.findOne(ctx, "business_id = $1 AND bank_account_id = $2", businessID, bankAccountID)
	if err != nil {
		return nil, mapError(err, "bank account %s", bankAccountID)
	}
	return b, nil
}

// FindBankAccountByAccountID retrieves the bank account wrapping a chart-of-accounts entry.
func (r *PgxBankAccountRepository) FindBankAccountByAccountID(ctx context.Context, businessID, accountID string) (*domain.BankAccount, error) {
	b, err := r.findOne(ctx, "business_id = $1 AND account_id = $2", businessID, accountID)
	if err != nil {
		return nil, mapError(err, "bank account for account %s", accountID)
	}
	return b, nil
}

// ListBankAccounts retrieves the business's bank accounts by bank then account name.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context, businessID string) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE business_id = $1 ORDER BY bank_name, account_name;`
	rows, err := r.DB.Query(ctx, query, businessID)
	if err != nil {
		return nil, mapError(err, "failed to list bank accounts for business %s", businessID)
	}
	defer rows.Close()

	result := []domain.BankAccount{}
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan bank account")
		}
		result = append(result, mapping.ToDomainBankAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating bank accounts")
	}
	return result, nil
}

// UpdateBankAccount updates bank metadata and the active flag.
func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, bankAccount domain.BankAccount) error {
	m := mapping.ToModelBankAccount(bankAccount)
	query := `
		UPDATE bank_accounts
		SET bank_name = $3, account_name = $4, account_number = $5, branch = $6, is_active = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE business_id = $1 AND bank_account_id = $2;
	`
	tag, err := r.DB.Exec(ctx, query, m.BusinessID, m.BankAccountID, m.BankName, m.AccountName, m.AccountNumber,
		m.Branch, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update bank account %s", m.BankAccountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank account", m.BankAccountID)
	}
	return nil
}
