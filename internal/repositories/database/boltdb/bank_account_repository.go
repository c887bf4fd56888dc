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

// BoltBankAccountRepository stores bank account metadata. The
// bank_account_links bucket maps "<businessID>/<accountID>" to the bank account id.
type BoltBankAccountRepository struct {
	BaseRepository
}

var _ portsrepo.BankAccountRepositoryFacade = (*BoltBankAccountRepository)(nil)

// SaveBankAccount inserts a bank account. Wrapping an account twice yields ErrDuplicate.
func (r *BoltBankAccountRepository) SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error {
	m := mapping.ToModelBankAccount(bankAccount)
	return r.update(ctx, func(tx *bolt.Tx) error {
		if _, err := loadAccount(tx, m.BusinessID, m.AccountID); err != nil {
			return fmt.Errorf("%w: account %s does not exist", apperrors.ErrInvalidState, m.AccountID)
		}
		links, err := bucket(tx, bucketBankAccountLinks)
		if err != nil {
			return err
		}
		linkKey := bizKey(m.BusinessID, m.AccountID)
		if links.Get(linkKey) != nil {
			return fmt.Errorf("%w: bank account for account %s", apperrors.ErrDuplicate, m.AccountID)
		}
		b, err := bucket(tx, bucketBankAccounts)
		if err != nil {
			return err
		}
		if err := links.Put(linkKey, []byte(m.BankAccountID)); err != nil {
			return apperrors.NewInternalError("failed to link bank account "+m.BankAccountID, err)
		}
		return putJSON(b, bizKey(m.BusinessID, m.BankAccountID), m)
	})
}

func loadBankAccount(tx *bolt.Tx, businessID, bankAccountID string) (*models.BankAccount, error) {
	b, err := bucket(tx, bucketBankAccounts)
	if err != nil {
		return nil, err
	}
	var m models.BankAccount
	found, err := getJSON(b, bizKey(businessID, bankAccountID), &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("bank account", bankAccountID)
	}
	return &m, nil
}

// FindBankAccountByID retrieves a bank account owned by the business.
func (r *BoltBankAccountRepository) FindBankAccountByID(ctx context.Context, businessID, bankAccountID string) (*domain.BankAccount, error) {
	var result *domain.BankAccount
	err := r.view(ctx, func(tx *bolt.Tx) error {
		m, err := loadBankAccount(tx, businessID, bankAccountID)
		if err != nil {
			return err
		}
		b := mapping.ToDomainBankAccount(*m)
		result = &b
		return nil
	})
	return result, err
}

// FindBankAccountByAccountID retrieves the bank account wrapping a chart-of-accounts entry.
func (r *BoltBankAccountRepository) FindBankAccountByAccountID(ctx context.Context, businessID, accountID string) (*domain.BankAccount, error) {
	var result *domain.BankAccount
	err := r.view(ctx, func(tx *bolt.Tx) error {
		links, err := bucket(tx, bucketBankAccountLinks)
		if err != nil {
			return err
		}
		id := links.Get(bizKey(businessID, accountID))
		if id == nil {
			return fmt.Errorf("%w: bank account for account %s", apperrors.ErrNotFound, accountID)
		}
		m, err := loadBankAccount(tx, businessID, string(id))
		if err != nil {
			return err
		}
		b := mapping.ToDomainBankAccount(*m)
		result = &b
		return nil
	})
	return result, err
}

// ListBankAccounts retrieves the business's bank accounts by bank then account name.
func (r *BoltBankAccountRepository) ListBankAccounts(ctx context.Context, businessID string) ([]domain.BankAccount, error) {
	var ms []models.BankAccount
	err := r.view(ctx, func(tx *bolt.Tx) error {
		var err error
		ms, err = decodeAll[models.BankAccount](tx, bucketBankAccounts, businessID)
		return err
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].BankName != ms[j].BankName {
			return ms[i].BankName < ms[j].BankName
		}
		return ms[i].AccountName < ms[j].AccountName
	})

	result := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		result[i] = mapping.ToDomainBankAccount(m)
	}
	return result, nil
}

// UpdateBankAccount updates bank metadata and the active flag.
func (r *BoltBankAccountRepository) UpdateBankAccount(ctx context.Context, bankAccount domain.BankAccount) error {
	return r.update(ctx, func(tx *bolt.Tx) error {
		m, err := loadBankAccount(tx, bankAccount.BusinessID, bankAccount.BankAccountID)
		if err != nil {
			return err
		}
		m.BankName = bankAccount.BankName
		m.AccountName = bankAccount.AccountName
		m.AccountNumber = bankAccount.AccountNumber
		m.Branch = bankAccount.Branch
		m.IsActive = bankAccount.IsActive
		m.LastUpdatedAt = bankAccount.LastUpdatedAt
		m.LastUpdatedBy = bankAccount.LastUpdatedBy

		b, err := bucket(tx, bucketBankAccounts)
		if err != nil {
			return err
		}
		return putJSON(b, bizKey(m.BusinessID, m.BankAccountID), m)
	})
}
