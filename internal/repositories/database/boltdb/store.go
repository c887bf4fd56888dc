// Package boltdb is the embedded storage driver. Records are JSON documents
// keyed by "<businessID>/<id>", so a business's rows form one contiguous key
// range and a lookup under another business simply finds nothing.
package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	bolt "go.etcd.io/bbolt"
)

// Bucket names.
const (
	bucketBusinesses        = "businesses"
	bucketSequences         = "document_sequences"
	bucketCategories        = "account_categories"
	bucketAccounts          = "accounts"
	bucketAccountCodes      = "account_codes"
	bucketFinancialYears    = "financial_years"
	bucketJournalEntries    = "journal_entries"
	bucketJournalReferences = "journal_references"
	bucketBankAccounts      = "bank_accounts"
	bucketBankAccountLinks  = "bank_account_links"
)

var allBuckets = []string{
	bucketBusinesses,
	bucketSequences,
	bucketCategories,
	bucketAccounts,
	bucketAccountCodes,
	bucketFinancialYears,
	bucketJournalEntries,
	bucketJournalReferences,
	bucketBankAccounts,
	bucketBankAccountLinks,
}

// EnsureBuckets creates any missing bucket. It is safe to call on every start.
func EnsureBuckets(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// bizKey scopes id to a business.
func bizKey(businessID, id string) []byte {
	return []byte(businessID + "/" + id)
}

func bucket(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, apperrors.NewInternalError("storage not initialised", fmt.Errorf("bucket %s not found", name))
	}
	return b, nil
}

// getJSON decodes the value at key into v and reports whether it existed.
func getJSON(b *bolt.Bucket, key []byte, v any) (bool, error) {
	data := b.Get(key)
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, apperrors.NewInternalError(fmt.Sprintf("failed to decode record %s", key), err)
	}
	return true, nil
}

func putJSON(b *bolt.Bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to encode record %s", key), err)
	}
	if err := b.Put(key, data); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to write record %s", key), err)
	}
	return nil
}

// forEachInBusiness walks every value stored under the business's key prefix.
// Values are only valid until fn returns.
func forEachInBusiness(b *bolt.Bucket, businessID string, fn func(v []byte) error) error {
	prefix := []byte(businessID + "/")
	c := b.Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// decodeAll collects every record of the business in bucket name.
func decodeAll[T any](tx *bolt.Tx, name, businessID string) ([]T, error) {
	b, err := bucket(tx, name)
	if err != nil {
		return nil, err
	}
	result := []T{}
	err = forEachInBusiness(b, businessID, func(v []byte) error {
		var m T
		if err := json.Unmarshal(v, &m); err != nil {
			return apperrors.NewInternalError("failed to decode record in "+name, err)
		}
		result = append(result, m)
		return nil
	})
	return result, err
}

type txKey struct{}

// BaseRepository provides common functionality for all repositories. A
// repository bound to a transaction uses it; otherwise it joins a
// transaction carried by ctx, and only then opens its own.
type BaseRepository struct {
	db *bolt.DB
	tx *bolt.Tx
}

func (r *BaseRepository) current(ctx context.Context) *bolt.Tx {
	if r.tx != nil {
		return r.tx
	}
	if tx, ok := ctx.Value(txKey{}).(*bolt.Tx); ok {
		return tx
	}
	return nil
}

func (r *BaseRepository) view(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	if tx := r.current(ctx); tx != nil {
		return fn(tx)
	}
	return r.db.View(fn)
}

func (r *BaseRepository) update(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	if tx := r.current(ctx); tx != nil {
		if !tx.Writable() {
			return apperrors.NewInternalError("write attempted in a read-only transaction", nil)
		}
		return fn(tx)
	}
	return r.db.Update(fn)
}

// NewRepositoryProvider binds every repository to db. Inside WithTx the
// provider handed to the unit of work is bound to the open transaction instead.
func NewRepositoryProvider(db *bolt.DB) portsrepo.RepositoryProvider {
	return newProvider(BaseRepository{db: db})
}

func newProvider(base BaseRepository) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BusinessRepo:      &BoltBusinessRepository{BaseRepository: base},
		AccountRepo:       &BoltAccountRepository{BaseRepository: base},
		FinancialYearRepo: &BoltFinancialYearRepository{BaseRepository: base},
		JournalRepo:       &BoltJournalRepository{BaseRepository: base},
		LedgerRepo:        &BoltLedgerRepository{BaseRepository: base},
		BankAccountRepo:   &BoltBankAccountRepository{BaseRepository: base},
	}
}

// BoltTransactionManager implements portsrepo.TransactionManager. bbolt allows
// a single writer, so every unit of work is serialised and row locks are implicit.
type BoltTransactionManager struct {
	db *bolt.DB
}

var _ portsrepo.TransactionManager = (*BoltTransactionManager)(nil)

// NewTransactionManager creates a transaction manager for db.
func NewTransactionManager(db *bolt.DB) *BoltTransactionManager {
	return &BoltTransactionManager{db: db}
}

// WithTx implements portsrepo.TransactionManager.
func (m *BoltTransactionManager) WithTx(ctx context.Context, fn portsrepo.TxFunc) error {
	if tx, ok := ctx.Value(txKey{}).(*bolt.Tx); ok && tx.Writable() {
		return fn(ctx, newProvider(BaseRepository{db: m.db, tx: tx}))
	}
	return m.db.Update(func(tx *bolt.Tx) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx, newProvider(BaseRepository{db: m.db, tx: tx}))
	})
}
