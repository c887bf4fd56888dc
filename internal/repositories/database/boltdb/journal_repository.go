package boltdb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/SscSPs/bizbooks/internal/utils/pagination"
	bolt "go.etcd.io/bbolt"
)

// BoltJournalRepository stores journal entries with their items embedded.
// The journal_references bucket maps "<businessID>/<reference>" to the entry id.
type BoltJournalRepository struct {
	BaseRepository
}

var _ portsrepo.JournalRepositoryFacade = (*BoltJournalRepository)(nil)

// SaveEntry persists the entry and all items in one write.
func (r *BoltJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	return r.update(ctx, func(tx *bolt.Tx) error {
		years, err := bucket(tx, bucketFinancialYears)
		if err != nil {
			return err
		}
		if years.Get(bizKey(m.BusinessID, m.FinancialYearID)) == nil {
			return fmt.Errorf("%w: financial year %s does not exist", apperrors.ErrInvalidState, m.FinancialYearID)
		}
		accounts, err := bucket(tx, bucketAccounts)
		if err != nil {
			return err
		}
		for _, it := range m.Items {
			if accounts.Get(bizKey(m.BusinessID, it.AccountID)) == nil {
				return fmt.Errorf("%w: account %s does not exist", apperrors.ErrInvalidState, it.AccountID)
			}
			if !it.Amount.IsPositive() {
				return apperrors.NewValidationError("journal item %s must have a positive amount", it.ItemID)
			}
		}

		refs, err := bucket(tx, bucketJournalReferences)
		if err != nil {
			return err
		}
		refKey := bizKey(m.BusinessID, m.ReferenceNumber)
		if refs.Get(refKey) != nil {
			return fmt.Errorf("%w: journal entry with reference %s", apperrors.ErrDuplicate, m.ReferenceNumber)
		}
		entries, err := bucket(tx, bucketJournalEntries)
		if err != nil {
			return err
		}
		key := bizKey(m.BusinessID, m.EntryID)
		if entries.Get(key) != nil {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrDuplicate, m.EntryID)
		}

		if err := refs.Put(refKey, []byte(m.EntryID)); err != nil {
			return apperrors.NewInternalError("failed to index reference "+m.ReferenceNumber, err)
		}
		return putJSON(entries, key, m)
	})
}

func loadEntry(tx *bolt.Tx, businessID, entryID string) (*models.JournalEntry, error) {
	b, err := bucket(tx, bucketJournalEntries)
	if err != nil {
		return nil, err
	}
	var m models.JournalEntry
	found, err := getJSON(b, bizKey(businessID, entryID), &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("journal entry", entryID)
	}
	return &m, nil
}

// FindEntryByID retrieves an entry with its items.
func (r *BoltJournalRepository) FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error) {
	var result *domain.JournalEntry
	err := r.view(ctx, func(tx *bolt.Tx) error {
		m, err := loadEntry(tx, businessID, entryID)
		if err != nil {
			return err
		}
		e := mapping.ToDomainJournalEntry(*m)
		result = &e
		return nil
	})
	return result, err
}

// FindEntryByIDForUpdate retrieves an entry. Inside WithTx the single bbolt
// writer already excludes every other writer.
func (r *BoltJournalRepository) FindEntryByIDForUpdate(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error) {
	return r.FindEntryByID(ctx, businessID, entryID)
}

// ListEntries retrieves entries newest first, ordered like the SQL driver.
func (r *BoltJournalRepository) ListEntries(ctx context.Context, businessID string, filter portsrepo.JournalListFilter) ([]domain.JournalEntry, *string, error) {
	limit := pagination.ClampLimit(filter.Limit)

	var cursor *pagination.Cursor
	if filter.NextToken != nil && *filter.NextToken != "" {
		c, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken: %v", err)
		}
		cursor = &c
	}

	var all []models.JournalEntry
	err := r.view(ctx, func(tx *bolt.Tx) error {
		var err error
		all, err = decodeAll[models.JournalEntry](tx, bucketJournalEntries, businessID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.After(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.EntryID > b.EntryID
	})

	page := make([]models.JournalEntry, 0, limit+1)
	for _, m := range all {
		if filter.Status != nil && m.Status != string(*filter.Status) {
			continue
		}
		if cursor != nil && !cursor.Before(m.EntryDate, m.CreatedAt, m.EntryID) {
			continue
		}
		page = append(page, m)
		if len(page) > limit {
			break
		}
	}

	var nextToken *string
	if len(page) > limit {
		last := page[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		nextToken = &token
		page = page[:limit]
	}

	entries := make([]domain.JournalEntry, len(page))
	for i, m := range page {
		entries[i] = mapping.ToDomainJournalEntry(m)
	}
	return entries, nextToken, nil
}

// ReferenceExists reports whether the reference number is taken in the business.
func (r *BoltJournalRepository) ReferenceExists(ctx context.Context, businessID, referenceNumber string) (bool, error) {
	var exists bool
	err := r.view(ctx, func(tx *bolt.Tx) error {
		refs, err := bucket(tx, bucketJournalReferences)
		if err != nil {
			return err
		}
		exists = refs.Get(bizKey(businessID, referenceNumber)) != nil
		return nil
	})
	return exists, err
}

// UpdateEntryStatus changes only the status and update stamps.
func (r *BoltJournalRepository) UpdateEntryStatus(ctx context.Context, businessID, entryID string, status domain.JournalStatus, userID string, now time.Time) error {
	return r.update(ctx, func(tx *bolt.Tx) error {
		m, err := loadEntry(tx, businessID, entryID)
		if err != nil {
			return err
		}
		m.Status = string(status)
		m.LastUpdatedAt = now
		m.LastUpdatedBy = userID

		b, err := bucket(tx, bucketJournalEntries)
		if err != nil {
			return err
		}
		return putJSON(b, bizKey(businessID, entryID), m)
	})
}

// DeleteEntry removes the entry, its items and its reference.
func (r *BoltJournalRepository) DeleteEntry(ctx context.Context, businessID, entryID string) error {
	return r.update(ctx, func(tx *bolt.Tx) error {
		m, err := loadEntry(tx, businessID, entryID)
		if err != nil {
			return err
		}
		refs, err := bucket(tx, bucketJournalReferences)
		if err != nil {
			return err
		}
		entries, err := bucket(tx, bucketJournalEntries)
		if err != nil {
			return err
		}
		if err := refs.Delete(bizKey(businessID, m.ReferenceNumber)); err != nil {
			return apperrors.NewInternalError("failed to drop reference "+m.ReferenceNumber, err)
		}
		if err := entries.Delete(bizKey(businessID, entryID)); err != nil {
			return apperrors.NewInternalError("failed to delete journal entry "+entryID, err)
		}
		return nil
	})
}
