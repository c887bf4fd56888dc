package boltdb

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	bolt "go.etcd.io/bbolt"
)

// BoltLedgerRepository aggregates posted journal items by scanning the
// business's entries. It never writes.
type BoltLedgerRepository struct {
	BaseRepository
}

var _ portsrepo.LedgerReader = (*BoltLedgerRepository)(nil)

func inRange(date time.Time, from, to *time.Time) bool {
	d := domain.DateOnly(date)
	if from != nil && d.Before(domain.DateOnly(*from)) {
		return false
	}
	if to != nil && d.After(domain.DateOnly(*to)) {
		return false
	}
	return true
}

// postedEntries returns the business's POSTED entries dated within [from, to].
func postedEntries(tx *bolt.Tx, businessID string, from, to *time.Time) ([]models.JournalEntry, error) {
	b, err := bucket(tx, bucketJournalEntries)
	if err != nil {
		return nil, err
	}
	result := []models.JournalEntry{}
	err = forEachInBusiness(b, businessID, func(v []byte) error {
		var m models.JournalEntry
		if err := json.Unmarshal(v, &m); err != nil {
			return apperrors.NewInternalError("failed to decode journal entry", err)
		}
		if m.Status == string(domain.StatusPosted) && inRange(m.EntryDate, from, to) {
			result = append(result, m)
		}
		return nil
	})
	return result, err
}

func accountHasItems(tx *bolt.Tx, businessID, accountID string) (bool, error) {
	entries, err := decodeAll[models.JournalEntry](tx, bucketJournalEntries, businessID)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		for _, it := range e.Items {
			if it.AccountID == accountID {
				return true, nil
			}
		}
	}
	return false, nil
}

// SumPostedItems totals an account's posted debits and credits up to asOf.
func (r *BoltLedgerRepository) SumPostedItems(ctx context.Context, businessID, accountID string, asOf *time.Time) (domain.Money, domain.Money, error) {
	debit, credit := domain.ZeroMoney(), domain.ZeroMoney()
	err := r.view(ctx, func(tx *bolt.Tx) error {
		entries, err := postedEntries(tx, businessID, nil, asOf)
		if err != nil {
			return err
		}
		for _, e := range entries {
			for _, it := range e.Items {
				if it.AccountID != accountID {
					continue
				}
				if it.ItemType == string(domain.Debit) {
					debit = debit.Add(domain.NewMoney(it.Amount))
				} else {
					credit = credit.Add(domain.NewMoney(it.Amount))
				}
			}
		}
		return nil
	})
	if err != nil {
		return domain.ZeroMoney(), domain.ZeroMoney(), err
	}
	return debit, credit, nil
}

// AccountTotals returns one row per account of the business ordered by code,
// including accounts with no posted items in range.
func (r *BoltLedgerRepository) AccountTotals(ctx context.Context, businessID string, from, to *time.Time) ([]domain.AccountTotals, error) {
	var result []domain.AccountTotals
	err := r.view(ctx, func(tx *bolt.Tx) error {
		accounts, err := decodeAll[models.Account](tx, bucketAccounts, businessID)
		if err != nil {
			return err
		}
		entries, err := postedEntries(tx, businessID, from, to)
		if err != nil {
			return err
		}

		index := make(map[string]int, len(accounts))
		result = make([]domain.AccountTotals, len(accounts))
		for i, a := range accounts {
			index[a.AccountID] = i
			result[i] = domain.AccountTotals{
				AccountID:    a.AccountID,
				Code:         a.Code,
				Name:         a.Name,
				CategoryType: domain.AccountCategoryType(a.CategoryType),
				Debit:        domain.ZeroMoney(),
				Credit:       domain.ZeroMoney(),
			}
		}
		for _, e := range entries {
			for _, it := range e.Items {
				i, ok := index[it.AccountID]
				if !ok {
					continue
				}
				if it.ItemType == string(domain.Debit) {
					result[i].Debit = result[i].Debit.Add(domain.NewMoney(it.Amount))
				} else {
					result[i].Credit = result[i].Credit.Add(domain.NewMoney(it.Amount))
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

// ListPostedLines lists one account's posted items oldest first.
func (r *BoltLedgerRepository) ListPostedLines(ctx context.Context, businessID, accountID string, from, to *time.Time) ([]domain.PostedLine, error) {
	var entries []models.JournalEntry
	err := r.view(ctx, func(tx *bolt.Tx) error {
		var err error
		entries, err = postedEntries(tx, businessID, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.EntryID < b.EntryID
	})

	lines := []domain.PostedLine{}
	for _, e := range entries {
		for _, it := range e.Items {
			if it.AccountID != accountID {
				continue
			}
			lines = append(lines, domain.PostedLine{
				EntryID:         e.EntryID,
				ReferenceNumber: e.ReferenceNumber,
				EntryDate:       e.EntryDate,
				Narration:       e.Narration,
				CreatedAt:       e.CreatedAt,
				ItemID:          it.ItemID,
				Type:            domain.ItemType(it.ItemType),
				Amount:          domain.NewMoney(it.Amount),
				Description:     it.Description,
			})
		}
	}
	return lines, nil
}

// AccountHasItems reports whether any entry, whatever its status, references the account.
func (r *BoltLedgerRepository) AccountHasItems(ctx context.Context, businessID, accountID string) (bool, error) {
	var used bool
	err := r.view(ctx, func(tx *bolt.Tx) error {
		var err error
		used, err = accountHasItems(tx, businessID, accountID)
		return err
	})
	return used, err
}
