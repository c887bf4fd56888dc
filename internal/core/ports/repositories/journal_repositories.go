package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// JournalListFilter narrows ListEntries.
type JournalListFilter struct {
	Status    *domain.JournalStatus
	Limit     int
	NextToken *string
}

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindEntryByID retrieves an entry with its items.
	FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error)

	// FindEntryByIDForUpdate is FindEntryByID that also locks the entry until the transaction ends.
	FindEntryByIDForUpdate(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries newest first using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, businessID string, filter JournalListFilter) ([]domain.JournalEntry, *string, error)

	// ReferenceExists reports whether the business already uses a reference number.
	ReferenceExists(ctx context.Context, businessID, referenceNumber string) (bool, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveEntry persists an entry together with its items.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntryStatus changes only the status and update stamps.
	UpdateEntryStatus(ctx context.Context, businessID, entryID string, status domain.JournalStatus, userID string, now time.Time) error

	// DeleteEntry removes an entry and its items.
	DeleteEntry(ctx context.Context, businessID, entryID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// LedgerReader aggregates items of POSTED entries. Draft and cancelled entries never count.
type LedgerReader interface {
	// SumPostedItems totals one account's debit and credit items, up to asOf inclusive when given.
	SumPostedItems(ctx context.Context, businessID, accountID string, asOf *time.Time) (debit, credit domain.Money, err error)

	// AccountTotals totals every account of the business with entry dates in [from, to]; nil bounds are open.
	// Accounts without posted items are included with zero totals.
	AccountTotals(ctx context.Context, businessID string, from, to *time.Time) ([]domain.AccountTotals, error)

	// ListPostedLines lists one account's posted items in date order within [from, to].
	ListPostedLines(ctx context.Context, businessID, accountID string, from, to *time.Time) ([]domain.PostedLine, error)

	// AccountHasItems reports whether any entry in any status references the account.
	AccountHasItems(ctx context.Context, businessID, accountID string) (bool, error)
}
