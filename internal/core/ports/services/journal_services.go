package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournal retrieves an entry with its items.
	GetJournal(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error)

	// ListJournals retrieves a page of entries, newest first, and the token of the next page.
	ListJournals(ctx context.Context, businessID string, params dto.ListJournalsParams) ([]domain.JournalEntry, *string, error)
}

// JournalWriterSvc defines the journal entry lifecycle
type JournalWriterSvc interface {
	// CreateJournal persists a new DRAFT entry with its items.
	CreateJournal(ctx context.Context, businessID string, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error)

	// PostJournal moves a balanced DRAFT entry to POSTED.
	PostJournal(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error)

	// CancelJournal moves a POSTED entry to CANCELLED.
	CancelJournal(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error)

	// DeleteJournal removes a DRAFT entry and its items.
	DeleteJournal(ctx context.Context, businessID string, entryID string) error
}

// JournalPosterSvc is used by workflows that generate entries on the user's behalf.
type JournalPosterSvc interface {
	// CreateAndPostJournal creates an entry from req and posts it in one
	// transaction, tagging it with source. A transaction carried by ctx is joined.
	CreateAndPostJournal(ctx context.Context, businessID string, req dto.CreateJournalRequest, source domain.EntrySource, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalPosterSvc
}
