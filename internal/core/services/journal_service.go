package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

type journalService struct {
	BaseService
	referenceAttempts int
}

// NewJournalService creates a new JournalService. referenceAttempts bounds how
// many generated reference numbers are tried before giving up, since a manual
// reference may already occupy the next number in the sequence.
func NewJournalService(base BaseService, referenceAttempts int) *journalService {
	if referenceAttempts < 1 {
		referenceAttempts = 1
	}
	return &journalService{BaseService: base, referenceAttempts: referenceAttempts}
}

func (s *journalService) GetJournal(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.repos.JournalRepo.FindEntryByID(ctx, businessID, entryID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListJournals(ctx context.Context, businessID string, params dto.ListJournalsParams) ([]domain.JournalEntry, *string, error) {
	filter := portsrepo.JournalListFilter{Limit: params.Limit, NextToken: params.NextToken}
	if params.Status != "" {
		status := domain.JournalStatus(params.Status)
		if !status.IsValid() {
			return nil, nil, apperrors.NewValidationError("invalid status %q", params.Status)
		}
		filter.Status = &status
	}

	entries, next, err := s.repos.JournalRepo.ListEntries(ctx, businessID, filter)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list journal entries", slog.String("business_id", businessID))
		return nil, nil, err
	}
	return entries, next, nil
}

func (s *journalService) CreateJournal(ctx context.Context, businessID string, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		entry, err = s.createInTx(ctx, repos, businessID, req, domain.SourceManual, userID)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create journal entry", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID), slog.String("reference", entry.ReferenceNumber))
	return entry, nil
}

func (s *journalService) PostJournal(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		entry, err = s.postInTx(ctx, repos, businessID, entryID, userID)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to post journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *journalService) CancelJournal(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		entry, err = repos.JournalRepo.FindEntryByIDForUpdate(ctx, businessID, entryID)
		if err != nil {
			return err
		}
		if err := entry.Cancel(userID, s.now()); err != nil {
			return err
		}
		return repos.JournalRepo.UpdateEntryStatus(ctx, businessID, entryID, entry.Status, userID, entry.LastUpdatedAt)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to cancel journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry cancelled", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, businessID string, entryID string) error {
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		entry, err := repos.JournalRepo.FindEntryByIDForUpdate(ctx, businessID, entryID)
		if err != nil {
			return err
		}
		if !entry.CanDelete() {
			return apperrors.NewInvalidStateError("only DRAFT entries can be deleted, entry %s is %s", entryID, entry.Status)
		}
		return repos.JournalRepo.DeleteEntry(ctx, businessID, entryID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// CreateAndPostJournal creates and posts in one transaction so a generated
// entry is never left behind as a draft.
func (s *journalService) CreateAndPostJournal(ctx context.Context, businessID string, req dto.CreateJournalRequest, source domain.EntrySource, userID string) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		created, err := s.createInTx(ctx, repos, businessID, req, source, userID)
		if err != nil {
			return err
		}
		entry, err = s.postInTx(ctx, repos, businessID, created.EntryID, userID)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create and post journal entry",
			slog.String("business_id", businessID), slog.String("source", string(source)))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID), slog.String("source", string(source)))
	return entry, nil
}

func (s *journalService) createInTx(ctx context.Context, repos portsrepo.RepositoryProvider, businessID string, req dto.CreateJournalRequest, source domain.EntrySource, userID string) (*domain.JournalEntry, error) {
	fy, err := s.resolveFinancialYear(ctx, repos, businessID, req.FinancialYearID)
	if err != nil {
		return nil, err
	}
	entryDate := domain.DateOnly(req.EntryDate)
	if !fy.Contains(entryDate) {
		return nil, apperrors.NewValidationError("entry date %s is outside financial year %s (%s to %s)",
			entryDate.Format("2006-01-02"), fy.Name,
			fy.StartDate.Format("2006-01-02"), fy.EndDate.Format("2006-01-02"))
	}

	now := s.now()
	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		BusinessID:      businessID,
		FinancialYearID: fy.FinancialYearID,
		EntryDate:       entryDate,
		Narration:       strings.TrimSpace(req.Narration),
		Status:          domain.StatusDraft,
		Source:          source,
		Items:           make([]domain.JournalItem, len(req.Items)),
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	for i, it := range req.Items {
		entry.Items[i] = domain.JournalItem{
			ItemID:      uuid.NewString(),
			EntryID:     entry.EntryID,
			AccountID:   it.AccountID,
			Type:        it.Type,
			Amount:      it.Amount,
			Description: it.Description,
		}
	}
	if err := entry.ValidateLines(); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, repos, businessID, entry.Items); err != nil {
		return nil, err
	}

	entry.ReferenceNumber, err = s.resolveReference(ctx, repos, businessID, req.ReferenceNumber)
	if err != nil {
		return nil, err
	}

	if err := repos.JournalRepo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *journalService) postInTx(ctx context.Context, repos portsrepo.RepositoryProvider, businessID, entryID, userID string) (*domain.JournalEntry, error) {
	entry, err := repos.JournalRepo.FindEntryByIDForUpdate(ctx, businessID, entryID)
	if err != nil {
		return nil, err
	}
	if err := entry.Post(userID, s.now()); err != nil {
		return nil, err
	}
	if err := repos.JournalRepo.UpdateEntryStatus(ctx, businessID, entryID, entry.Status, userID, entry.LastUpdatedAt); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalService) resolveFinancialYear(ctx context.Context, repos portsrepo.RepositoryProvider, businessID string, financialYearID *string) (*domain.FinancialYear, error) {
	if financialYearID != nil && *financialYearID != "" {
		return repos.FinancialYearRepo.FindFinancialYearByID(ctx, businessID, *financialYearID)
	}
	fy, err := repos.FinancialYearRepo.FindActiveFinancialYear(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("no financial year given and the business has no active financial year")
		}
		return nil, err
	}
	return fy, nil
}

// checkAccounts requires every referenced account to belong to the business and be active.
func (s *journalService) checkAccounts(ctx context.Context, repos portsrepo.RepositoryProvider, businessID string, items []domain.JournalItem) error {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !seen[it.AccountID] {
			seen[it.AccountID] = true
			ids = append(ids, it.AccountID)
		}
	}

	accounts, err := repos.AccountRepo.FindAccountsByIDs(ctx, businessID, ids)
	if err != nil {
		return err
	}
	var errs error
	for _, id := range ids {
		acc, ok := accounts[id]
		if !ok {
			return apperrors.NewNotFoundError("account", id)
		}
		if !acc.IsActive {
			errs = multierr.Append(errs, apperrors.NewValidationError("account %s (%s) is inactive", acc.Code, acc.Name))
		}
	}
	return errs
}

// resolveReference returns the caller's reference if it is free, or issues the
// next number of the journal sequence that nothing uses yet.
func (s *journalService) resolveReference(ctx context.Context, repos portsrepo.RepositoryProvider, businessID string, requested *string) (string, error) {
	if requested != nil && strings.TrimSpace(*requested) != "" {
		ref := strings.TrimSpace(*requested)
		exists, err := repos.JournalRepo.ReferenceExists(ctx, businessID, ref)
		if err != nil {
			return "", err
		}
		if exists {
			return "", fmt.Errorf("%w: reference number %s is already used", apperrors.ErrDuplicate, ref)
		}
		return ref, nil
	}

	for range s.referenceAttempts {
		ref, err := nextReference(ctx, repos, businessID, domain.DocJournalEntry)
		if err != nil {
			return "", err
		}
		exists, err := repos.JournalRepo.ReferenceExists(ctx, businessID, ref)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}
		s.LogDebug(ctx, "Generated reference already in use", slog.String("reference", ref))
	}
	return "", fmt.Errorf("%w: no free journal reference after %d attempts", apperrors.ErrDuplicate, s.referenceAttempts)
}
