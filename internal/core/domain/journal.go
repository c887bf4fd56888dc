package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"go.uber.org/multierr"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	StatusDraft     JournalStatus = "DRAFT"
	StatusPosted    JournalStatus = "POSTED"
	StatusCancelled JournalStatus = "CANCELLED"
)

// IsValid reports whether s is a known status.
func (s JournalStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPosted, StatusCancelled:
		return true
	}
	return false
}

// ItemType indicates whether a journal line is a debit or a credit.
type ItemType string

const (
	Debit  ItemType = "DEBIT"
	Credit ItemType = "CREDIT"
)

// EntrySource records which workflow produced a journal entry.
type EntrySource string

const (
	SourceManual         EntrySource = "MANUAL"
	SourceDeposit        EntrySource = "DEPOSIT"
	SourceWithdrawal     EntrySource = "WITHDRAWAL"
	SourceTransfer       EntrySource = "TRANSFER"
	SourceReconciliation EntrySource = "RECONCILIATION"
)

// JournalItem is a single debit or credit line. Amount is always positive.
type JournalItem struct {
	ItemID      string   `json:"itemID"`
	EntryID     string   `json:"entryID"`
	AccountID   string   `json:"accountID"`
	Type        ItemType `json:"type"`
	Amount      Money    `json:"amount"`
	Description string   `json:"description"`
}

// JournalEntry is a dated, referenced set of journal items.
// Totals are always derived from Items and never stored.
type JournalEntry struct {
	EntryID         string        `json:"entryID"`
	BusinessID      string        `json:"businessID"`
	FinancialYearID string        `json:"financialYearID"`
	ReferenceNumber string        `json:"referenceNumber"`
	EntryDate       time.Time     `json:"entryDate"`
	Narration       string        `json:"narration"`
	Status          JournalStatus `json:"status"`
	Source          EntrySource   `json:"source"`
	Items           []JournalItem `json:"items"`
	AuditFields
}

// TotalDebit sums the debit lines.
func (e *JournalEntry) TotalDebit() Money {
	return e.total(Debit)
}

// TotalCredit sums the credit lines.
func (e *JournalEntry) TotalCredit() Money {
	return e.total(Credit)
}

func (e *JournalEntry) total(t ItemType) Money {
	sum := ZeroMoney()
	for _, item := range e.Items {
		if item.Type == t {
			sum = sum.Add(item.Amount)
		}
	}
	return sum
}

// IsBalanced compares rounded totals within MoneyEpsilon.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebit().Balances(e.TotalCredit())
}

// ValidateLines checks the entry's own shape: narration, item count, sides and amounts.
// Every problem found is reported in the returned error.
func (e *JournalEntry) ValidateLines() error {
	var errs error
	if strings.TrimSpace(e.Narration) == "" {
		errs = multierr.Append(errs, apperrors.NewValidationError("narration is required"))
	}
	if len(e.Items) < 2 {
		errs = multierr.Append(errs, apperrors.NewValidationError("a journal entry requires at least two items, got %d", len(e.Items)))
	}
	var debits, credits int
	for i, item := range e.Items {
		switch item.Type {
		case Debit:
			debits++
		case Credit:
			credits++
		default:
			errs = multierr.Append(errs, apperrors.NewValidationError("item %d: invalid type %q", i, item.Type))
		}
		if item.AccountID == "" {
			errs = multierr.Append(errs, apperrors.NewValidationError("item %d: account is required", i))
		}
		switch {
		case !item.Amount.IsPositive():
			errs = multierr.Append(errs, apperrors.NewValidationError("item %d: amount must be positive, got %s", i, item.Amount.Decimal()))
		case !item.Amount.WithinScale():
			errs = multierr.Append(errs, apperrors.NewValidationError("item %d: amount %s has more than %d decimal places", i, item.Amount.Decimal(), MoneyScale))
		}
	}
	if len(e.Items) >= 2 && (debits == 0 || credits == 0) {
		errs = multierr.Append(errs, apperrors.NewValidationError("a journal entry requires at least one debit and one credit"))
	}
	return errs
}

// Post moves a draft entry to POSTED. The entry must balance. Only the status and
// the last-updated stamps change.
func (e *JournalEntry) Post(by string, at time.Time) error {
	if e.Status != StatusDraft {
		return apperrors.NewInvalidStateError("only DRAFT entries can be posted, entry %s is %s", e.EntryID, e.Status)
	}
	if !e.IsBalanced() {
		return fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalancedEntry, e.TotalDebit(), e.TotalCredit())
	}
	e.Status = StatusPosted
	e.Touch(by, at)
	return nil
}

// Cancel moves a posted entry to CANCELLED. Its items stay but stop counting toward balances.
func (e *JournalEntry) Cancel(by string, at time.Time) error {
	if e.Status != StatusPosted {
		return apperrors.NewInvalidStateError("only POSTED entries can be cancelled, entry %s is %s", e.EntryID, e.Status)
	}
	e.Status = StatusCancelled
	e.Touch(by, at)
	return nil
}

// CanDelete reports whether the entry may be physically removed.
func (e *JournalEntry) CanDelete() bool {
	return e.Status == StatusDraft
}
