package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
)

type ledgerService struct {
	BaseService
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(base BaseService) *ledgerService {
	return &ledgerService{BaseService: base}
}

func (s *ledgerService) BalanceOf(ctx context.Context, businessID string, accountID string, asOf *time.Time) (domain.Money, error) {
	account, err := s.repos.AccountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find account for balance", slog.String("account_id", accountID))
		return domain.ZeroMoney(), err
	}
	balance, err := balanceOf(ctx, s.repos.LedgerRepo, account, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance", slog.String("account_id", accountID))
		return domain.ZeroMoney(), err
	}
	return balance, nil
}

// AccountStatement lists the account's posted lines within [from, to]. The
// opening balance covers everything before from.
func (s *ledgerService) AccountStatement(ctx context.Context, businessID string, accountID string, from, to *time.Time) (*domain.AccountStatement, error) {
	account, err := s.repos.AccountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find account for statement", slog.String("account_id", accountID))
		return nil, err
	}

	opening := domain.ZeroMoney()
	if from != nil {
		dayBefore := domain.DateOnly(*from).AddDate(0, 0, -1)
		opening, err = balanceOf(ctx, s.repos.LedgerRepo, account, &dayBefore)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute opening balance", slog.String("account_id", accountID))
			return nil, err
		}
	}

	posted, err := s.repos.LedgerRepo.ListPostedLines(ctx, businessID, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list posted lines", slog.String("account_id", accountID))
		return nil, err
	}

	running := opening
	lines := make([]domain.StatementLine, 0, len(posted))
	for _, pl := range posted {
		delta, err := accounting.SignedAmount(domain.JournalItem{Type: pl.Type, Amount: pl.Amount}, account.CategoryType)
		if err != nil {
			return nil, err
		}
		running = running.Add(delta)
		lines = append(lines, domain.StatementLine{PostedLine: pl, Balance: running})
	}

	return &domain.AccountStatement{
		Account:        *account,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Lines:          lines,
		ClosingBalance: running,
	}, nil
}

// balanceOf is the one place a stored account's balance is derived. Callers
// pass the ledger reader of their transaction when they need a consistent read.
func balanceOf(ctx context.Context, ledger portsrepo.LedgerReader, account *domain.Account, asOf *time.Time) (domain.Money, error) {
	debit, credit, err := ledger.SumPostedItems(ctx, account.BusinessID, account.AccountID, asOf)
	if err != nil {
		return domain.ZeroMoney(), fmt.Errorf("failed to sum posted items of account %s: %w", account.AccountID, err)
	}
	return accounting.NormalBalance(account.CategoryType, debit, credit)
}
