package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type bankAccountService struct {
	BaseService
	journal        portssvc.JournalPosterSvc
	balanceWorkers int
}

// NewBankAccountService creates a bank account service that books its
// movements through journal.
func NewBankAccountService(base BaseService, journal portssvc.JournalPosterSvc, balanceWorkers int) *bankAccountService {
	if balanceWorkers < 1 {
		balanceWorkers = 1
	}
	return &bankAccountService{BaseService: base, journal: journal, balanceWorkers: balanceWorkers}
}

func (s *bankAccountService) CreateBankAccount(ctx context.Context, businessID string, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccountWithBalance, error) {
	bank := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		BusinessID:    businessID,
		AccountID:     req.AccountID,
		BankName:      strings.TrimSpace(req.BankName),
		AccountName:   strings.TrimSpace(req.AccountName),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		Branch:        strings.TrimSpace(req.Branch),
		IsActive:      true,
		AuditFields:   domain.NewAuditFields(userID, s.now()),
	}
	if bank.BankName == "" || bank.AccountName == "" || bank.AccountNumber == "" {
		return nil, apperrors.NewValidationError("bank name, account name and account number are required")
	}

	var result *domain.BankAccountWithBalance
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		account, err := repos.AccountRepo.FindAccountByID(ctx, businessID, req.AccountID)
		if err != nil {
			return err
		}
		if account.CategoryType != domain.Asset {
			return apperrors.NewValidationError("bank accounts must wrap an ASSET account, %s is %s", account.Code, account.CategoryType)
		}
		if err := repos.BankAccountRepo.SaveBankAccount(ctx, bank); err != nil {
			return err
		}
		balance, err := balanceOf(ctx, repos.LedgerRepo, account, nil)
		if err != nil {
			return err
		}
		result = &domain.BankAccountWithBalance{BankAccount: bank, Balance: balance}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create bank account", slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account created", slog.String("bank_account_id", bank.BankAccountID))
	return result, nil
}

func (s *bankAccountService) GetBankAccount(ctx context.Context, businessID string, bankAccountID string) (*domain.BankAccountWithBalance, error) {
	bank, err := s.repos.BankAccountRepo.FindBankAccountByID(ctx, businessID, bankAccountID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find bank account", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}
	account, err := s.repos.AccountRepo.FindAccountByID(ctx, businessID, bank.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Bank account references a missing ledger account", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}
	balance, err := balanceOf(ctx, s.repos.LedgerRepo, account, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute bank balance", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}
	return &domain.BankAccountWithBalance{BankAccount: *bank, Balance: balance}, nil
}

// ListBankAccounts computes balances concurrently, at most balanceWorkers at a time.
func (s *bankAccountService) ListBankAccounts(ctx context.Context, businessID string) ([]domain.BankAccountWithBalance, error) {
	banks, err := s.repos.BankAccountRepo.ListBankAccounts(ctx, businessID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list bank accounts", slog.String("business_id", businessID))
		return nil, err
	}
	if len(banks) == 0 {
		return []domain.BankAccountWithBalance{}, nil
	}

	ids := make([]string, len(banks))
	for i, b := range banks {
		ids[i] = b.AccountID
	}
	accounts, err := s.repos.AccountRepo.FindAccountsByIDs(ctx, businessID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger accounts of bank accounts", slog.String("business_id", businessID))
		return nil, err
	}

	for _, bank := range banks {
		if _, ok := accounts[bank.AccountID]; !ok {
			return nil, apperrors.NewNotFoundError("account", bank.AccountID)
		}
	}

	result := make([]domain.BankAccountWithBalance, len(banks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.balanceWorkers)
	for i, bank := range banks {
		account := accounts[bank.AccountID]
		g.Go(func() error {
			balance, err := balanceOf(gctx, s.repos.LedgerRepo, &account, nil)
			if err != nil {
				return err
			}
			result[i] = domain.BankAccountWithBalance{BankAccount: bank, Balance: balance}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute bank balances", slog.String("business_id", businessID))
		return nil, err
	}
	return result, nil
}

// Deposit debits the bank and credits the counter account.
func (s *bankAccountService) Deposit(ctx context.Context, businessID string, bankAccountID string, req dto.BankTransactionRequest, userID string) (*domain.JournalEntry, error) {
	return s.bookMovement(ctx, businessID, bankAccountID, req, domain.SourceDeposit, userID)
}

// Withdraw debits the counter account and credits the bank.
func (s *bankAccountService) Withdraw(ctx context.Context, businessID string, bankAccountID string, req dto.BankTransactionRequest, userID string) (*domain.JournalEntry, error) {
	return s.bookMovement(ctx, businessID, bankAccountID, req, domain.SourceWithdrawal, userID)
}

func (s *bankAccountService) bookMovement(ctx context.Context, businessID, bankAccountID string, req dto.BankTransactionRequest, source domain.EntrySource, userID string) (*domain.JournalEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive, got %s", req.Amount)
	}

	var entry *domain.JournalEntry
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		bank, err := activeBankAccount(ctx, repos, businessID, bankAccountID)
		if err != nil {
			return err
		}
		if bank.AccountID == req.CounterAccountID {
			return fmt.Errorf("%w: counter account is the bank's own ledger account", apperrors.ErrSameAccount)
		}

		debit, credit := bank.AccountID, req.CounterAccountID
		if source == domain.SourceWithdrawal {
			debit, credit = credit, debit
		}
		entry, err = s.journal.CreateAndPostJournal(ctx, businessID, dto.CreateJournalRequest{
			ReferenceNumber: req.ReferenceNumber,
			EntryDate:       req.Date,
			Narration:       req.Narration,
			Items:           twoLines(debit, credit, req.Amount),
		}, source, userID)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to book bank movement",
			slog.String("bank_account_id", bankAccountID), slog.String("source", string(source)))
		return nil, err
	}

	s.LogInfo(ctx, "Bank movement booked", slog.String("bank_account_id", bankAccountID),
		slog.String("source", string(source)), slog.String("entry_id", entry.EntryID))
	return entry, nil
}

// Transfer debits the destination bank and credits the source bank.
func (s *bankAccountService) Transfer(ctx context.Context, businessID string, req dto.TransferRequest, userID string) (*domain.JournalEntry, error) {
	if req.FromBankAccountID == req.ToBankAccountID {
		return nil, fmt.Errorf("%w: cannot transfer from bank account %s to itself", apperrors.ErrSameAccount, req.FromBankAccountID)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive, got %s", req.Amount)
	}

	var entry *domain.JournalEntry
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		from, err := activeBankAccount(ctx, repos, businessID, req.FromBankAccountID)
		if err != nil {
			return err
		}
		to, err := activeBankAccount(ctx, repos, businessID, req.ToBankAccountID)
		if err != nil {
			return err
		}
		entry, err = s.journal.CreateAndPostJournal(ctx, businessID, dto.CreateJournalRequest{
			ReferenceNumber: req.ReferenceNumber,
			EntryDate:       req.Date,
			Narration:       req.Narration,
			Items:           twoLines(to.AccountID, from.AccountID, req.Amount),
		}, domain.SourceTransfer, userID)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to transfer between bank accounts",
			slog.String("from", req.FromBankAccountID), slog.String("to", req.ToBankAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank transfer booked", slog.String("entry_id", entry.EntryID))
	return entry, nil
}

// Reconcile reads the ledger balance and books the adjustment inside one
// transaction, so a concurrent posting cannot slip between the two.
func (s *bankAccountService) Reconcile(ctx context.Context, businessID string, bankAccountID string, req dto.ReconcileRequest, userID string) (*domain.ReconciliationResult, error) {
	statementDate := domain.DateOnly(req.StatementDate)

	var result *domain.ReconciliationResult
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		bank, err := activeBankAccount(ctx, repos, businessID, bankAccountID)
		if err != nil {
			return err
		}
		account, err := repos.AccountRepo.FindAccountByID(ctx, businessID, bank.AccountID)
		if err != nil {
			return err
		}
		ledgerBalance, err := balanceOf(ctx, repos.LedgerRepo, account, &statementDate)
		if err != nil {
			return err
		}

		adjustment := req.StatementBalance.Sub(ledgerBalance).Round()
		result = &domain.ReconciliationResult{
			BankAccountID:    bankAccountID,
			StatementDate:    statementDate,
			StatementBalance: req.StatementBalance,
			LedgerBalance:    ledgerBalance,
			Adjustment:       adjustment,
		}
		if adjustment.IsZero() {
			return nil
		}

		adjustmentAccountID, err := s.adjustmentAccount(ctx, repos, businessID, req.AdjustmentAccountID)
		if err != nil {
			return err
		}
		if adjustmentAccountID == bank.AccountID {
			return fmt.Errorf("%w: adjustment account is the bank's own ledger account", apperrors.ErrSameAccount)
		}

		// A positive adjustment means the bank holds more than the books show.
		debit, credit := bank.AccountID, adjustmentAccountID
		if adjustment.IsNegative() {
			debit, credit = credit, debit
		}
		result.Entry, err = s.journal.CreateAndPostJournal(ctx, businessID, dto.CreateJournalRequest{
			EntryDate: statementDate,
			Narration: req.Narration,
			Items:     twoLines(debit, credit, adjustment.Abs()),
		}, domain.SourceReconciliation, userID)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to reconcile bank account", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account reconciled", slog.String("bank_account_id", bankAccountID),
		slog.String("adjustment", result.Adjustment.String()))
	return result, nil
}

func (s *bankAccountService) adjustmentAccount(ctx context.Context, repos portsrepo.RepositoryProvider, businessID string, requested *string) (string, error) {
	if requested != nil && *requested != "" {
		return *requested, nil
	}
	business, err := repos.BusinessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return "", err
	}
	if business.Settings.SuspenseAccountID == nil {
		return "", apperrors.NewValidationError("no adjustment account given and the business has no suspense account configured")
	}
	return *business.Settings.SuspenseAccountID, nil
}

func activeBankAccount(ctx context.Context, repos portsrepo.RepositoryProvider, businessID, bankAccountID string) (*domain.BankAccount, error) {
	bank, err := repos.BankAccountRepo.FindBankAccountByID(ctx, businessID, bankAccountID)
	if err != nil {
		return nil, err
	}
	if !bank.IsActive {
		return nil, apperrors.NewInvalidStateError("bank account %s is inactive", bankAccountID)
	}
	return bank, nil
}

func twoLines(debitAccountID, creditAccountID string, amount domain.Money) []dto.CreateJournalItemRequest {
	return []dto.CreateJournalItemRequest{
		{AccountID: debitAccountID, Type: domain.Debit, Amount: amount},
		{AccountID: creditAccountID, Type: domain.Credit, Amount: amount},
	}
}
