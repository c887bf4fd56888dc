package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock BusinessService ---
type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}
func (m *MockBusinessService) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}
func (m *MockBusinessService) UpdateSettings(ctx context.Context, businessID string, req dto.UpdateSettingsRequest, userID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}
func (m *MockBusinessService) NextReference(ctx context.Context, businessID string, docType domain.DocumentType) (string, error) {
	args := m.Called(ctx, businessID, docType)
	return args.String(0), args.Error(1)
}

var _ portssvc.BusinessSvcFacade = (*MockBusinessService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateCategory(ctx context.Context, businessID string, req dto.CreateCategoryRequest, userID string) (*domain.AccountCategory, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountCategory), args.Error(1)
}
func (m *MockAccountService) ListCategories(ctx context.Context, businessID string) ([]domain.AccountCategory, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountCategory), args.Error(1)
}
func (m *MockAccountService) GetAccount(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, businessID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ActivateAccount(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, businessID string, accountID string) error {
	args := m.Called(ctx, businessID, accountID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) BalanceOf(ctx context.Context, businessID string, accountID string, asOf *time.Time) (domain.Money, error) {
	args := m.Called(ctx, businessID, accountID, asOf)
	return args.Get(0).(domain.Money), args.Error(1)
}
func (m *MockLedgerService) AccountStatement(ctx context.Context, businessID string, accountID string, from, to *time.Time) (*domain.AccountStatement, error) {
	args := m.Called(ctx, businessID, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournal(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListJournals(ctx context.Context, businessID string, params dto.ListJournalsParams) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, businessID, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}
func (m *MockJournalService) CreateJournal(ctx context.Context, businessID string, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) PostJournal(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) CancelJournal(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) DeleteJournal(ctx context.Context, businessID string, entryID string) error {
	args := m.Called(ctx, businessID, entryID)
	return args.Error(0)
}
func (m *MockJournalService) CreateAndPostJournal(ctx context.Context, businessID string, req dto.CreateJournalRequest, source domain.EntrySource, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, req, source, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock BankAccountService ---
type MockBankAccountService struct {
	mock.Mock
}

func (m *MockBankAccountService) GetBankAccount(ctx context.Context, businessID string, bankAccountID string) (*domain.BankAccountWithBalance, error) {
	args := m.Called(ctx, businessID, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccountWithBalance), args.Error(1)
}
func (m *MockBankAccountService) ListBankAccounts(ctx context.Context, businessID string) ([]domain.BankAccountWithBalance, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccountWithBalance), args.Error(1)
}
func (m *MockBankAccountService) CreateBankAccount(ctx context.Context, businessID string, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccountWithBalance, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccountWithBalance), args.Error(1)
}
func (m *MockBankAccountService) Deposit(ctx context.Context, businessID string, bankAccountID string, req dto.BankTransactionRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, bankAccountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockBankAccountService) Withdraw(ctx context.Context, businessID string, bankAccountID string, req dto.BankTransactionRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, bankAccountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockBankAccountService) Transfer(ctx context.Context, businessID string, req dto.TransferRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockBankAccountService) Reconcile(ctx context.Context, businessID string, bankAccountID string, req dto.ReconcileRequest, userID string) (*domain.ReconciliationResult, error) {
	args := m.Called(ctx, businessID, bankAccountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationResult), args.Error(1)
}

var _ portssvc.BankAccountSvcFacade = (*MockBankAccountService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, businessID string, asOf time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, businessID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockReportingService) ProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.ProfitAndLoss, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLoss), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, businessID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock FinancialYearService ---
type MockFinancialYearService struct {
	mock.Mock
}

func (m *MockFinancialYearService) CreateFinancialYear(ctx context.Context, businessID string, req dto.CreateFinancialYearRequest, userID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}
func (m *MockFinancialYearService) GetFinancialYear(ctx context.Context, businessID string, financialYearID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, businessID, financialYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}
func (m *MockFinancialYearService) ListFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialYear), args.Error(1)
}
func (m *MockFinancialYearService) GetActiveFinancialYear(ctx context.Context, businessID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}
func (m *MockFinancialYearService) ActivateFinancialYear(ctx context.Context, businessID string, financialYearID string, userID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, businessID, financialYearID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

var _ portssvc.FinancialYearSvcFacade = (*MockFinancialYearService)(nil)
