package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveCategory(ctx context.Context, category domain.AccountCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockAccountRepository) FindCategoryByID(ctx context.Context, businessID, categoryID string) (*domain.AccountCategory, error) {
	args := m.Called(ctx, businessID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountCategory), args.Error(1)
}

func (m *MockAccountRepository) ListCategories(ctx context.Context, businessID string) ([]domain.AccountCategory, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountCategory), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, businessID string, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, businessID, accountID string) error {
	args := m.Called(ctx, businessID, accountID)
	return args.Error(0)
}

// MockLedgerReader is a mock type for the LedgerReader interface
type MockLedgerReader struct {
	mock.Mock
}

var _ portsrepo.LedgerReader = (*MockLedgerReader)(nil)

func (m *MockLedgerReader) SumPostedItems(ctx context.Context, businessID, accountID string, asOf *time.Time) (domain.Money, domain.Money, error) {
	args := m.Called(ctx, businessID, accountID, asOf)
	return args.Get(0).(domain.Money), args.Get(1).(domain.Money), args.Error(2)
}

func (m *MockLedgerReader) AccountTotals(ctx context.Context, businessID string, from, to *time.Time) ([]domain.AccountTotals, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotals), args.Error(1)
}

func (m *MockLedgerReader) ListPostedLines(ctx context.Context, businessID, accountID string, from, to *time.Time) ([]domain.PostedLine, error) {
	args := m.Called(ctx, businessID, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostedLine), args.Error(1)
}

func (m *MockLedgerReader) AccountHasItems(ctx context.Context, businessID, accountID string) (bool, error) {
	args := m.Called(ctx, businessID, accountID)
	return args.Bool(0), args.Error(1)
}

// inlineTxManager runs units of work directly against the mocked provider.
type inlineTxManager struct {
	repos portsrepo.RepositoryProvider
}

func (m inlineTxManager) WithTx(ctx context.Context, fn portsrepo.TxFunc) error {
	return fn(ctx, m.repos)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockAccountRepository
	mockLedger *MockLedgerReader
	service    portssvc.AccountSvcFacade
	ledger     portssvc.LedgerSvc
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockLedger = new(MockLedgerReader)
	repos := portsrepo.RepositoryProvider{AccountRepo: suite.mockRepo, LedgerRepo: suite.mockLedger}
	container := services.NewServiceContainer(repos, inlineTxManager{repos: repos},
		services.WithClock(func() time.Time { return fixedNow }))
	suite.service = container.Account
	suite.ledger = container.Ledger
}

const bizID = "biz-1"

func (suite *AccountServiceTestSuite) TestCreateAccount_CopiesCategoryType() {
	ctx := context.Background()
	category := &domain.AccountCategory{CategoryID: "cat-1", BusinessID: bizID, Type: domain.Liability}
	suite.mockRepo.On("FindCategoryByID", ctx, bizID, "cat-1").Return(category, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.CategoryType == domain.Liability && a.Code == "2000" && a.IsActive
	})).Return(nil).Once()

	acc, err := suite.service.CreateAccount(ctx, bizID, dto.CreateAccountRequest{CategoryID: "cat-1", Code: " 2000 ", Name: "Payables"}, testUser)

	suite.Require().NoError(err)
	suite.Equal(domain.Liability, acc.CategoryType)
	suite.Equal(testUser, acc.CreatedBy)
	suite.Equal(fixedNow, acc.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("FindCategoryByID", ctx, bizID, "cat-1").
		Return(&domain.AccountCategory{CategoryID: "cat-1", Type: domain.Asset}, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	acc, err := suite.service.CreateAccount(ctx, bizID, dto.CreateAccountRequest{CategoryID: "cat-1", Code: "1", Name: "X"}, testUser)

	suite.Require().Error(err)
	suite.Nil(acc)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCategory() {
	ctx := context.Background()
	suite.mockRepo.On("FindCategoryByID", ctx, bizID, "nope").Return(nil, apperrors.NewNotFoundError("account category", "nope")).Once()

	_, err := suite.service.CreateAccount(ctx, bizID, dto.CreateAccountRequest{CategoryID: "nope", Code: "1", Name: "X"}, testUser)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateCategory_InvalidType() {
	_, err := suite.service.CreateCategory(context.Background(), bizID, dto.CreateCategoryRequest{Name: "Income", Type: "INCOME"}, testUser)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, bizID, "acc-1").
		Return(&domain.Account{AccountID: "acc-1", Code: "1000", IsActive: false}, nil).Once()

	_, err := suite.service.DeactivateAccount(ctx, bizID, "acc-1", testUser)

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_LedgerError() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, bizID, "acc-1").Return(&domain.Account{AccountID: "acc-1"}, nil).Once()
	suite.mockLedger.On("AccountHasItems", ctx, bizID, "acc-1").Return(false, assert.AnError).Once()

	err := suite.service.DeleteAccount(ctx, bizID, "acc-1")

	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestBalanceOf_UsesNormalBalance() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, bizID, "acc-rev").
		Return(&domain.Account{AccountID: "acc-rev", BusinessID: bizID, CategoryType: domain.Revenue}, nil).Once()
	suite.mockLedger.On("SumPostedItems", ctx, bizID, "acc-rev", (*time.Time)(nil)).
		Return(domain.MoneyFromInt(20), domain.MoneyFromInt(120), nil).Once()

	bal, err := suite.ledger.BalanceOf(ctx, bizID, "acc-rev", nil)

	suite.Require().NoError(err)
	suite.Equal("100.00", bal.String())
	suite.mockLedger.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
