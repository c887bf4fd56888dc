package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/mock"
)

func testAccount(id, code string, t domain.AccountCategoryType) *domain.Account {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Account{
		AccountID:    id,
		BusinessID:   testBizID,
		CategoryID:   "cat-" + string(t),
		CategoryType: t,
		Code:         code,
		Name:         "Account " + code,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(testUserID, now),
	}
}

func (s *HandlerTestSuite) TestCreateBusiness() {
	biz := &domain.Business{BusinessID: "biz-new", Name: "Acme", Settings: domain.DefaultBusinessSettings()}
	s.business.On("CreateBusiness", mock.Anything, dto.CreateBusinessRequest{Name: "Acme"}, testUserID).Return(biz, nil).Once()

	w := s.sendRoot(http.MethodPost, "/api/v1/businesses", `{"name":"Acme"}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.BusinessResponse
	s.decode(w, &resp)
	s.Equal("biz-new", resp.BusinessID)
	s.Equal("JE-", resp.Settings.JournalPrefix)
}

func (s *HandlerTestSuite) TestNextReference() {
	s.business.On("NextReference", mock.Anything, testBizID, domain.DocInvoice).Return("INV-7", nil).Once()

	w := s.do(http.MethodPost, "/references/INVOICE", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.NextReferenceResponse
	s.decode(w, &resp)
	s.Equal("INV-7", resp.ReferenceNumber)
	s.Equal(domain.DocInvoice, resp.DocumentType)
}

func (s *HandlerTestSuite) TestNextReference_UnknownDocumentType() {
	s.business.On("NextReference", mock.Anything, testBizID, domain.DocumentType("RECEIPT")).
		Return("", apperrors.NewValidationError("unknown document type %q", "RECEIPT")).Once()

	w := s.do(http.MethodPost, "/references/RECEIPT", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCreateAccount_Success() {
	expected := testAccount("acc-1", "1000", domain.Asset)
	s.accounts.On("CreateAccount", mock.Anything, testBizID,
		dto.CreateAccountRequest{CategoryID: "cat-ASSET", Code: "1000", Name: "Cash"}, testUserID,
	).Return(expected, nil).Once()

	w := s.do(http.MethodPost, "/accounts", map[string]string{"categoryID": "cat-ASSET", "code": "1000", "name": "Cash"})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	s.decode(w, &resp)
	s.Equal("acc-1", resp.AccountID)
	s.Equal(domain.Asset, resp.CategoryType)
	s.True(resp.IsActive)
}

func (s *HandlerTestSuite) TestCreateAccount_MissingCode() {
	w := s.do(http.MethodPost, "/accounts", map[string]string{"categoryID": "cat-ASSET", "name": "Cash"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.accounts.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateAccount_DuplicateCode() {
	s.accounts.On("CreateAccount", mock.Anything, testBizID, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: account code 1000", apperrors.ErrDuplicate)).Once()

	w := s.do(http.MethodPost, "/accounts", map[string]string{"categoryID": "cat-ASSET", "code": "1000", "name": "Cash"})

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(s.errorMessage(w), "1000")
}

func (s *HandlerTestSuite) TestGetAccount_NotFound() {
	s.accounts.On("GetAccount", mock.Anything, testBizID, "missing").
		Return(nil, apperrors.NewNotFoundError("account", "missing")).Once()

	w := s.do(http.MethodGet, "/accounts/missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestGetAccount_InternalErrorIsNotLeaked() {
	s.accounts.On("GetAccount", mock.Anything, testBizID, "acc-1").
		Return(nil, apperrors.NewInternalError("failed to load account", errors.New("connection reset by peer"))).Once()

	w := s.do(http.MethodGet, "/accounts/acc-1", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Failed to retrieve account", s.errorMessage(w))
}

func (s *HandlerTestSuite) TestListAccounts_FiltersByType() {
	accounts := []domain.Account{*testAccount("acc-1", "4000", domain.Revenue)}
	s.accounts.On("ListAccounts", mock.Anything, testBizID, dto.ListAccountsParams{CategoryType: "REVENUE", ActiveOnly: true}).
		Return(accounts, nil).Once()

	w := s.do(http.MethodGet, "/accounts?categoryType=REVENUE&activeOnly=true", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	s.decode(w, &resp)
	s.Len(resp, 1)
	s.Equal("4000", resp[0].Code)
}

func (s *HandlerTestSuite) TestListAccounts_InvalidType() {
	w := s.do(http.MethodGet, "/accounts?categoryType=INCOME", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDeactivateAccount_AlreadyInactive() {
	s.accounts.On("DeactivateAccount", mock.Anything, testBizID, "acc-1", testUserID).
		Return(nil, fmt.Errorf("%w: account is already inactive", apperrors.ErrInvalidState)).Once()

	w := s.do(http.MethodPost, "/accounts/acc-1/deactivate", nil)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestDeleteAccount() {
	s.accounts.On("DeleteAccount", mock.Anything, testBizID, "acc-1").Return(nil).Once()
	s.accounts.On("DeleteAccount", mock.Anything, testBizID, "acc-2").
		Return(fmt.Errorf("%w: account has journal items", apperrors.ErrInvalidState)).Once()

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/accounts/acc-1", nil).Code)
	s.Equal(http.StatusConflict, s.do(http.MethodDelete, "/accounts/acc-2", nil).Code)
}

func (s *HandlerTestSuite) TestCreateCategory_RejectsUnknownType() {
	w := s.do(http.MethodPost, "/categories", map[string]string{"name": "Misc", "type": "INCOME"})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestBalance_FormatsWithBusinessSettings() {
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	s.ledger.On("BalanceOf", mock.Anything, testBizID, "acc-1", mock.MatchedBy(func(t *time.Time) bool {
		return t != nil && t.Equal(asOf)
	})).Return(domain.MustParseMoney("1234567.5"), nil).Once()
	s.business.On("GetBusiness", mock.Anything, testBizID).
		Return(&domain.Business{BusinessID: testBizID, Settings: domain.DefaultBusinessSettings()}, nil).Once()

	w := s.do(http.MethodGet, "/accounts/acc-1/balance?asOf=2024-03-31", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	s.decode(w, &resp)
	s.Equal("1234567.50", resp.Balance.String())
	s.Equal("৳1,234,567.50", resp.Formatted)
}

func (s *HandlerTestSuite) TestBalance_BadDate() {
	w := s.do(http.MethodGet, "/accounts/acc-1/balance?asOf=31-03-2024", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestStatement_RejectsInvertedRange() {
	w := s.do(http.MethodGet, "/accounts/acc-1/statement?from=2024-04-01&to=2024-03-01", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}
