package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) expectSettings() {
	settings := domain.DefaultBusinessSettings()
	settings.CurrencySymbol = "$"
	s.business.On("GetBusiness", mock.Anything, testBizID).
		Return(&domain.Business{BusinessID: testBizID, Settings: settings}, nil).Once()
}

func testBankAccount(balance string) *domain.BankAccountWithBalance {
	return &domain.BankAccountWithBalance{
		BankAccount: domain.BankAccount{
			BankAccountID: "bank-1",
			BusinessID:    testBizID,
			AccountID:     "acc-bank",
			BankName:      "First Bank",
			AccountName:   "Operating",
			AccountNumber: "0001",
			IsActive:      true,
		},
		Balance: domain.MustParseMoney(balance),
	}
}

func (s *HandlerTestSuite) TestCreateBankAccount() {
	s.banks.On("CreateBankAccount", mock.Anything, testBizID, dto.CreateBankAccountRequest{
		AccountID: "acc-bank", BankName: "First Bank", AccountName: "Operating", AccountNumber: "0001",
	}, testUserID).Return(testBankAccount("0"), nil).Once()
	s.expectSettings()

	w := s.do(http.MethodPost, "/bank-accounts", map[string]string{
		"accountID": "acc-bank", "bankName": "First Bank", "accountName": "Operating", "accountNumber": "0001",
	})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.BankAccountResponse
	s.decode(w, &resp)
	s.Equal("bank-1", resp.BankAccountID)
	s.Equal("$0.00", resp.Formatted)
}

func (s *HandlerTestSuite) TestCreateBankAccount_NotAnAsset() {
	s.banks.On("CreateBankAccount", mock.Anything, testBizID, mock.Anything, testUserID).
		Return(nil, apperrors.NewValidationError("bank accounts must wrap an ASSET account")).Once()

	w := s.do(http.MethodPost, "/bank-accounts", map[string]string{
		"accountID": "acc-sales", "bankName": "First Bank", "accountName": "Operating", "accountNumber": "0001",
	})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListBankAccounts_FormatsBalances() {
	s.banks.On("ListBankAccounts", mock.Anything, testBizID).
		Return([]domain.BankAccountWithBalance{*testBankAccount("1500.5")}, nil).Once()
	s.expectSettings()

	w := s.do(http.MethodGet, "/bank-accounts", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []dto.BankAccountResponse
	s.decode(w, &resp)
	s.Require().Len(resp, 1)
	s.Equal("1500.50", resp[0].Balance.String())
	s.Equal("$1,500.50", resp[0].Formatted)
}

func (s *HandlerTestSuite) TestDeposit() {
	entry := testEntry("je-dep", domain.StatusPosted, "250", "250")
	entry.Source = domain.SourceDeposit
	s.banks.On("Deposit", mock.Anything, testBizID, "bank-1", mock.MatchedBy(func(req dto.BankTransactionRequest) bool {
		return req.CounterAccountID == "acc-sales" && req.Amount.Equal(domain.MoneyFromInt(250)) &&
			req.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	}), testUserID).Return(entry, nil).Once()

	w := s.do(http.MethodPost, "/bank-accounts/bank-1/deposits", `{
		"counterAccountID": "acc-sales", "amount": "250.00",
		"date": "2024-03-05", "narration": "Cash sale"}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalResponse
	s.decode(w, &resp)
	s.Equal(domain.SourceDeposit, resp.Source)
	s.Equal(domain.StatusPosted, resp.Status)
}

func (s *HandlerTestSuite) TestWithdraw_RejectsNonPositiveAmount() {
	for _, amount := range []string{`"0"`, `"-10"`, `"10.001"`} {
		w := s.do(http.MethodPost, "/bank-accounts/bank-1/withdrawals", `{
			"counterAccountID": "acc-rent", "amount": `+amount+`,
			"date": "2024-03-05T00:00:00Z", "narration": "Rent"}`)
		s.Equal(http.StatusBadRequest, w.Code, amount)
	}
	s.banks.AssertNotCalled(s.T(), "Withdraw", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestWithdraw_InactiveBank() {
	s.banks.On("Withdraw", mock.Anything, testBizID, "bank-1", mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: bank account is inactive", apperrors.ErrInvalidState)).Once()

	w := s.do(http.MethodPost, "/bank-accounts/bank-1/withdrawals", `{
		"counterAccountID": "acc-rent", "amount": "10",
		"date": "2024-03-05T00:00:00Z", "narration": "Rent"}`)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestTransfer_SameAccount() {
	s.banks.On("Transfer", mock.Anything, testBizID, mock.MatchedBy(func(req dto.TransferRequest) bool {
		return req.FromBankAccountID == "bank-1" && req.ToBankAccountID == "bank-1" &&
			req.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	}), testUserID).Return(nil, apperrors.ErrSameAccount).Once()

	w := s.do(http.MethodPost, "/bank-transfers", `{
		"fromBankAccountID": "bank-1", "toBankAccountID": "bank-1", "amount": "10",
		"date": "2024-03-05", "narration": "Sweep"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestReconcile_NoAdjustmentOmitsEntry() {
	statementDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	s.banks.On("Reconcile", mock.Anything, testBizID, "bank-1", mock.MatchedBy(func(req dto.ReconcileRequest) bool {
		return req.StatementBalance.Equal(domain.MoneyFromInt(5000)) && req.AdjustmentAccountID == nil &&
			req.StatementDate.Equal(statementDate)
	}), testUserID).Return(&domain.ReconciliationResult{
		BankAccountID:    "bank-1",
		StatementDate:    statementDate,
		StatementBalance: domain.MoneyFromInt(5000),
		LedgerBalance:    domain.MoneyFromInt(5000),
		Adjustment:       domain.ZeroMoney(),
	}, nil).Once()

	w := s.do(http.MethodPost, "/bank-accounts/bank-1/reconciliations", `{
		"statementDate": "2024-03-31", "statementBalance": "5000.00", "narration": "March statement"}`)

	s.Equal(http.StatusOK, w.Code)
	s.NotContains(w.Body.String(), `"entry"`)
	var resp dto.ReconciliationResponse
	s.decode(w, &resp)
	s.True(resp.Adjustment.IsZero())
}

func (s *HandlerTestSuite) TestReconcile_WithAdjustment() {
	entry := testEntry("je-rec", domain.StatusPosted, "50", "50")
	entry.Source = domain.SourceReconciliation
	s.banks.On("Reconcile", mock.Anything, testBizID, "bank-1", mock.Anything, testUserID).
		Return(&domain.ReconciliationResult{
			BankAccountID:    "bank-1",
			StatementBalance: domain.MoneyFromInt(5050),
			LedgerBalance:    domain.MoneyFromInt(5000),
			Adjustment:       domain.MoneyFromInt(50),
			Entry:            entry,
		}, nil).Once()

	w := s.do(http.MethodPost, "/bank-accounts/bank-1/reconciliations", `{
		"statementDate": "2024-03-31T00:00:00Z", "statementBalance": "5050", "narration": "March statement"}`)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ReconciliationResponse
	s.decode(w, &resp)
	s.Equal("50.00", resp.Adjustment.String())
	s.Require().NotNil(resp.Entry)
	s.Equal(domain.SourceReconciliation, resp.Entry.Source)
}
