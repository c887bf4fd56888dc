package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestTrialBalance_AsOf() {
	asOf := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	s.reporting.On("TrialBalance", mock.Anything, testBizID, asOf).Return(&domain.TrialBalance{
		AsOf: asOf,
		Rows: []domain.TrialBalanceRow{
			{AccountID: "cash", Code: "1000", AccountName: "Cash", CategoryType: domain.Asset, Debit: domain.MoneyFromInt(1300), Credit: domain.ZeroMoney()},
			{AccountID: "capital", Code: "3000", AccountName: "Capital", CategoryType: domain.Equity, Debit: domain.ZeroMoney(), Credit: domain.MoneyFromInt(1300)},
		},
		TotalDebit:  domain.MoneyFromInt(1300),
		TotalCredit: domain.MoneyFromInt(1300),
	}, nil).Once()

	w := s.do(http.MethodGet, "/reports/trial-balance?asOf=2024-12-31", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	s.decode(w, &resp)
	s.Equal("2024-12-31", resp.AsOf)
	s.Len(resp.Rows, 2)
	s.Equal("ASSET", resp.Rows[0].AccountType)
	s.True(resp.Totals.Debit.Equal(resp.Totals.Credit))
}

func (s *HandlerTestSuite) TestTrialBalance_DefaultsToToday() {
	s.reporting.On("TrialBalance", mock.Anything, testBizID, mock.MatchedBy(func(asOf time.Time) bool {
		now := time.Now().UTC()
		return asOf.Hour() == 0 && asOf.Minute() == 0 && now.Sub(asOf) < 48*time.Hour && !asOf.After(now)
	})).Return(&domain.TrialBalance{AsOf: time.Now().UTC()}, nil).Once()

	w := s.do(http.MethodGet, "/reports/trial-balance", nil)

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestProfitAndLoss() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	s.reporting.On("ProfitAndLoss", mock.Anything, testBizID, from, to).Return(&domain.ProfitAndLoss{
		From:          from,
		To:            to,
		Revenue:       []domain.AccountAmount{{AccountID: "sales", Code: "4000", Name: "Sales", NetAmount: domain.MoneyFromInt(300)}},
		Expenses:      []domain.AccountAmount{{AccountID: "rent", Code: "5000", Name: "Rent", NetAmount: domain.MoneyFromInt(100)}},
		TotalRevenue:  domain.MoneyFromInt(300),
		TotalExpenses: domain.MoneyFromInt(100),
		NetProfit:     domain.MoneyFromInt(200),
	}, nil).Once()

	w := s.do(http.MethodGet, "/reports/profit-and-loss?from=2024-01-01&to=2024-03-31", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ProfitAndLossResponse
	s.decode(w, &resp)
	s.Equal("200.00", resp.NetProfit.String())
	s.Equal("2024-01-01", resp.FromDate)
}

func (s *HandlerTestSuite) TestProfitAndLoss_InvertedRange() {
	w := s.do(http.MethodGet, "/reports/profit-and-loss?from=2024-04-01&to=2024-03-31", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestBalanceSheet_UnknownBusiness() {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	s.reporting.On("BalanceSheet", mock.Anything, testBizID, asOf).
		Return(nil, apperrors.NewNotFoundError("business", testBizID)).Once()

	w := s.do(http.MethodGet, "/reports/balance-sheet?asOf=2024-06-30", nil)

	s.Equal(http.StatusNotFound, w.Code)
}
