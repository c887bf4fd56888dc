package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
)

// reportingService implements the ReportingService interface. Every report is
// derived from the same per-account totals of posted items.
type reportingService struct {
	BaseService
}

// NewReportingService creates a new reporting service.
func NewReportingService(base BaseService) *reportingService {
	return &reportingService{BaseService: base}
}

// TrialBalance lists every account with posted activity up to asOf.
func (s *reportingService) TrialBalance(ctx context.Context, businessID string, asOf time.Time) (*domain.TrialBalance, error) {
	asOf = domain.DateOnly(asOf)
	totals, err := s.totals(ctx, businessID, nil, &asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalance{
		AsOf:        asOf,
		Rows:        make([]domain.TrialBalanceRow, 0, len(totals)),
		TotalDebit:  domain.ZeroMoney(),
		TotalCredit: domain.ZeroMoney(),
	}
	for _, t := range totals {
		if t.Debit.IsZero() && t.Credit.IsZero() {
			continue
		}
		balance, err := accounting.NormalBalance(t.CategoryType, t.Debit, t.Credit)
		if err != nil {
			return nil, err
		}
		debit, credit := accounting.TrialBalanceColumns(t.CategoryType, balance)
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:    t.AccountID,
			Code:         t.Code,
			AccountName:  t.Name,
			CategoryType: t.CategoryType,
			Debit:        debit,
			Credit:       credit,
		})
		report.TotalDebit = report.TotalDebit.Add(debit)
		report.TotalCredit = report.TotalCredit.Add(credit)
	}

	if !report.TotalDebit.Balances(report.TotalCredit) {
		// Every posted entry balances, so this means the stored data is corrupt.
		s.LogError(ctx, apperrors.ErrUnbalancedEntry, "Trial balance does not balance",
			slog.String("business_id", businessID),
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	return report, nil
}

// ProfitAndLoss covers revenue and expense movement dated within [from, to].
func (s *reportingService) ProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.ProfitAndLoss, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return nil, apperrors.NewValidationError("report end date %s is before start date %s",
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	totals, err := s.totals(ctx, businessID, &from, &to)
	if err != nil {
		return nil, err
	}

	report := &domain.ProfitAndLoss{
		From:     from,
		To:       to,
		Revenue:  []domain.AccountAmount{},
		Expenses: []domain.AccountAmount{},
	}
	report.TotalRevenue, report.Revenue, err = section(totals, domain.Revenue)
	if err != nil {
		return nil, err
	}
	report.TotalExpenses, report.Expenses, err = section(totals, domain.Expense)
	if err != nil {
		return nil, err
	}
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)
	return report, nil
}

// BalanceSheet reports balances as of asOf. Revenue and expense to date are
// folded into equity as retained earnings, so assets equal liabilities plus equity.
func (s *reportingService) BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheet, error) {
	asOf = domain.DateOnly(asOf)
	totals, err := s.totals(ctx, businessID, nil, &asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheet{AsOf: asOf}
	if report.TotalAssets, report.Assets, err = section(totals, domain.Asset); err != nil {
		return nil, err
	}
	if report.TotalLiabilities, report.Liabilities, err = section(totals, domain.Liability); err != nil {
		return nil, err
	}
	var equity domain.Money
	if equity, report.Equity, err = section(totals, domain.Equity); err != nil {
		return nil, err
	}
	revenue, _, err := section(totals, domain.Revenue)
	if err != nil {
		return nil, err
	}
	expenses, _, err := section(totals, domain.Expense)
	if err != nil {
		return nil, err
	}
	report.RetainedEarnings = revenue.Sub(expenses)
	report.TotalEquity = equity.Add(report.RetainedEarnings)

	if !report.TotalAssets.Balances(report.TotalLiabilities.Add(report.TotalEquity)) {
		s.LogError(ctx, apperrors.ErrUnbalancedEntry, "Balance sheet does not balance",
			slog.String("business_id", businessID),
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("liabilities_and_equity", report.TotalLiabilities.Add(report.TotalEquity).String()))
	}
	return report, nil
}

func (s *reportingService) totals(ctx context.Context, businessID string, from, to *time.Time) ([]domain.AccountTotals, error) {
	if _, err := s.repos.BusinessRepo.FindBusinessByID(ctx, businessID); err != nil {
		s.logFailure(ctx, err, "Failed to find business for report", slog.String("business_id", businessID))
		return nil, err
	}
	totals, err := s.repos.LedgerRepo.AccountTotals(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate account totals", slog.String("business_id", businessID))
		return nil, err
	}
	return totals, nil
}

// section collects the accounts of one category type that have activity,
// with their normal balances and the section total.
func section(totals []domain.AccountTotals, categoryType domain.AccountCategoryType) (domain.Money, []domain.AccountAmount, error) {
	sum := domain.ZeroMoney()
	rows := []domain.AccountAmount{}
	for _, t := range totals {
		if t.CategoryType != categoryType || (t.Debit.IsZero() && t.Credit.IsZero()) {
			continue
		}
		net, err := accounting.NormalBalance(t.CategoryType, t.Debit, t.Credit)
		if err != nil {
			return domain.ZeroMoney(), nil, err
		}
		rows = append(rows, domain.AccountAmount{AccountID: t.AccountID, Code: t.Code, Name: t.Name, NetAmount: net})
		sum = sum.Add(net)
	}
	return sum, rows, nil
}
