package services

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// ReportingService derives financial statements from posted journal items.
// Draft and cancelled entries never contribute.
type ReportingService interface {
	// TrialBalance lists every account with posted activity on or before asOf.
	TrialBalance(ctx context.Context, businessID string, asOf time.Time) (*domain.TrialBalance, error)

	// ProfitAndLoss nets revenue and expense movement dated within [from, to].
	ProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.ProfitAndLoss, error)

	BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheet, error)
}
