package services

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// LedgerSvc computes balances from posted journal items. Nothing it returns is stored.
type LedgerSvc interface {
	// BalanceOf returns the account's balance under its normal-balance sign
	// convention, counting entries dated on or before asOf when given.
	BalanceOf(ctx context.Context, businessID string, accountID string, asOf *time.Time) (domain.Money, error)

	// AccountStatement lists the account's posted lines within [from, to] with a running balance.
	AccountStatement(ctx context.Context, businessID string, accountID string, from, to *time.Time) (*domain.AccountStatement, error)
}
