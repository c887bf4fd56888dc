package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// FinancialYearReader defines read operations for financial years
type FinancialYearReader interface {
	FindFinancialYearByID(ctx context.Context, businessID, financialYearID string) (*domain.FinancialYear, error)
	FindActiveFinancialYear(ctx context.Context, businessID string) (*domain.FinancialYear, error)
	ListFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error)
}

// FinancialYearWriter defines write operations for financial years
type FinancialYearWriter interface {
	SaveFinancialYear(ctx context.Context, fy domain.FinancialYear) error

	// LockFinancialYears locks every year of the business until the transaction ends.
	LockFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error)

	// SetActiveFinancialYear deactivates every other year of the business and activates the target.
	SetActiveFinancialYear(ctx context.Context, businessID, financialYearID, userID string, now time.Time) error
}

// FinancialYearRepositoryFacade combines all financial-year repository interfaces
type FinancialYearRepositoryFacade interface {
	FinancialYearReader
	FinancialYearWriter
}
