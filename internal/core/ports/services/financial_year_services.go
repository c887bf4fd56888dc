package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// FinancialYearSvcFacade manages accounting periods.
type FinancialYearSvcFacade interface {
	CreateFinancialYear(ctx context.Context, businessID string, req dto.CreateFinancialYearRequest, userID string) (*domain.FinancialYear, error)
	GetFinancialYear(ctx context.Context, businessID string, financialYearID string) (*domain.FinancialYear, error)
	ListFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error)
	GetActiveFinancialYear(ctx context.Context, businessID string) (*domain.FinancialYear, error)

	// ActivateFinancialYear makes the year the only active one of the business.
	ActivateFinancialYear(ctx context.Context, businessID string, financialYearID string, userID string) (*domain.FinancialYear, error)
}
