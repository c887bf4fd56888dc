package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/google/uuid"
)

type financialYearService struct {
	BaseService
}

// NewFinancialYearService creates a new FinancialYearService.
func NewFinancialYearService(base BaseService) *financialYearService {
	return &financialYearService{BaseService: base}
}

func (s *financialYearService) CreateFinancialYear(ctx context.Context, businessID string, req dto.CreateFinancialYearRequest, userID string) (*domain.FinancialYear, error) {
	fy := domain.FinancialYear{
		FinancialYearID: uuid.NewString(),
		BusinessID:      businessID,
		Name:            strings.TrimSpace(req.Name),
		StartDate:       domain.DateOnly(req.StartDate),
		EndDate:         domain.DateOnly(req.EndDate),
		AuditFields:     domain.NewAuditFields(userID, s.now()),
	}
	if err := fy.Validate(); err != nil {
		return nil, err
	}

	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if req.Activate {
			if _, err := repos.FinancialYearRepo.LockFinancialYears(ctx, businessID); err != nil {
				return err
			}
		}
		if err := repos.FinancialYearRepo.SaveFinancialYear(ctx, fy); err != nil {
			return err
		}
		if req.Activate {
			if err := repos.FinancialYearRepo.SetActiveFinancialYear(ctx, businessID, fy.FinancialYearID, userID, fy.CreatedAt); err != nil {
				return err
			}
			fy.IsActive = true
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create financial year", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Financial year created",
		slog.String("financial_year_id", fy.FinancialYearID), slog.Bool("is_active", fy.IsActive))
	return &fy, nil
}

func (s *financialYearService) GetFinancialYear(ctx context.Context, businessID string, financialYearID string) (*domain.FinancialYear, error) {
	fy, err := s.repos.FinancialYearRepo.FindFinancialYearByID(ctx, businessID, financialYearID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find financial year", slog.String("financial_year_id", financialYearID))
		return nil, err
	}
	return fy, nil
}

func (s *financialYearService) ListFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error) {
	years, err := s.repos.FinancialYearRepo.ListFinancialYears(ctx, businessID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list financial years", slog.String("business_id", businessID))
		return nil, err
	}
	return years, nil
}

func (s *financialYearService) GetActiveFinancialYear(ctx context.Context, businessID string) (*domain.FinancialYear, error) {
	fy, err := s.repos.FinancialYearRepo.FindActiveFinancialYear(ctx, businessID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find active financial year", slog.String("business_id", businessID))
		return nil, err
	}
	return fy, nil
}

// ActivateFinancialYear locks the business's years so two concurrent
// activations cannot both leave a year active.
func (s *financialYearService) ActivateFinancialYear(ctx context.Context, businessID string, financialYearID string, userID string) (*domain.FinancialYear, error) {
	var activated *domain.FinancialYear
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		years, err := repos.FinancialYearRepo.LockFinancialYears(ctx, businessID)
		if err != nil {
			return err
		}
		found := false
		for _, fy := range years {
			if fy.FinancialYearID == financialYearID {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewNotFoundError("financial year", financialYearID)
		}

		if err := repos.FinancialYearRepo.SetActiveFinancialYear(ctx, businessID, financialYearID, userID, s.now()); err != nil {
			return err
		}
		activated, err = repos.FinancialYearRepo.FindFinancialYearByID(ctx, businessID, financialYearID)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to activate financial year", slog.String("financial_year_id", financialYearID))
		return nil, err
	}

	s.LogInfo(ctx, "Financial year activated", slog.String("financial_year_id", financialYearID))
	return activated, nil
}
