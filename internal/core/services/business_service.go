package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/google/uuid"
)

// businessService manages tenants and their document numbering.
type businessService struct {
	BaseService
}

// NewBusinessService creates a new business service.
func NewBusinessService(base BaseService) *businessService {
	return &businessService{BaseService: base}
}

func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("business name is required")
	}

	business := domain.Business{
		BusinessID:  uuid.NewString(),
		Name:        name,
		Settings:    domain.DefaultBusinessSettings(),
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.repos.BusinessRepo.SaveBusiness(ctx, business); err != nil {
		s.logFailure(ctx, err, "Failed to save business", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Business created", slog.String("business_id", business.BusinessID))
	return &business, nil
}

func (s *businessService) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.repos.BusinessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find business", slog.String("business_id", businessID))
		return nil, err
	}
	return business, nil
}

// UpdateSettings merges the provided fields into the current settings. An empty
// suspense account id clears the setting.
func (s *businessService) UpdateSettings(ctx context.Context, businessID string, req dto.UpdateSettingsRequest, userID string) (*domain.Business, error) {
	var updated *domain.Business
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		business, err := repos.BusinessRepo.FindBusinessByID(ctx, businessID)
		if err != nil {
			return err
		}

		settings := business.Settings
		setIfPresent(&settings.JournalPrefix, req.JournalPrefix)
		setIfPresent(&settings.InvoicePrefix, req.InvoicePrefix)
		setIfPresent(&settings.PurchaseOrderPrefix, req.PurchaseOrderPrefix)
		setIfPresent(&settings.CurrencySymbol, req.CurrencySymbol)
		setIfPresent(&settings.DecimalSeparator, req.DecimalSeparator)
		setIfPresent(&settings.ThousandsSeparator, req.ThousandsSeparator)

		if settings.DecimalSeparator == "" {
			return apperrors.NewValidationError("decimal separator is required")
		}
		if settings.DecimalSeparator == settings.ThousandsSeparator {
			return apperrors.NewValidationError("decimal and thousands separators must differ")
		}

		if req.SuspenseAccountID != nil {
			if *req.SuspenseAccountID == "" {
				settings.SuspenseAccountID = nil
			} else {
				if _, err := repos.AccountRepo.FindAccountByID(ctx, businessID, *req.SuspenseAccountID); err != nil {
					return err
				}
				id := *req.SuspenseAccountID
				settings.SuspenseAccountID = &id
			}
		}

		now := s.now()
		if err := repos.BusinessRepo.UpdateBusinessSettings(ctx, businessID, settings, userID, now); err != nil {
			return err
		}
		business.Settings = settings
		business.Touch(userID, now)
		updated = business
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update business settings", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Business settings updated", slog.String("business_id", businessID))
	return updated, nil
}

func (s *businessService) NextReference(ctx context.Context, businessID string, docType domain.DocumentType) (string, error) {
	if !docType.IsValid() {
		return "", apperrors.NewValidationError("unknown document type %q", docType)
	}
	var ref string
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		ref, err = nextReference(ctx, repos, businessID, docType)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to issue reference number",
			slog.String("business_id", businessID), slog.String("document_type", string(docType)))
		return "", err
	}
	return ref, nil
}

// nextReference advances the business's counter for docType and formats it
// with the configured prefix. It must run inside a transaction.
func nextReference(ctx context.Context, repos portsrepo.RepositoryProvider, businessID string, docType domain.DocumentType) (string, error) {
	business, err := repos.BusinessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return "", err
	}
	seq, err := repos.BusinessRepo.NextSequence(ctx, businessID, docType)
	if err != nil {
		return "", fmt.Errorf("failed to advance %s sequence: %w", docType, err)
	}
	return business.Settings.Prefix(docType) + strconv.FormatInt(seq, 10), nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
