package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// BusinessSvcFacade manages tenants, their settings and document numbering.
type BusinessSvcFacade interface {
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error)
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	UpdateSettings(ctx context.Context, businessID string, req dto.UpdateSettingsRequest, userID string) (*domain.Business, error)

	// NextReference issues the next "{prefix}{n}" reference for a document type.
	NextReference(ctx context.Context, businessID string, docType domain.DocumentType) (string, error)
}
