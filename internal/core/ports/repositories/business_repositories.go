package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// BusinessReader defines read operations for business data
type BusinessReader interface {
	// FindBusinessByID retrieves a specific business by its ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
}

// BusinessWriter defines write operations for business data
type BusinessWriter interface {
	// SaveBusiness persists a new business.
	SaveBusiness(ctx context.Context, business domain.Business) error

	// UpdateBusinessSettings replaces a business's settings.
	UpdateBusinessSettings(ctx context.Context, businessID string, settings domain.BusinessSettings, userID string, now time.Time) error
}

// SequenceGenerator hands out per-business, per-document counters.
type SequenceGenerator interface {
	// NextSequence atomically increments and returns the counter, starting at 1.
	NextSequence(ctx context.Context, businessID string, docType domain.DocumentType) (int64, error)
}

// BusinessRepositoryFacade combines all business-related repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
	SequenceGenerator
}
