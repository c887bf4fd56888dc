package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
)

// PgxBusinessRepository stores businesses and their document counters.
type PgxBusinessRepository struct {
	BaseRepository
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

const businessColumns = `business_id, name, journal_prefix, invoice_prefix, purchase_order_prefix,
	currency_symbol, decimal_separator, thousands_separator, suspense_account_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBusiness(row rowScanner) (models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.BusinessID,
		&m.Name,
		&m.JournalPrefix,
		&m.InvoicePrefix,
		&m.PurchaseOrderPrefix,
		&m.CurrencySymbol,
		&m.DecimalSeparator,
		&m.ThousandsSeparator,
		&m.SuspenseAccountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBusiness persists a new business.
func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m := mapping.ToModelBusiness(business)
	query := `INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.DB.Exec(ctx, query,
		m.BusinessID, m.Name, m.JournalPrefix, m.InvoicePrefix, m.PurchaseOrderPrefix,
		m.CurrencySymbol, m.DecimalSeparator, m.ThousandsSeparator, m.SuspenseAccountID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "failed to save business %s", m.BusinessID)
}

// FindBusinessByID retrieves a business by its ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1;`
	m, err := scanBusiness(r.DB.QueryRow(ctx, query, businessID))
	if err != nil {
		return nil, mapError(err, "business %s", businessID)
	}
	b := mapping.ToDomainBusiness(m)
	return &b, nil
}

// UpdateBusinessSettings replaces the settings columns of a business.
func (r *PgxBusinessRepository) UpdateBusinessSettings(ctx context.Context, businessID string, settings domain.BusinessSettings, userID string, now time.Time) error {
	query := `
		UPDATE businesses
		SET journal_prefix = $2, invoice_prefix = $3, purchase_order_prefix = $4,
		    currency_symbol = $5, decimal_separator = $6, thousands_separator = $7,
		    suspense_account_id = $8, last_updated_at = $9, last_updated_by = $10
		WHERE business_id = $1;
	`
	tag, err := r.DB.Exec(ctx, query, businessID,
		settings.JournalPrefix, settings.InvoicePrefix, settings.PurchaseOrderPrefix,
		settings.CurrencySymbol, settings.DecimalSeparator, settings.ThousandsSeparator,
		settings.SuspenseAccountID, now, userID,
	)
	if err != nil {
		return mapError(err, "failed to update settings of business %s", businessID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("business", businessID)
	}
	return nil
}

// NextSequence increments the business's counter for docType in a single statement,
// so concurrent callers always receive distinct values.
func (r *PgxBusinessRepository) NextSequence(ctx context.Context, businessID string, docType domain.DocumentType) (int64, error) {
	query := `
		INSERT INTO document_sequences (business_id, document_type, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (business_id, document_type)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int64
	if err := r.DB.QueryRow(ctx, query, businessID, string(docType)).Scan(&next); err != nil {
		return 0, mapError(err, "failed to advance %s sequence for business %s", docType, businessID)
	}
	return next, nil
}
