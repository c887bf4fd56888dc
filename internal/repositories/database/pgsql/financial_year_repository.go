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

// PgxFinancialYearRepository stores financial years. The partial unique index
// uq_financial_years_one_active backs the one-active-year rule.
type PgxFinancialYearRepository struct {
	BaseRepository
}

var _ portsrepo.FinancialYearRepositoryFacade = (*PgxFinancialYearRepository)(nil)

const financialYearColumns = `financial_year_id, business_id, name, start_date, end_date, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanFinancialYear(row rowScanner) (models.FinancialYear, error) {
	var m models.FinancialYear
	err := row.Scan(&m.FinancialYearID, &m.BusinessID, &m.Name, &m.StartDate, &m.EndDate, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxFinancialYearRepository) queryYears(ctx context.Context, query string, args ...any) ([]domain.FinancialYear, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to query financial years")
	}
	defer rows.Close()

	years := []domain.FinancialYear{}
	for rows.Next() {
		m, err := scanFinancialYear(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan financial year")
		}
		years = append(years, mapping.ToDomainFinancialYear(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating financial years")
	}
	return years, nil
}

// SaveFinancialYear inserts a new financial year.
func (r *PgxFinancialYearRepository) SaveFinancialYear(ctx context.Context, fy domain.FinancialYear) error {
	m := mapping.ToModelFinancialYear(fy)
	query := `INSERT INTO financial_years (` + financialYearColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := r.DB.Exec(ctx, query, m.FinancialYearID, m.BusinessID, m.Name, m.StartDate, m.EndDate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return mapError(err, "financial year %s", m.Name)
}

// FindFinancialYearByID retrieves a year owned by the business.
func (r *PgxFinancialYearRepository) FindFinancialYearByID(ctx context.Context, businessID, financialYearID string) (*domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years WHERE business_id = $1 AND financial_year_id = $2;`
	m, err := scanFinancialYear(r.DB.QueryRow(ctx, query, businessID, financialYearID))
	if err != nil {
		return nil, mapError(err, "financial year %s", financialYearID)
	}
	fy := mapping.ToDomainFinancialYear(m)
	return &fy, nil
}

// FindActiveFinancialYear retrieves the business's active year.
func (r *PgxFinancialYearRepository) FindActiveFinancialYear(ctx context.Context, businessID string) (*domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years WHERE business_id = $1 AND is_active;`
	m, err := scanFinancialYear(r.DB.QueryRow(ctx, query, businessID))
	if err != nil {
		return nil, mapError(err, "active financial year of business %s", businessID)
	}
	fy := mapping.ToDomainFinancialYear(m)
	return &fy, nil
}

// ListFinancialYears retrieves the business's years, earliest first.
func (r *PgxFinancialYearRepository) ListFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years WHERE business_id = $1 ORDER BY start_date;`
	return r.queryYears(ctx, query, businessID)
}

// LockFinancialYears selects every year of the business FOR UPDATE so that
// concurrent activations serialise.
func (r *PgxFinancialYearRepository) LockFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years WHERE business_id = $1 ORDER BY start_date FOR UPDATE;`
	return r.queryYears(ctx, query, businessID)
}

// SetActiveFinancialYear deactivates the others first so the partial unique
// index never sees two active rows.
func (r *PgxFinancialYearRepository) SetActiveFinancialYear(ctx context.Context, businessID, financialYearID, userID string, now time.Time) error {
	deactivate := `
		UPDATE financial_years
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1 AND financial_year_id <> $2 AND is_active;
	`
	if _, err := r.DB.Exec(ctx, deactivate, businessID, financialYearID, now, userID); err != nil {
		return mapError(err, "failed to deactivate financial years of business %s", businessID)
	}

	activate := `
		UPDATE financial_years
		SET is_active = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1 AND financial_year_id = $2;
	`
	tag, err := r.DB.Exec(ctx, activate, businessID, financialYearID, now, userID)
	if err != nil {
		return mapError(err, "failed to activate financial year %s", financialYearID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("financial year", financialYearID)
	}
	return nil
}
