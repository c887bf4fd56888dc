package boltdb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

// BoltFinancialYearRepository stores financial years.
type BoltFinancialYearRepository struct {
	BaseRepository
}

var _ portsrepo.FinancialYearRepositoryFacade = (*BoltFinancialYearRepository)(nil)

func loadFinancialYears(tx *bolt.Tx, businessID string) ([]models.FinancialYear, error) {
	years, err := decodeAll[models.FinancialYear](tx, bucketFinancialYears, businessID)
	if err != nil {
		return nil, err
	}
	sort.Slice(years, func(i, j int) bool { return years[i].StartDate.Before(years[j].StartDate) })
	return years, nil
}

func toDomainFinancialYears(ms []models.FinancialYear) []domain.FinancialYear {
	years := make([]domain.FinancialYear, len(ms))
	for i, m := range ms {
		years[i] = mapping.ToDomainFinancialYear(m)
	}
	return years
}

// SaveFinancialYear inserts a new financial year. At most one year per
// business may be active.
func (r *BoltFinancialYearRepository) SaveFinancialYear(ctx context.Context, fy domain.FinancialYear) error {
	m := mapping.ToModelFinancialYear(fy)
	return r.update(ctx, func(tx *bolt.Tx) error {
		if !m.EndDate.After(m.StartDate) {
			return apperrors.NewValidationError("financial year %s must end after it starts", m.Name)
		}
		if _, err := loadBusiness(tx, m.BusinessID); err != nil {
			return fmt.Errorf("%w: business %s does not exist", apperrors.ErrInvalidState, m.BusinessID)
		}
		if m.IsActive {
			years, err := loadFinancialYears(tx, m.BusinessID)
			if err != nil {
				return err
			}
			for _, y := range years {
				if y.IsActive {
					return fmt.Errorf("%w: business %s already has an active financial year", apperrors.ErrDuplicate, m.BusinessID)
				}
			}
		}
		b, err := bucket(tx, bucketFinancialYears)
		if err != nil {
			return err
		}
		key := bizKey(m.BusinessID, m.FinancialYearID)
		if b.Get(key) != nil {
			return fmt.Errorf("%w: financial year %s", apperrors.ErrDuplicate, m.FinancialYearID)
		}
		return putJSON(b, key, m)
	})
}

// FindFinancialYearByID retrieves a year owned by the business.
func (r *BoltFinancialYearRepository) FindFinancialYearByID(ctx context.Context, businessID, financialYearID string) (*domain.FinancialYear, error) {
	var result *domain.FinancialYear
	err := r.view(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketFinancialYears)
		if err != nil {
			return err
		}
		var m models.FinancialYear
		found, err := getJSON(b, bizKey(businessID, financialYearID), &m)
		if err != nil {
			return err
		}
		if !found {
			return apperrors.NewNotFoundError("financial year", financialYearID)
		}
		fy := mapping.ToDomainFinancialYear(m)
		result = &fy
		return nil
	})
	return result, err
}

// FindActiveFinancialYear retrieves the business's active year.
func (r *BoltFinancialYearRepository) FindActiveFinancialYear(ctx context.Context, businessID string) (*domain.FinancialYear, error) {
	years, err := r.ListFinancialYears(ctx, businessID)
	if err != nil {
		return nil, err
	}
	for i := range years {
		if years[i].IsActive {
			return &years[i], nil
		}
	}
	return nil, fmt.Errorf("%w: active financial year of business %s", apperrors.ErrNotFound, businessID)
}

// ListFinancialYears retrieves the business's years, earliest first.
func (r *BoltFinancialYearRepository) ListFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error) {
	var ms []models.FinancialYear
	err := r.view(ctx, func(tx *bolt.Tx) error {
		var err error
		ms, err = loadFinancialYears(tx, businessID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toDomainFinancialYears(ms), nil
}

// LockFinancialYears returns every year of the business. bbolt holds a single
// writer, so running inside WithTx already excludes concurrent activations.
func (r *BoltFinancialYearRepository) LockFinancialYears(ctx context.Context, businessID string) ([]domain.FinancialYear, error) {
	var ms []models.FinancialYear
	err := r.update(ctx, func(tx *bolt.Tx) error {
		var err error
		ms, err = loadFinancialYears(tx, businessID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toDomainFinancialYears(ms), nil
}

// SetActiveFinancialYear deactivates every other year of the business and activates the target.
func (r *BoltFinancialYearRepository) SetActiveFinancialYear(ctx context.Context, businessID, financialYearID, userID string, now time.Time) error {
	return r.update(ctx, func(tx *bolt.Tx) error {
		years, err := loadFinancialYears(tx, businessID)
		if err != nil {
			return err
		}
		found := false
		for _, y := range years {
			if y.FinancialYearID == financialYearID {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewNotFoundError("financial year", financialYearID)
		}

		b, err := bucket(tx, bucketFinancialYears)
		if err != nil {
			return err
		}
		for _, y := range years {
			want := y.FinancialYearID == financialYearID
			if y.IsActive == want {
				continue
			}
			y.IsActive = want
			y.LastUpdatedAt = now
			y.LastUpdatedBy = userID
			if err := putJSON(b, bizKey(businessID, y.FinancialYearID), y); err != nil {
				return err
			}
		}
		return nil
	})
}
