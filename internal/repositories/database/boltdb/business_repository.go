package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

// BoltBusinessRepository stores businesses and their document counters.
type BoltBusinessRepository struct {
	BaseRepository
}

var _ portsrepo.BusinessRepositoryFacade = (*BoltBusinessRepository)(nil)

// SaveBusiness persists a new business.
func (r *BoltBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m := mapping.ToModelBusiness(business)
	return r.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketBusinesses)
		if err != nil {
			return err
		}
		if b.Get([]byte(m.BusinessID)) != nil {
			return fmt.Errorf("%w: business %s", apperrors.ErrDuplicate, m.BusinessID)
		}
		return putJSON(b, []byte(m.BusinessID), m)
	})
}

func loadBusiness(tx *bolt.Tx, businessID string) (*models.Business, error) {
	b, err := bucket(tx, bucketBusinesses)
	if err != nil {
		return nil, err
	}
	var m models.Business
	found, err := getJSON(b, []byte(businessID), &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("business", businessID)
	}
	return &m, nil
}

// FindBusinessByID retrieves a business by its ID.
func (r *BoltBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	var result *domain.Business
	err := r.view(ctx, func(tx *bolt.Tx) error {
		m, err := loadBusiness(tx, businessID)
		if err != nil {
			return err
		}
		d := mapping.ToDomainBusiness(*m)
		result = &d
		return nil
	})
	return result, err
}

// UpdateBusinessSettings replaces the settings of a business. A suspense
// account must belong to the business, as the foreign key demands in SQL.
func (r *BoltBusinessRepository) UpdateBusinessSettings(ctx context.Context, businessID string, settings domain.BusinessSettings, userID string, now time.Time) error {
	return r.update(ctx, func(tx *bolt.Tx) error {
		m, err := loadBusiness(tx, businessID)
		if err != nil {
			return err
		}
		if settings.SuspenseAccountID != nil {
			accounts, err := bucket(tx, bucketAccounts)
			if err != nil {
				return err
			}
			if accounts.Get(bizKey(businessID, *settings.SuspenseAccountID)) == nil {
				return fmt.Errorf("%w: suspense account %s does not exist", apperrors.ErrInvalidState, *settings.SuspenseAccountID)
			}
		}

		updated := domain.Business{
			BusinessID:  m.BusinessID,
			Name:        m.Name,
			Settings:    settings,
			AuditFields: mapping.ToDomainAuditFields(m.AuditFields),
		}
		updated.Touch(userID, now)

		b, err := bucket(tx, bucketBusinesses)
		if err != nil {
			return err
		}
		return putJSON(b, []byte(businessID), mapping.ToModelBusiness(updated))
	})
}

// NextSequence increments the business's counter for docType. The write
// transaction makes the read-increment-write atomic.
func (r *BoltBusinessRepository) NextSequence(ctx context.Context, businessID string, docType domain.DocumentType) (int64, error) {
	var next int64
	err := r.update(ctx, func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketSequences)
		if err != nil {
			return err
		}
		key := bizKey(businessID, string(docType))
		if v := b.Get(key); v != nil {
			next = int64(binary.BigEndian.Uint64(v))
		}
		next++
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(next))
		if err := b.Put(key, buf); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to advance %s sequence for business %s", docType, businessID), err)
		}
		return nil
	})
	return next, err
}
