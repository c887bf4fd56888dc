package mapping

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		BusinessID:   d.BusinessID,
		CategoryID:   d.CategoryID,
		CategoryType: string(d.CategoryType),
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		BusinessID:   m.BusinessID,
		CategoryID:   m.CategoryID,
		CategoryType: domain.AccountCategoryType(m.CategoryType),
		Code:         m.Code,
		Name:         m.Name,
		Description:  m.Description,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelAccountCategory converts a domain AccountCategory to a model AccountCategory
func ToModelAccountCategory(d domain.AccountCategory) models.AccountCategory {
	return models.AccountCategory{
		CategoryID:   d.CategoryID,
		BusinessID:   d.BusinessID,
		Name:         d.Name,
		CategoryType: string(d.Type),
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountCategory converts a model AccountCategory to a domain AccountCategory
func ToDomainAccountCategory(m models.AccountCategory) domain.AccountCategory {
	return domain.AccountCategory{
		CategoryID:  m.CategoryID,
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Type:        domain.AccountCategoryType(m.CategoryType),
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
