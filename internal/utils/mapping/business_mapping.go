package mapping

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/models"
)

// ToModelBusiness flattens a domain Business and its settings into a model Business
func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:          d.BusinessID,
		Name:                d.Name,
		JournalPrefix:       d.Settings.JournalPrefix,
		InvoicePrefix:       d.Settings.InvoicePrefix,
		PurchaseOrderPrefix: d.Settings.PurchaseOrderPrefix,
		CurrencySymbol:      d.Settings.CurrencySymbol,
		DecimalSeparator:    d.Settings.DecimalSeparator,
		ThousandsSeparator:  d.Settings.ThousandsSeparator,
		SuspenseAccountID:   d.Settings.SuspenseAccountID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBusiness converts a model Business to a domain Business
func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID: m.BusinessID,
		Name:       m.Name,
		Settings: domain.BusinessSettings{
			JournalPrefix:       m.JournalPrefix,
			InvoicePrefix:       m.InvoicePrefix,
			PurchaseOrderPrefix: m.PurchaseOrderPrefix,
			CurrencySymbol:      m.CurrencySymbol,
			DecimalSeparator:    m.DecimalSeparator,
			ThousandsSeparator:  m.ThousandsSeparator,
			SuspenseAccountID:   m.SuspenseAccountID,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFinancialYear converts a domain FinancialYear to a model FinancialYear
func ToModelFinancialYear(d domain.FinancialYear) models.FinancialYear {
	return models.FinancialYear{
		FinancialYearID: d.FinancialYearID,
		BusinessID:      d.BusinessID,
		Name:            d.Name,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialYear converts a model FinancialYear to a domain FinancialYear
func ToDomainFinancialYear(m models.FinancialYear) domain.FinancialYear {
	return domain.FinancialYear{
		FinancialYearID: m.FinancialYearID,
		BusinessID:      m.BusinessID,
		Name:            m.Name,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		BusinessID:    d.BusinessID,
		AccountID:     d.AccountID,
		BankName:      d.BankName,
		AccountName:   d.AccountName,
		AccountNumber: d.AccountNumber,
		Branch:        d.Branch,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		BusinessID:    m.BusinessID,
		AccountID:     m.AccountID,
		BankName:      m.BankName,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		Branch:        m.Branch,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
