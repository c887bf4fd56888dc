package mapping

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry, items included, to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	items := make([]models.JournalItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = ToModelJournalItem(it)
	}
	return models.JournalEntry{
		EntryID:         d.EntryID,
		BusinessID:      d.BusinessID,
		FinancialYearID: d.FinancialYearID,
		ReferenceNumber: d.ReferenceNumber,
		EntryDate:       d.EntryDate,
		Narration:       d.Narration,
		Status:          string(d.Status),
		Source:          string(d.Source),
		Items:           items,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry, items included, to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	items := make([]domain.JournalItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = ToDomainJournalItem(it)
	}
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		BusinessID:      m.BusinessID,
		FinancialYearID: m.FinancialYearID,
		ReferenceNumber: m.ReferenceNumber,
		EntryDate:       m.EntryDate,
		Narration:       m.Narration,
		Status:          domain.JournalStatus(m.Status),
		Source:          domain.EntrySource(m.Source),
		Items:           items,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalItem converts a domain JournalItem to a model JournalItem
func ToModelJournalItem(d domain.JournalItem) models.JournalItem {
	return models.JournalItem{
		ItemID:      d.ItemID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		ItemType:    string(d.Type),
		Amount:      d.Amount.Decimal(),
		Description: d.Description,
	}
}

// ToDomainJournalItem converts a model JournalItem to a domain JournalItem
func ToDomainJournalItem(m models.JournalItem) domain.JournalItem {
	return domain.JournalItem{
		ItemID:      m.ItemID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Type:        domain.ItemType(m.ItemType),
		Amount:      domain.NewMoney(m.Amount),
		Description: m.Description,
	}
}
