package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CreateJournalItemRequest is one debit or credit line of a new entry.
type CreateJournalItemRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Type        domain.ItemType `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Amount      domain.Money    `json:"amount" binding:"money_positive" swaggertype:"string" example:"500.00"`
	Description string          `json:"description"`
}

// CreateJournalRequest defines the data needed to create a draft journal entry.
// FinancialYearID defaults to the active year; ReferenceNumber is generated when omitted.
type CreateJournalRequest struct {
	FinancialYearID *string                    `json:"financialYearID"`
	ReferenceNumber *string                    `json:"referenceNumber" binding:"omitempty,max=64"`
	EntryDate       time.Time                  `json:"entryDate" binding:"required" swaggertype:"string" format:"date" example:"2024-03-01"`
	Narration       string                     `json:"narration" binding:"required"`
	Items           []CreateJournalItemRequest `json:"items" binding:"required,min=2,dive"`
}

// ListJournalsParams defines the query parameters for listing journal entries.
type ListJournalsParams struct {
	Status    string  `form:"status" binding:"omitempty,oneof=DRAFT POSTED CANCELLED"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// JournalItemResponse defines the data returned for a journal item.
type JournalItemResponse struct {
	ItemID      string          `json:"itemID"`
	AccountID   string          `json:"accountID"`
	Type        domain.ItemType `json:"type"` // DEBIT or CREDIT
	Amount      domain.Money    `json:"amount" swaggertype:"string"`
	Description string          `json:"description"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	EntryID         string                `json:"entryID"`
	FinancialYearID string                `json:"financialYearID"`
	ReferenceNumber string                `json:"referenceNumber"`
	EntryDate       time.Time             `json:"entryDate"`
	Narration       string                `json:"narration"`
	Status          domain.JournalStatus  `json:"status"`
	Source          domain.EntrySource    `json:"source"`
	TotalDebit      domain.Money          `json:"totalDebit" swaggertype:"string"`
	TotalCredit     domain.Money          `json:"totalCredit" swaggertype:"string"`
	Items           []JournalItemResponse `json:"items"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
	LastUpdatedAt   time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy   string                `json:"lastUpdatedBy"`
}

// ListJournalsResponse is one page of journal entries.
type ListJournalsResponse struct {
	Entries   []JournalResponse `json:"entries"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse DTO.
func ToJournalResponse(e *domain.JournalEntry) JournalResponse {
	items := make([]JournalItemResponse, len(e.Items))
	for i, it := range e.Items {
		items[i] = JournalItemResponse{
			ItemID:      it.ItemID,
			AccountID:   it.AccountID,
			Type:        it.Type,
			Amount:      it.Amount,
			Description: it.Description,
		}
	}
	return JournalResponse{
		EntryID:         e.EntryID,
		FinancialYearID: e.FinancialYearID,
		ReferenceNumber: e.ReferenceNumber,
		EntryDate:       e.EntryDate,
		Narration:       e.Narration,
		Status:          e.Status,
		Source:          e.Source,
		TotalDebit:      e.TotalDebit(),
		TotalCredit:     e.TotalCredit(),
		Items:           items,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt,
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ToListJournalsResponse converts a page of entries.
func ToListJournalsResponse(entries []domain.JournalEntry, nextToken *string) ListJournalsResponse {
	resp := ListJournalsResponse{Entries: make([]JournalResponse, len(entries)), NextToken: nextToken}
	for i := range entries {
		resp.Entries[i] = ToJournalResponse(&entries[i])
	}
	return resp
}
