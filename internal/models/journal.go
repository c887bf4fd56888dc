package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the persisted entry header. Items live in their own table in
// PostgreSQL and are embedded in the record by the bbolt driver.
type JournalEntry struct {
	EntryID         string        `db:"entry_id" json:"entryID"`
	BusinessID      string        `db:"business_id" json:"businessID"`
	FinancialYearID string        `db:"financial_year_id" json:"financialYearID"`
	ReferenceNumber string        `db:"reference_number" json:"referenceNumber"`
	EntryDate       time.Time     `db:"entry_date" json:"entryDate"`
	Narration       string        `db:"narration" json:"narration"`
	Status          string        `db:"status" json:"status"`
	Source          string        `db:"source" json:"source"`
	Items           []JournalItem `db:"-" json:"items"`
	AuditFields
}

// JournalItem is one debit or credit line.
type JournalItem struct {
	ItemID      string          `db:"item_id" json:"itemID"`
	EntryID     string          `db:"entry_id" json:"entryID"`
	AccountID   string          `db:"account_id" json:"accountID"`
	ItemType    string          `db:"item_type" json:"itemType"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Description string          `db:"description" json:"description"`
}
