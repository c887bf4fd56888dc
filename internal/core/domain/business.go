package domain

// Business is the tenant. Every other record carries its BusinessID.
type Business struct {
	BusinessID string           `json:"businessID"`
	Name       string           `json:"name"`
	Settings   BusinessSettings `json:"settings"`
	AuditFields
}

// BusinessSettings holds per-business document prefixes and display preferences.
type BusinessSettings struct {
	JournalPrefix       string  `json:"journalPrefix"`
	InvoicePrefix       string  `json:"invoicePrefix"`
	PurchaseOrderPrefix string  `json:"purchaseOrderPrefix"`
	CurrencySymbol      string  `json:"currencySymbol"`
	DecimalSeparator    string  `json:"decimalSeparator"`
	ThousandsSeparator  string  `json:"thousandsSeparator"`
	SuspenseAccountID   *string `json:"suspenseAccountID,omitempty"`
}

// DefaultBusinessSettings returns the settings a new business starts with.
func DefaultBusinessSettings() BusinessSettings {
	return BusinessSettings{
		JournalPrefix:       "JE-",
		InvoicePrefix:       "INV-",
		PurchaseOrderPrefix: "PO-",
		CurrencySymbol:      "৳",
		DecimalSeparator:    ".",
		ThousandsSeparator:  ",",
	}
}

// DocumentType identifies a numbered document series.
type DocumentType string

const (
	DocJournalEntry  DocumentType = "JOURNAL_ENTRY"
	DocInvoice       DocumentType = "INVOICE"
	DocPurchaseOrder DocumentType = "PURCHASE_ORDER"
)

// IsValid reports whether d is a known document type.
func (d DocumentType) IsValid() bool {
	switch d {
	case DocJournalEntry, DocInvoice, DocPurchaseOrder:
		return true
	}
	return false
}

// Prefix returns the configured prefix for a document type.
func (s BusinessSettings) Prefix(d DocumentType) string {
	switch d {
	case DocJournalEntry:
		return s.JournalPrefix
	case DocInvoice:
		return s.InvoicePrefix
	case DocPurchaseOrder:
		return s.PurchaseOrderPrefix
	}
	return ""
}
