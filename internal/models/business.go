package models

// Business is the persisted tenant row. Settings are flattened into columns.
type Business struct {
	BusinessID          string  `db:"business_id" json:"businessID"`
	Name                string  `db:"name" json:"name"`
	JournalPrefix       string  `db:"journal_prefix" json:"journalPrefix"`
	InvoicePrefix       string  `db:"invoice_prefix" json:"invoicePrefix"`
	PurchaseOrderPrefix string  `db:"purchase_order_prefix" json:"purchaseOrderPrefix"`
	CurrencySymbol      string  `db:"currency_symbol" json:"currencySymbol"`
	DecimalSeparator    string  `db:"decimal_separator" json:"decimalSeparator"`
	ThousandsSeparator  string  `db:"thousands_separator" json:"thousandsSeparator"`
	SuspenseAccountID   *string `db:"suspense_account_id" json:"suspenseAccountID,omitempty"`
	AuditFields
}
