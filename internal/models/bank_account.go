package models

// BankAccount is the persisted bank wrapper around an asset account.
type BankAccount struct {
	BankAccountID string `db:"bank_account_id" json:"bankAccountID"`
	BusinessID    string `db:"business_id" json:"businessID"`
	AccountID     string `db:"account_id" json:"accountID"`
	BankName      string `db:"bank_name" json:"bankName"`
	AccountName   string `db:"account_name" json:"accountName"`
	AccountNumber string `db:"account_number" json:"accountNumber"`
	Branch        string `db:"branch" json:"branch"`
	IsActive      bool   `db:"is_active" json:"isActive"`
	AuditFields
}
