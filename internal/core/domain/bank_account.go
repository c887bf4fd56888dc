package domain

import "time"

// BankAccount wraps an ASSET account with bank metadata. Its balance is the
// ledger balance of AccountID and is never stored.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"`
	BusinessID    string `json:"businessID"`
	AccountID     string `json:"accountID"`
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Branch        string `json:"branch"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// BankAccountWithBalance pairs a bank account with its computed balance.
type BankAccountWithBalance struct {
	BankAccount
	Balance Money `json:"balance"`
}

// ReconciliationResult describes the outcome of reconciling against a bank statement.
// Entry is nil when the ledger already agreed with the statement.
type ReconciliationResult struct {
	BankAccountID    string        `json:"bankAccountID"`
	StatementDate    time.Time     `json:"statementDate"`
	StatementBalance Money         `json:"statementBalance"`
	LedgerBalance    Money         `json:"ledgerBalance"`
	Adjustment       Money         `json:"adjustment"`
	Entry            *JournalEntry `json:"entry,omitempty"`
}
