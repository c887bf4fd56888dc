package domain

import "time"

// AccountTotals is the raw per-account aggregate of posted items that every
// balance-derived view is computed from.
type AccountTotals struct {
	AccountID    string              `json:"accountID"`
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	CategoryType AccountCategoryType `json:"categoryType"`
	Debit        Money               `json:"debit"`
	Credit       Money               `json:"credit"`
}

// TrialBalanceRow represents a single row in a trial balance report.
// Exactly one of Debit and Credit is non-zero unless the account nets to zero.
type TrialBalanceRow struct {
	AccountID    string              `json:"accountID"`
	Code         string              `json:"code"`
	AccountName  string              `json:"accountName"`
	CategoryType AccountCategoryType `json:"categoryType"`
	Debit        Money               `json:"debit"`
	Credit       Money               `json:"credit"`
}

// TrialBalance is the full report with column totals.
type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  Money             `json:"totalDebit"`
	TotalCredit Money             `json:"totalCredit"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID string `json:"accountID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	NetAmount Money  `json:"netAmount"`
}

// ProfitAndLoss covers revenue and expense movement within a date range.
type ProfitAndLoss struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  Money           `json:"totalRevenue"`
	TotalExpenses Money           `json:"totalExpenses"`
	NetProfit     Money           `json:"netProfit"`
}

// BalanceSheet lists asset, liability and equity balances as of a date.
// RetainedEarnings is the net of all revenue and expense to that date.
type BalanceSheet struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	RetainedEarnings Money           `json:"retainedEarnings"`
	TotalAssets      Money           `json:"totalAssets"`
	TotalLiabilities Money           `json:"totalLiabilities"`
	TotalEquity      Money           `json:"totalEquity"`
}

// PostedLine is one posted journal item joined with its entry header.
type PostedLine struct {
	EntryID         string    `json:"entryID"`
	ReferenceNumber string    `json:"referenceNumber"`
	EntryDate       time.Time `json:"entryDate"`
	Narration       string    `json:"narration"`
	ItemID          string    `json:"itemID"`
	Type            ItemType  `json:"type"`
	Amount          Money     `json:"amount"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
}

// StatementLine is a PostedLine with the account's running balance after it.
type StatementLine struct {
	PostedLine
	Balance Money `json:"balance"`
}

// AccountStatement is the ledger view of one account over a date range.
type AccountStatement struct {
	Account        Account         `json:"account"`
	From           *time.Time      `json:"from,omitempty"`
	To             *time.Time      `json:"to,omitempty"`
	OpeningBalance Money           `json:"openingBalance"`
	Lines          []StatementLine `json:"lines"`
	ClosingBalance Money           `json:"closingBalance"`
}
