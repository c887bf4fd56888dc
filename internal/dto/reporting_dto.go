package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// ReportDateParams are the date query parameters shared by reports, as YYYY-MM-DD.
type ReportDateParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string       `json:"accountID"`
	Code        string       `json:"code"`
	AccountName string       `json:"accountName"`
	AccountType string       `json:"accountType"`
	Debit       domain.Money `json:"debit" swaggertype:"string"`
	Credit      domain.Money `json:"credit" swaggertype:"string"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  domain.Money `json:"debit" swaggertype:"string"`
		Credit domain.Money `json:"credit" swaggertype:"string"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string       `json:"accountID"`
	Code      string       `json:"code"`
	Name      string       `json:"name"`
	Amount    domain.Money `json:"amount" swaggertype:"string"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate      string                  `json:"fromDate"`
	ToDate        string                  `json:"toDate"`
	Revenue       []AccountAmountResponse `json:"revenue"`
	Expenses      []AccountAmountResponse `json:"expenses"`
	TotalRevenue  domain.Money            `json:"totalRevenue" swaggertype:"string"`
	TotalExpenses domain.Money            `json:"totalExpenses" swaggertype:"string"`
	NetProfit     domain.Money            `json:"netProfit" swaggertype:"string"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf             string                  `json:"asOf"`
	Assets           []AccountAmountResponse `json:"assets"`
	Liabilities      []AccountAmountResponse `json:"liabilities"`
	Equity           []AccountAmountResponse `json:"equity"`
	RetainedEarnings domain.Money            `json:"retainedEarnings" swaggertype:"string"`
	TotalAssets      domain.Money            `json:"totalAssets" swaggertype:"string"`
	TotalLiabilities domain.Money            `json:"totalLiabilities" swaggertype:"string"`
	TotalEquity      domain.Money            `json:"totalEquity" swaggertype:"string"`
}

// StatementLineResponse is one posted line of an account statement.
type StatementLineResponse struct {
	EntryID         string          `json:"entryID"`
	ReferenceNumber string          `json:"referenceNumber"`
	EntryDate       string          `json:"entryDate"`
	Narration       string          `json:"narration"`
	Type            domain.ItemType `json:"type"`
	Amount          domain.Money    `json:"amount" swaggertype:"string"`
	Description     string          `json:"description"`
	Balance         domain.Money    `json:"balance" swaggertype:"string"`
}

// AccountStatementResponse is the ledger view of one account.
type AccountStatementResponse struct {
	Account        AccountResponse         `json:"account"`
	OpeningBalance domain.Money            `json:"openingBalance" swaggertype:"string"`
	Lines          []StatementLineResponse `json:"lines"`
	ClosingBalance domain.Money            `json:"closingBalance" swaggertype:"string"`
	Formatted      string                  `json:"formatted"`
}

const reportDateFormat = "2006-01-02"

func toAccountAmounts(rows []domain.AccountAmount) []AccountAmountResponse {
	result := make([]AccountAmountResponse, len(rows))
	for i, r := range rows {
		result[i] = AccountAmountResponse{AccountID: r.AccountID, Code: r.Code, Name: r.Name, Amount: r.NetAmount}
	}
	return result
}

// ToTrialBalanceResponse converts a domain.TrialBalance.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf: tb.AsOf.Format(reportDateFormat),
		Rows: make([]TrialBalanceRowResponse, len(tb.Rows)),
	}
	for i, r := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:   r.AccountID,
			Code:        r.Code,
			AccountName: r.AccountName,
			AccountType: string(r.CategoryType),
			Debit:       r.Debit,
			Credit:      r.Credit,
		}
	}
	resp.Totals.Debit = tb.TotalDebit
	resp.Totals.Credit = tb.TotalCredit
	return resp
}

// ToProfitAndLossResponse converts a domain.ProfitAndLoss.
func ToProfitAndLossResponse(pl *domain.ProfitAndLoss) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		FromDate:      pl.From.Format(reportDateFormat),
		ToDate:        pl.To.Format(reportDateFormat),
		Revenue:       toAccountAmounts(pl.Revenue),
		Expenses:      toAccountAmounts(pl.Expenses),
		TotalRevenue:  pl.TotalRevenue,
		TotalExpenses: pl.TotalExpenses,
		NetProfit:     pl.NetProfit,
	}
}

// ToBalanceSheetResponse converts a domain.BalanceSheet.
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:             bs.AsOf.Format(reportDateFormat),
		Assets:           toAccountAmounts(bs.Assets),
		Liabilities:      toAccountAmounts(bs.Liabilities),
		Equity:           toAccountAmounts(bs.Equity),
		RetainedEarnings: bs.RetainedEarnings,
		TotalAssets:      bs.TotalAssets,
		TotalLiabilities: bs.TotalLiabilities,
		TotalEquity:      bs.TotalEquity,
	}
}

// ToAccountStatementResponse converts a domain.AccountStatement. formatted is
// the display form of the closing balance.
func ToAccountStatementResponse(st *domain.AccountStatement, formatted string) AccountStatementResponse {
	lines := make([]StatementLineResponse, len(st.Lines))
	for i, l := range st.Lines {
		lines[i] = StatementLineResponse{
			EntryID:         l.EntryID,
			ReferenceNumber: l.ReferenceNumber,
			EntryDate:       l.EntryDate.Format(reportDateFormat),
			Narration:       l.Narration,
			Type:            l.Type,
			Amount:          l.Amount,
			Description:     l.Description,
			Balance:         l.Balance,
		}
	}
	return AccountStatementResponse{
		Account:        ToAccountResponse(&st.Account),
		OpeningBalance: st.OpeningBalance,
		Lines:          lines,
		ClosingBalance: st.ClosingBalance,
		Formatted:      formatted,
	}
}

// ParseReportDate parses an optional YYYY-MM-DD query value.
func ParseReportDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(reportDateFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
