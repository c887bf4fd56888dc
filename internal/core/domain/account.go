package domain

// AccountCategoryType defines the fundamental accounting nature of a category.
// It determines the sign convention of every account underneath it.
type AccountCategoryType string

const (
	Asset     AccountCategoryType = "ASSET"
	Liability AccountCategoryType = "LIABILITY"
	Equity    AccountCategoryType = "EQUITY"
	Revenue   AccountCategoryType = "REVENUE"
	Expense   AccountCategoryType = "EXPENSE"
)

// AllCategoryTypes lists the category types in chart-of-accounts order.
var AllCategoryTypes = []AccountCategoryType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is one of the five known types.
func (t AccountCategoryType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// AccountCategory groups accounts of the same type. Its type never changes after creation.
type AccountCategory struct {
	CategoryID  string              `json:"categoryID"`
	BusinessID  string              `json:"businessID"`
	Name        string              `json:"name"`
	Type        AccountCategoryType `json:"type"`
	Description string              `json:"description"`
	AuditFields
}

// Account is a chart-of-accounts entry. CategoryType is copied from its category
// so balance queries do not need a join.
type Account struct {
	AccountID    string              `json:"accountID"`
	BusinessID   string              `json:"businessID"`
	CategoryID   string              `json:"categoryID"`
	CategoryType AccountCategoryType `json:"categoryType"`
	Code         string              `json:"code"` // unique per business
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	IsActive     bool                `json:"isActive"`
	AuditFields
}
