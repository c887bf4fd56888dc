package models

// AccountCategory groups accounts of one type within a business.
type AccountCategory struct {
	CategoryID   string `db:"category_id" json:"categoryID"`
	BusinessID   string `db:"business_id" json:"businessID"`
	Name         string `db:"name" json:"name"`
	CategoryType string `db:"category_type" json:"categoryType"`
	Description  string `db:"description" json:"description"`
	AuditFields
}

// Account represents a chart-of-accounts row. CategoryType is denormalised from its category.
type Account struct {
	AccountID    string `db:"account_id" json:"accountID"`
	BusinessID   string `db:"business_id" json:"businessID"`
	CategoryID   string `db:"category_id" json:"categoryID"`
	CategoryType string `db:"category_type" json:"categoryType"`
	Code         string `db:"code" json:"code"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
	IsActive     bool   `db:"is_active" json:"isActive"`
	AuditFields
}
