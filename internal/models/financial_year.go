package models

import "time"

// FinancialYear is the persisted accounting period row.
type FinancialYear struct {
	FinancialYearID string    `db:"financial_year_id" json:"financialYearID"`
	BusinessID      string    `db:"business_id" json:"businessID"`
	Name            string    `db:"name" json:"name"`
	StartDate       time.Time `db:"start_date" json:"startDate"`
	EndDate         time.Time `db:"end_date" json:"endDate"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	AuditFields
}
