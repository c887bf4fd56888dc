package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
)

// FinancialYear is an accounting period. At most one year per business is active.
type FinancialYear struct {
	FinancialYearID string    `json:"financialYearID"`
	BusinessID      string    `json:"businessID"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
	AuditFields
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks the year's own fields.
func (fy FinancialYear) Validate() error {
	if fy.Name == "" {
		return apperrors.NewValidationError("financial year name is required")
	}
	if !DateOnly(fy.EndDate).After(DateOnly(fy.StartDate)) {
		return fmt.Errorf("%w: end date %s must be after start date %s", apperrors.ErrValidation,
			fy.EndDate.Format(time.DateOnly), fy.StartDate.Format(time.DateOnly))
	}
	return nil
}

// Contains reports whether date falls inside [StartDate, EndDate], comparing calendar dates.
func (fy FinancialYear) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(fy.StartDate)) && !d.After(DateOnly(fy.EndDate))
}
