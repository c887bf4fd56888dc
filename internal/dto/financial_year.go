package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CreateFinancialYearRequest defines the data needed to open a financial year.
// Dates are calendar dates; any time of day is dropped.
type CreateFinancialYearRequest struct {
	Name      string    `json:"name" binding:"required,max=100"`
	StartDate time.Time `json:"startDate" binding:"required" swaggertype:"string" format:"date" example:"2024-01-01"`
	EndDate   time.Time `json:"endDate" binding:"required,gtfield=StartDate" swaggertype:"string" format:"date" example:"2024-12-31"`
	Activate  bool      `json:"activate"`
}

// FinancialYearResponse defines the data returned for a financial year.
type FinancialYearResponse struct {
	FinancialYearID string    `json:"financialYearID"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
}

// ToFinancialYearResponse converts a domain.FinancialYear to FinancialYearResponse DTO
func ToFinancialYearResponse(fy *domain.FinancialYear) FinancialYearResponse {
	return FinancialYearResponse{
		FinancialYearID: fy.FinancialYearID,
		Name:            fy.Name,
		StartDate:       fy.StartDate,
		EndDate:         fy.EndDate,
		IsActive:        fy.IsActive,
		CreatedAt:       fy.CreatedAt,
		CreatedBy:       fy.CreatedBy,
	}
}

// ToFinancialYearResponses converts a slice of financial years.
func ToFinancialYearResponses(years []domain.FinancialYear) []FinancialYearResponse {
	result := make([]FinancialYearResponse, len(years))
	for i := range years {
		result[i] = ToFinancialYearResponse(&years[i])
	}
	return result
}
