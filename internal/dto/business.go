package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CreateBusinessRequest defines the data needed to create a business.
type CreateBusinessRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// UpdateSettingsRequest changes business settings. Nil fields keep their current value.
type UpdateSettingsRequest struct {
	JournalPrefix       *string `json:"journalPrefix" binding:"omitempty,max=16"`
	InvoicePrefix       *string `json:"invoicePrefix" binding:"omitempty,max=16"`
	PurchaseOrderPrefix *string `json:"purchaseOrderPrefix" binding:"omitempty,max=16"`
	CurrencySymbol      *string `json:"currencySymbol" binding:"omitempty,max=8"`
	DecimalSeparator    *string `json:"decimalSeparator" binding:"omitempty,len=1"`
	ThousandsSeparator  *string `json:"thousandsSeparator" binding:"omitempty,max=1"`
	SuspenseAccountID   *string `json:"suspenseAccountID"`
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID    string                  `json:"businessID"`
	Name          string                  `json:"name"`
	Settings      domain.BusinessSettings `json:"settings"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy string                  `json:"lastUpdatedBy"`
}

// NextReferenceResponse carries a freshly issued document reference.
type NextReferenceResponse struct {
	DocumentType    domain.DocumentType `json:"documentType"`
	ReferenceNumber string              `json:"referenceNumber"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse DTO
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:    b.BusinessID,
		Name:          b.Name,
		Settings:      b.Settings,
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
		LastUpdatedAt: b.LastUpdatedAt,
		LastUpdatedBy: b.LastUpdatedBy,
	}
}
