package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create an account category.
type CreateCategoryRequest struct {
	Name        string                     `json:"name" binding:"required"`
	Type        domain.AccountCategoryType `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string                     `json:"description"`
}

// CategoryResponse defines the data returned for an account category.
type CategoryResponse struct {
	CategoryID  string                     `json:"categoryID"`
	Name        string                     `json:"name"`
	Type        domain.AccountCategoryType `json:"type"`
	Description string                     `json:"description"`
	CreatedAt   time.Time                  `json:"createdAt"`
	CreatedBy   string                     `json:"createdBy"`
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	CategoryID  string `json:"categoryID" binding:"required"`
	Code        string `json:"code" binding:"required,max=32"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"` // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`        // Optional: New name
	Description *string `json:"description"` // Optional: New description
}

// ListAccountsParams defines the query parameters for listing accounts.
type ListAccountsParams struct {
	CategoryType string `form:"categoryType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ActiveOnly   bool   `form:"activeOnly"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset       int    `form:"offset" binding:"omitempty,min=0"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string                     `json:"accountID"`
	CategoryID    string                     `json:"categoryID"`
	CategoryType  domain.AccountCategoryType `json:"categoryType"`
	Code          string                     `json:"code"`
	Name          string                     `json:"name"`
	Description   string                     `json:"description"`
	IsActive      bool                       `json:"isActive"`
	CreatedAt     time.Time                  `json:"createdAt"`
	CreatedBy     string                     `json:"createdBy"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy string                     `json:"lastUpdatedBy"`
}

// BalanceResponse is an account balance, raw and formatted for display.
type BalanceResponse struct {
	AccountID string       `json:"accountID"`
	AsOf      *time.Time   `json:"asOf,omitempty"`
	Balance   domain.Money `json:"balance"`
	Formatted string       `json:"formatted"`
}

// ToCategoryResponse converts a domain.AccountCategory to CategoryResponse DTO
func ToCategoryResponse(c *domain.AccountCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Type:        c.Type,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		CreatedBy:   c.CreatedBy,
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(cs []domain.AccountCategory) []CategoryResponse {
	result := make([]CategoryResponse, len(cs))
	for i := range cs {
		result[i] = ToCategoryResponse(&cs[i])
	}
	return result
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		CategoryID:    acc.CategoryID,
		CategoryType:  acc.CategoryType,
		Code:          acc.Code,
		Name:          acc.Name,
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	result := make([]AccountResponse, len(accounts))
	for i := range accounts {
		result[i] = ToAccountResponse(&accounts[i])
	}
	return result
}
