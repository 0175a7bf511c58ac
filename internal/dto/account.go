package dto

import (
	"time"

	"github.com/movdin/movdin-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Optional, defaults to 0
	Currency       domain.Currency `json:"currency" binding:"required,currencycode"`
	IsActive       *bool           `json:"isActive"` // Optional, defaults to true
}

// UpdateAccountRequest defines the data allowed when updating an account.
// Pointers distinguish fields left out of the payload from zero-value updates.
type UpdateAccountRequest struct {
	Name           *string          `json:"name"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
	Currency       *domain.Currency `json:"currency" binding:"omitempty,currencycode"`
	IsActive       *bool            `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Currency       domain.Currency `json:"currency"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             acc.ID,
		Name:           acc.Name,
		OpeningBalance: acc.OpeningBalance,
		Currency:       acc.Currency,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	ActiveOnly bool `form:"active_only,default=false"`
}
