package dto

import (
	"time"

	"github.com/movdin/movdin-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Transaction kinds accepted on create. The kind is a request-level
// convenience that fixes the sign of the stored amount; it is never persisted.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Date uses the YYYY-MM-DD wire format.
type CreateTransactionRequest struct {
	AccountID   int64           `json:"accountID" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Notes       string          `json:"notes"`
	Kind        string          `json:"kind" binding:"omitempty,oneof=income expense"`
}

// SignedAmount resolves the amount that gets stored. With a kind the caller
// supplies a magnitude: income stores +|amount|, expense stores -|amount|.
// Without a kind the amount is stored signed exactly as provided.
func (r CreateTransactionRequest) SignedAmount() decimal.Decimal {
	switch r.Kind {
	case KindIncome:
		return r.Amount.Abs()
	case KindExpense:
		return r.Amount.Abs().Neg()
	default:
		return r.Amount
	}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"accountID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		AccountID:   txn.AccountID,
		Date:        txn.Date.Format(domain.DateLayout),
		Description: txn.Description,
		Amount:      txn.Amount,
		Notes:       txn.Notes,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID *int64 `form:"account_id"`
	DateFrom  string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset    int    `form:"offset,default=0" binding:"omitempty,min=0"`
}
