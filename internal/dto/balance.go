package dto

import (
	"github.com/movdin/movdin-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse carries a single account's point balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// AccountBalanceResponse is one row of the all-accounts balance report.
type AccountBalanceResponse struct {
	AccountID int64           `json:"accountID"`
	Name      string          `json:"name"`
	Currency  domain.Currency `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountBalanceResponses converts balance rows to response DTOs.
func ToAccountBalanceResponses(rows []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(rows))
	for i, row := range rows {
		res[i] = AccountBalanceResponse{
			AccountID: row.AccountID,
			Name:      row.Name,
			Currency:  row.Currency,
			Balance:   row.Balance,
		}
	}
	return res
}

// TransactionWithBalanceResponse is one statement row: the transaction plus
// the running balance after it within the queried window.
type TransactionWithBalanceResponse struct {
	TransactionResponse
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// ToStatementResponse converts statement rows to response DTOs.
func ToStatementResponse(rows []domain.TransactionWithBalance) []TransactionWithBalanceResponse {
	res := make([]TransactionWithBalanceResponse, len(rows))
	for i := range rows {
		res[i] = TransactionWithBalanceResponse{
			TransactionResponse: ToTransactionResponse(&rows[i].Transaction),
			RunningBalance:      rows[i].RunningBalance,
		}
	}
	return res
}

// BalanceQueryParams defines the optional as-of date for balance endpoints.
type BalanceQueryParams struct {
	AsOf string `form:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

// StatementQueryParams defines the optional date range for the running-balance
// statement endpoint.
type StatementQueryParams struct {
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}
