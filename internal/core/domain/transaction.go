package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a signed, dated monetary movement against exactly one account.
// Amounts are stored signed: positive is a credit, negative is a debit.
// Transactions are immutable once created and only removed when their account
// is deleted.
type Transaction struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"accountID"`
	Date        time.Time       `json:"date"` // Calendar date, UTC midnight, no time component
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransactionWithBalance is a transaction row in a running-balance statement.
// RunningBalance is the cumulative sum of amounts over the emitted window in
// (date, id) ascending order. It intentionally excludes the account's opening
// balance: the statement shows movement within the window, not account state.
type TransactionWithBalance struct {
	Transaction
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	AccountID *int64
	DateFrom  *time.Time
	DateTo    *time.Time
}
