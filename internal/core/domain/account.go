package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a money-holding account in the ledger.
type Account struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"` // Unique across all accounts, active or not
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Currency       Currency        `json:"currency"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// AccountBalance is one row of the all-accounts balance report: the account's
// identity plus its computed balance as of the requested date.
type AccountBalance struct {
	AccountID int64           `json:"accountID"`
	Name      string          `json:"name"`
	Currency  Currency        `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
}
