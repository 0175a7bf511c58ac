package services

import (
	"context"
	"time"

	"github.com/movdin/movdin-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvc derives balances from stored data. It performs no mutation.
type BalanceSvc interface {
	// AccountBalance computes opening_balance + sum of amounts dated <= asOf.
	// A nil asOf means unbounded (include every transaction).
	AccountBalance(ctx context.Context, accountID int64, asOf *time.Time) (decimal.Decimal, error)

	// AllBalances computes the balance of every active account as of asOf,
	// ordered by account name ascending.
	AllBalances(ctx context.Context, asOf *time.Time) ([]domain.AccountBalance, error)

	// AccountStatement returns one account's transactions within the optional
	// inclusive date range in (date, id) ascending order, each row carrying
	// the running balance: the cumulative sum of amounts over the emitted
	// window. Opening balance is excluded from running balances.
	AccountStatement(ctx context.Context, accountID int64, dateFrom, dateTo *time.Time) ([]domain.TransactionWithBalance, error)
}
