package repositories

import (
	"context"
	"time"

	"github.com/movdin/movdin-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines persistence and aggregate queries over
// transactions. Balance aggregates live here because they are pure reads over
// the transactions table joined to accounts.
type TransactionRepository interface {
	// CreateTransaction inserts a new transaction. Returns
	// apperrors.ErrNotFound when the referenced account does not exist.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// ListTransactions returns transactions matching the filter, ordered by
	// (date DESC, id DESC), paginated.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error)

	// ListAccountTransactionsAsc returns one account's transactions within
	// the optional inclusive date range, ordered by (date ASC, id ASC). This
	// is the ordering the running-balance statement is built on: id breaks
	// ties between same-day entries by insertion order.
	ListAccountTransactionsAsc(ctx context.Context, accountID int64, dateFrom, dateTo *time.Time) ([]domain.Transaction, error)

	// SumTransactionAmounts returns the sum of amounts for one account with
	// date <= asOf. An account with no qualifying transactions yields exactly
	// zero, never a null.
	SumTransactionAmounts(ctx context.Context, accountID int64, asOf time.Time) (decimal.Decimal, error)

	// ListActiveAccountBalances returns every active account with
	// opening_balance + sum of amounts dated <= asOf, ordered by name ASC.
	ListActiveAccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, error)
}
