package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movdin/movdin-backend/internal/apperrors"
	"github.com/movdin/movdin-backend/internal/core/domain"
	portsrepo "github.com/movdin/movdin-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository persists transactions in PostgreSQL and serves the
// balance aggregates computed over them.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// CreateTransaction inserts a new transaction; the store assigns id and
// created_at. A missing account surfaces as the FK violation and is reported
// as not found rather than leaking the storage detail.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (account_id, date, description, amount, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		txn.AccountID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.Notes,
	).Scan(&txn.ID, &txn.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, fmt.Errorf("%w: account %d does not exist", apperrors.ErrNotFound, txn.AccountID)
		}
		return nil, fmt.Errorf("failed to create transaction for account %d: %w", txn.AccountID, err)
	}
	return &txn, nil
}

// ListTransactions returns transactions matching the filter ordered by
// (date DESC, id DESC), paginated.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, account_id, date, description, amount, notes, created_at
		FROM transactions
		WHERE ($1::BIGINT IS NULL OR account_id = $1)
		  AND ($2::DATE IS NULL OR date >= $2)
		  AND ($3::DATE IS NULL OR date <= $3)
		ORDER BY date DESC, id DESC
		LIMIT $4 OFFSET $5;
	`

	rows, err := r.Pool.Query(ctx, query, filter.AccountID, filter.DateFrom, filter.DateTo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListAccountTransactionsAsc returns one account's transactions within the
// optional inclusive range ordered by (date ASC, id ASC). Ascending id is the
// deterministic tiebreak for same-day entries: insertion order.
func (r *PgxTransactionRepository) ListAccountTransactionsAsc(ctx context.Context, accountID int64, dateFrom, dateTo *time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT id, account_id, date, description, amount, notes, created_at
		FROM transactions
		WHERE account_id = $1
		  AND ($2::DATE IS NULL OR date >= $2)
		  AND ($3::DATE IS NULL OR date <= $3)
		ORDER BY date ASC, id ASC;
	`

	rows, err := r.Pool.Query(ctx, query, accountID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %d: %w", accountID, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// SumTransactionAmounts sums amounts for one account with date <= asOf.
// COALESCE pins the empty set to an exact zero so no NULL ever reaches the
// balance arithmetic.
func (r *PgxTransactionRepository) SumTransactionAmounts(ctx context.Context, accountID int64, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE account_id = $1 AND date <= $2;
	`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, asOf).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum amounts for account %d: %w", accountID, err)
	}
	return sum, nil
}

// ListActiveAccountBalances computes the as-of balance of every active
// account. The LEFT JOIN keeps accounts with no qualifying transactions in
// the result with their opening balance intact; the date bound lives in the
// join condition so those rows survive the aggregation.
func (r *PgxTransactionRepository) ListActiveAccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, error) {
	query := `
		SELECT a.id, a.name, a.currency,
		       a.opening_balance + COALESCE(SUM(t.amount), 0) AS balance
		FROM accounts a
		LEFT JOIN transactions t
		  ON t.account_id = a.id AND t.date <= $1
		WHERE a.is_active = TRUE
		GROUP BY a.id, a.name, a.currency, a.opening_balance
		ORDER BY a.name ASC;
	`

	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.AccountBalance{}
	for rows.Next() {
		var row domain.AccountBalance
		if err := rows.Scan(&row.AccountID, &row.Name, &row.Currency, &row.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account balance row: %w", err)
		}
		balances = append(balances, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}

	return balances, nil
}

// scanTransactions collects transaction rows, normalizing dates to UTC
// midnight on the way out of the DATE column.
func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.AccountID,
			&txn.Date,
			&txn.Description,
			&txn.Amount,
			&txn.Notes,
			&txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txn.Date = domain.ToDate(txn.Date)
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
