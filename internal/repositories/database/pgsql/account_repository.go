package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movdin/movdin-backend/internal/apperrors"
	"github.com/movdin/movdin-backend/internal/core/domain"
	portsrepo "github.com/movdin/movdin-backend/internal/core/ports/repositories"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PgxAccountRepository persists accounts in PostgreSQL.
type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// CreateAccount inserts a new account; the store assigns id and created_at.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (name, opening_balance, currency, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		account.Name,
		account.OpeningBalance,
		account.Currency,
		account.IsActive,
	).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: account name %q is already taken", apperrors.ErrDuplicate, account.Name)
		}
		return nil, fmt.Errorf("failed to create account %q: %w", account.Name, err)
	}
	return &account, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT id, name, opening_balance, currency, is_active, created_at
		FROM accounts
		WHERE id = $1;
	`

	var account domain.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&account.ID,
		&account.Name,
		&account.OpeningBalance,
		&account.Currency,
		&account.IsActive,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}
	return &account, nil
}

// UpdateAccount replaces the mutable fields of an existing account. The
// uniqueness re-check on name happens here, at write time.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET name = $2, opening_balance = $3, currency = $4, is_active = $5
		WHERE id = $1
		RETURNING id, name, opening_balance, currency, is_active, created_at;
	`

	var updated domain.Account
	err := r.Pool.QueryRow(ctx, query,
		account.ID,
		account.Name,
		account.OpeningBalance,
		account.Currency,
		account.IsActive,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.OpeningBalance,
		&updated.Currency,
		&updated.IsActive,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: account name %q is already taken", apperrors.ErrDuplicate, account.Name)
		}
		return nil, fmt.Errorf("failed to update account %d: %w", account.ID, err)
	}
	return &updated, nil
}

// DeleteAccount removes the account and all of its transactions atomically.
// The FK also carries ON DELETE CASCADE, but deleting both explicitly inside
// one transaction keeps the policy visible and the operation all-or-nothing.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE account_id = $1;`, accountID); err != nil {
		return fmt.Errorf("failed to delete transactions of account %d: %w", accountID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit account delete %d: %w", accountID, err)
	}
	return nil
}

// ListAccounts retrieves accounts ordered by name ascending.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	query := `
		SELECT id, name, opening_balance, currency, is_active, created_at
		FROM accounts
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY name ASC;
	`

	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.OpeningBalance,
			&account.Currency,
			&account.IsActive,
			&account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}
