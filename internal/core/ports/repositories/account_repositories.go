package repositories

import (
	"context"

	"github.com/movdin/movdin-backend/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
// IDs are assigned by the store; create and update return the stored row.
type AccountRepository interface {
	// CreateAccount inserts a new account. Returns apperrors.ErrDuplicate
	// when the name is already taken.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// FindAccountByID returns apperrors.ErrNotFound when no such account exists.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// UpdateAccount replaces the mutable fields (name, opening balance,
	// currency, is_active) of an existing account. Returns
	// apperrors.ErrNotFound or apperrors.ErrDuplicate on a name collision.
	UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// DeleteAccount removes the account and all of its transactions in a
	// single transaction. Returns apperrors.ErrNotFound when absent.
	DeleteAccount(ctx context.Context, accountID int64) error

	// ListAccounts returns accounts ordered by name ascending, optionally
	// restricted to active ones.
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)
}
