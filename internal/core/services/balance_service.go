package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/movdin/movdin-backend/internal/apperrors"
	"github.com/movdin/movdin-backend/internal/core/domain"
	portsrepo "github.com/movdin/movdin-backend/internal/core/ports/repositories"
	portssvc "github.com/movdin/movdin-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceServiceImpl implements the BalanceSvc interface. It only reads; every
// call recomputes from current stored state so a balance always reflects the
// latest committed writes.
type balanceServiceImpl struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewBalanceService creates a new balance service.
func NewBalanceService(accountRepo portsrepo.AccountRepository, transactionRepo portsrepo.TransactionRepository) portssvc.BalanceSvc {
	return &balanceServiceImpl{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceServiceImpl)(nil)

// AccountBalance computes opening_balance + the sum of amounts dated <= asOf.
// An account with no qualifying transactions yields exactly its opening
// balance: the store returns a zero sum for the empty set, never a null.
func (s *balanceServiceImpl) AccountBalance(ctx context.Context, accountID int64, asOf *time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for balance", slog.Int64("account_id", accountID))
		}
		return decimal.Zero, err
	}

	sum, err := s.transactionRepo.SumTransactionAmounts(ctx, accountID, upperBound(asOf))
	if err != nil {
		s.LogError(ctx, err, "Failed to sum transaction amounts", slog.Int64("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %d: %w", accountID, err)
	}

	return account.OpeningBalance.Add(sum), nil
}

// AllBalances computes the balance of every active account as of asOf,
// ordered by account name ascending.
func (s *balanceServiceImpl) AllBalances(ctx context.Context, asOf *time.Time) ([]domain.AccountBalance, error) {
	rows, err := s.transactionRepo.ListActiveAccountBalances(ctx, upperBound(asOf))
	if err != nil {
		s.LogError(ctx, err, "Failed to list account balances")
		return nil, fmt.Errorf("failed to list account balances: %w", err)
	}
	if rows == nil {
		return []domain.AccountBalance{}, nil
	}
	return rows, nil
}

// AccountStatement returns the account's transactions within the optional
// inclusive range in (date, id) ascending order, each carrying the cumulative
// sum of amounts over the emitted window. Row 0's running balance equals its
// own amount; opening balance is never added here.
func (s *balanceServiceImpl) AccountStatement(ctx context.Context, accountID int64, dateFrom, dateTo *time.Time) ([]domain.TransactionWithBalance, error) {
	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return nil, fmt.Errorf("%w: date_from is after date_to", apperrors.ErrInvalidDate)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for statement", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	txns, err := s.transactionRepo.ListAccountTransactionsAsc(ctx, accountID, dateFrom, dateTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for statement", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to build statement for account %d: %w", accountID, err)
	}

	return accumulateRunningBalances(txns), nil
}

// accumulateRunningBalances folds the cumulative sum of amounts over rows
// already sorted by (date, id) ascending.
func accumulateRunningBalances(txns []domain.Transaction) []domain.TransactionWithBalance {
	rows := make([]domain.TransactionWithBalance, len(txns))
	running := decimal.Zero
	for i, txn := range txns {
		running = running.Add(txn.Amount)
		rows[i] = domain.TransactionWithBalance{
			Transaction:    txn,
			RunningBalance: running,
		}
	}
	return rows
}

// upperBound resolves an optional as-of date: absent means unbounded.
func upperBound(asOf *time.Time) time.Time {
	if asOf == nil {
		return domain.FarFuture
	}
	return domain.ToDate(*asOf)
}
