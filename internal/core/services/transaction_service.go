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
	"github.com/movdin/movdin-backend/internal/dto"
)

// transactionServiceImpl implements the TransactionSvc interface.
type transactionServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepository) portssvc.TransactionSvc {
	return &transactionServiceImpl{transactionRepo: repo}
}

var _ portssvc.TransactionSvc = (*transactionServiceImpl)(nil)

func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := time.ParseInLocation(domain.DateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as %s", apperrors.ErrValidation, domain.DateLayout)
	}
	if date.After(domain.Today()) {
		return nil, fmt.Errorf("%w: transaction date %s is in the future", apperrors.ErrInvalidDate, req.Date)
	}
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: transaction amount must not be zero", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		AccountID:   req.AccountID,
		Date:        date,
		Description: req.Description,
		Amount:      req.SignedAmount(),
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.transactionRepo.CreateTransaction(ctx, txn)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to create transaction", slog.Int64("account_id", req.AccountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", created.ID),
		slog.Int64("account_id", created.AccountID),
		slog.String("amount", created.Amount.String()))
	return created, nil
}

func (s *transactionServiceImpl) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, fmt.Errorf("%w: date_from is after date_to", apperrors.ErrInvalidDate)
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, filter, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
