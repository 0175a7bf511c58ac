package services

import (
	"context"

	"github.com/movdin/movdin-backend/internal/core/domain"
	"github.com/movdin/movdin-backend/internal/dto"
)

// TransactionSvc defines the transaction operations exposed to the handlers.
type TransactionSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error)
}
