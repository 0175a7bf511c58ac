package services

import (
	"context"

	"github.com/movdin/movdin-backend/internal/core/domain"
	"github.com/movdin/movdin-backend/internal/dto"
)

// AccountSvc defines the account operations exposed to the handlers.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}
