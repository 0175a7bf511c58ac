package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/movdin/movdin-backend/internal/apperrors"
	"github.com/movdin/movdin-backend/internal/core/domain"
	portsrepo "github.com/movdin/movdin-backend/internal/core/ports/repositories"
	portssvc "github.com/movdin/movdin-backend/internal/core/ports/services"
	"github.com/movdin/movdin-backend/internal/dto"
)

// accountServiceImpl implements the AccountSvc interface.
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountServiceImpl{accountRepo: repo}
}

var _ portssvc.AccountSvc = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}
	if !req.Currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, req.Currency)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	account := domain.Account{
		Name:           name,
		OpeningBalance: req.OpeningBalance,
		Currency:       req.Currency,
		IsActive:       isActive,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to create account", slog.String("account_name", name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.Int64("account_id", created.ID), slog.String("account_name", created.Name))
	return created, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Bool("active_only", activeOnly))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccount replaces the mutable fields of an account. Fields absent from
// the request keep their stored values; name uniqueness is re-checked by the
// store on write.
func (s *accountServiceImpl) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for update", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.OpeningBalance != nil {
		account.OpeningBalance = *req.OpeningBalance
	}
	if req.Currency != nil {
		if !req.Currency.IsValid() {
			return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, *req.Currency)
		}
		account.Currency = *req.Currency
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	updated, err := s.accountRepo.UpdateAccount(ctx, *account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.Int64("account_id", updated.ID))
	return updated, nil
}

// DeleteAccount removes the account together with all of its transactions.
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.Int64("account_id", accountID))
	return nil
}
