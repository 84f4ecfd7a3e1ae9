package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountSvcFacade exposes account lifecycle and preference operations.
// Transaction-driven balance mutation is NOT part of this facade; it belongs
// to the transaction engine.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	// SetBalance is the administrative overwrite that bypasses transaction
	// history.
	SetBalance(ctx context.Context, userID string, balance decimal.Decimal) (*domain.Account, error)
	UpdateAvatar(ctx context.Context, userID string, avatarURL string) (*domain.Account, error)
	ToggleTwoFactor(ctx context.Context, userID string) (*domain.Account, error)
	SetActive(ctx context.Context, userID string, active bool) (*domain.Account, error)
	GetAccountStats(ctx context.Context, userID string) (*dto.AccountStatsResponse, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}
