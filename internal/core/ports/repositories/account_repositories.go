package repositories

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for accounts.
// Balance mutations driven by transactions do NOT go through this interface;
// they are part of the TransactionRepository's atomic unit of work.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	// SetBalance unconditionally overwrites the current balance. This is the
	// administrative escape hatch that bypasses transaction history.
	SetBalance(ctx context.Context, userID string, balance decimal.Decimal, updatedBy string, now time.Time) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}
