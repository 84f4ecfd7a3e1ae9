package repositories

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter holds the conjunctive filter criteria for listing
// transactions. Nil fields are ignored. Date and amount ranges are inclusive
// and open on either end; Tags matches on set intersection.
type TransactionFilter struct {
	Type          *domain.TransactionType
	Category      *string
	PaymentMethod *domain.PaymentMethod
	Status        *domain.TransactionStatus
	StartDate     *time.Time
	EndDate       *time.Time
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	Tags          []string
	Page          int // 1-based
	Limit         int
}

// Offset converts the 1-based page into a row offset.
func (f TransactionFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// TransactionRepository defines persistence for transaction records and the
// atomic balance units of work. Implementations must guarantee that each
// Save/Cancel call serializes against concurrent mutations of the same
// account(s): balances are re-read under a write lock and the record insert
// plus balance update commit together or not at all.
type TransactionRepository interface {
	// SaveTransaction persists txn and applies its balance effect to the
	// owning account. When mirror is non-nil both legs and both balance
	// updates commit in the same database transaction. BalanceAfter on the
	// returned transaction (and on mirror, in place) is computed from the
	// locked balances. Returns apperrors.ErrInsufficientBalance when a
	// fund-requiring type cannot be covered by the locked balance.
	SaveTransaction(ctx context.Context, txn domain.Transaction, mirror *domain.Transaction) (*domain.Transaction, error)

	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns the filtered page ordered by transaction_date
	// descending then created_at descending, plus the unpaginated total.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, int64, error)

	// UpdateTransaction persists descriptive fields and status only; it never
	// touches balances.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// CancelTransaction marks txn cancelled and applies the inverse balance
	// effect to the owner's current (locked) balance in one database
	// transaction.
	CancelTransaction(ctx context.Context, txn domain.Transaction, cancelledBy string, now time.Time) (*domain.Transaction, error)

	// ListActiveByDateRange returns the user's active transactions within the
	// inclusive range; nil bounds are open.
	ListActiveByDateRange(ctx context.Context, userID string, startDate, endDate *time.Time) ([]domain.Transaction, error)

	// ListCategories returns the user's distinct categories across all
	// statuses.
	ListCategories(ctx context.Context, userID string) ([]string, error)
}
