package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/fintrack/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, avatar, initial_balance, current_balance, theme, language, currency, notifications, email_notifications, two_factor_enabled, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccountRow(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Avatar,
		&m.InitialBalance,
		&m.CurrentBalance,
		&m.Theme,
		&m.Language,
		&m.Currency,
		&m.Notifications,
		&m.EmailNotifications,
		&m.TwoFactorEnabled,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// SaveAccount inserts a new account. The one-account-per-user rule is
// enforced by the unique index on user_id; violations surface as
// ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.Avatar,
		m.InitialBalance,
		m.CurrentBalance,
		m.Theme,
		m.Language,
		m.Currency,
		m.Notifications,
		m.EmailNotifications,
		m.TwoFactorEnabled,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: user %s already has an account", apperrors.ErrDuplicate, m.UserID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByUserID retrieves the single account owned by userID.
func (r *PgxAccountRepository) FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1;`

	acc, err := scanAccountRow(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account for user %s: %w", userID, err)
	}
	return acc, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	acc, err := scanAccountRow(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return acc, nil
}

// UpdateAccount persists preference and status fields. Balances are not
// written here; only the transaction engine and SetBalance touch them.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET avatar = $2, initial_balance = $3, theme = $4, language = $5, currency = $6,
		    notifications = $7, email_notifications = $8, two_factor_enabled = $9,
		    is_active = $10, last_updated_at = $11, last_updated_by = $12
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Avatar,
		m.InitialBalance,
		m.Theme,
		m.Language,
		m.Currency,
		m.Notifications,
		m.EmailNotifications,
		m.TwoFactorEnabled,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetBalance unconditionally overwrites the current balance for the user's
// account and returns the updated row. This is the administrative escape
// hatch; it leaves no transaction record behind.
func (r *PgxAccountRepository) SetBalance(ctx context.Context, userID string, balance decimal.Decimal, updatedBy string, now time.Time) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET current_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1
		RETURNING ` + accountColumns + `;
	`
	acc, err := scanAccountRow(r.Pool.QueryRow(ctx, query, userID, balance, now, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set balance for user %s: %w", userID, err)
	}
	return acc, nil
}

// ListAccounts retrieves a page of accounts ordered by creation time
// descending.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccountRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, *acc)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", rows.Err())
	}

	return accounts, nil
}
