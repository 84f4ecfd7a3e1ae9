package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/fintrack/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, account_id, amount, type, category, description, transaction_date, payment_method, reference, transfer_account_id, balance_after, is_recurring, recurring_type, tags, status, created_at, created_by, last_updated_at, last_updated_by`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
`

// lockedBalance is the minimal account view taken under FOR UPDATE.
type lockedBalance struct {
	AccountID      string
	UserID         string
	CurrentBalance decimal.Decimal
}

// lockAccountRows takes row-level write locks on the given accounts and
// returns their balances as of the lock. Serializes every balance mutation
// against concurrent writers of the same account.
func lockAccountRows(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]lockedBalance, error) {
	query := `
		SELECT account_id, user_id, current_balance
		FROM accounts
		WHERE account_id = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account rows: %w", err)
	}
	defer rows.Close()

	locked := make(map[string]lockedBalance, len(accountIDs))
	for rows.Next() {
		var lb lockedBalance
		if err := rows.Scan(&lb.AccountID, &lb.UserID, &lb.CurrentBalance); err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		locked[lb.AccountID] = lb
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", rows.Err())
	}
	return locked, nil
}

func updateBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
		UPDATE accounts
		SET current_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, accountID, balance, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := tx.Exec(ctx, insertTransactionQuery,
		m.TransactionID,
		m.UserID,
		m.AccountID,
		m.Amount,
		m.Type,
		m.Category,
		m.Description,
		m.TransactionDate,
		m.PaymentMethod,
		m.Reference,
		m.TransferAccountID,
		m.BalanceAfter,
		m.IsRecurring,
		m.RecurringType,
		m.Tags,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveTransaction applies a transaction (and its optional mirror leg) to the
// ledger as one database transaction: the affected account rows are locked,
// sufficiency is re-checked against the locked balance, and the record
// inserts and balance updates commit together. The returned transaction and
// the mirror (in place) carry BalanceAfter snapshots derived from the locked
// balances.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, mirror *domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := []string{txn.AccountID}
	if mirror != nil {
		accountIDs = append(accountIDs, mirror.AccountID)
	}

	locked, err := lockAccountRows(ctx, tx, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts", err)
	}

	source, ok := locked[txn.AccountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, txn.AccountID)
	}

	// Authoritative sufficiency check: the service pre-checks against a
	// possibly stale read, this one decides.
	if txn.Type.RequiresFunds() && source.CurrentBalance.LessThan(txn.Amount) {
		return nil, apperrors.ErrInsufficientBalance
	}

	now := txn.CreatedAt
	txn.BalanceAfter = source.CurrentBalance.Add(txn.Type.BalanceEffect(txn.Amount))

	if err := insertTransactionInTx(ctx, tx, txn); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction", err)
	}
	if err := updateBalanceInTx(ctx, tx, txn.AccountID, txn.BalanceAfter, txn.CreatedBy, now); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update source balance", err)
	}

	if mirror != nil {
		dest, ok := locked[mirror.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: destination account %s", apperrors.ErrNotFound, mirror.AccountID)
		}
		mirror.BalanceAfter = dest.CurrentBalance.Add(mirror.Amount)

		if err := insertTransactionInTx(ctx, tx, *mirror); err != nil {
			return nil, apperrors.NewAppError(500, "failed to insert mirror transaction", err)
		}
		if err := updateBalanceInTx(ctx, tx, mirror.AccountID, mirror.BalanceAfter, txn.CreatedBy, now); err != nil {
			return nil, apperrors.NewAppError(500, "failed to update destination balance", err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &txn, nil
}

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.Amount,
		&m.Type,
		&m.Category,
		&m.Description,
		&m.TransactionDate,
		&m.PaymentMethod,
		&m.Reference,
		&m.TransferAccountID,
		&m.BalanceAfter,
		&m.IsRecurring,
		&m.RecurringType,
		&m.Tags,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// buildFilterClauses translates the conjunctive filter into SQL predicates.
// The returned args start at placeholder $2; $1 is always the user ID.
func buildFilterClauses(filter portsrepo.TransactionFilter) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{}
	next := func() string { return "$" + strconv.Itoa(len(args)+2) }

	if filter.Type != nil {
		clauses = append(clauses, "type = "+next())
		args = append(args, string(*filter.Type))
	}
	if filter.Category != nil {
		clauses = append(clauses, "category = "+next())
		args = append(args, *filter.Category)
	}
	if filter.PaymentMethod != nil {
		clauses = append(clauses, "payment_method = "+next())
		args = append(args, string(*filter.PaymentMethod))
	}
	if filter.Status != nil {
		clauses = append(clauses, "status = "+next())
		args = append(args, string(*filter.Status))
	}
	if filter.StartDate != nil {
		clauses = append(clauses, "transaction_date >= "+next())
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		clauses = append(clauses, "transaction_date <= "+next())
		args = append(args, *filter.EndDate)
	}
	if filter.MinAmount != nil {
		clauses = append(clauses, "amount >= "+next())
		args = append(args, *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		clauses = append(clauses, "amount <= "+next())
		args = append(args, *filter.MaxAmount)
	}
	if len(filter.Tags) > 0 {
		// Overlap, not containment: any shared tag matches.
		clauses = append(clauses, "tags && "+next())
		args = append(args, filter.Tags)
	}

	return strings.Join(clauses, " AND "), args
}

// ListTransactions returns one page of the filtered set plus the unpaginated
// total, ordered by transaction_date descending then created_at descending.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, int64, error) {
	where, filterArgs := buildFilterClauses(filter)
	args := append([]any{userID}, filterArgs...)

	countQuery := `SELECT COUNT(*) FROM transactions WHERE ` + where + `;`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	limitPos := len(args) + 1
	offsetPos := len(args) + 2
	pageQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + where + `
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(offsetPos) + `;
	`
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransactionRow(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, *txn)
	}
	if rows.Err() != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating transaction rows", rows.Err())
	}

	return transactions, total, nil
}

// UpdateTransaction persists descriptive fields and status. Amount and type
// are deliberately absent from the SET list: financial fields are immutable.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET category = $2, description = $3, transaction_date = $4, payment_method = $5,
		    reference = $6, tags = $7, recurring_type = $8, is_recurring = $9, status = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Category,
		m.Description,
		m.TransactionDate,
		m.PaymentMethod,
		m.Reference,
		m.Tags,
		m.RecurringType,
		m.IsRecurring,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CancelTransaction flips the status to cancelled and reverses the balance
// effect against the owner's current balance, both under one database
// transaction with the account row locked. The guard on status in the UPDATE
// makes concurrent double-cancels lose cleanly.
func (r *PgxTransactionRepository) CancelTransaction(ctx context.Context, txn domain.Transaction, cancelledBy string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `
		SELECT account_id, user_id, current_balance
		FROM accounts
		WHERE user_id = $1
		FOR UPDATE;
	`
	var locked lockedBalance
	if err := tx.QueryRow(ctx, lockQuery, txn.UserID).Scan(&locked.AccountID, &locked.UserID, &locked.CurrentBalance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock account for cancellation", err)
	}

	statusQuery := `
		UPDATE transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1 AND status <> $2;
	`
	cmdTag, err := tx.Exec(ctx, statusQuery, txn.TransactionID, string(domain.StatusCancelled), now, cancelledBy)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to cancel transaction "+txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: transaction already cancelled", apperrors.ErrValidation)
	}

	// The reversal applies to the balance as it is now, not the balance at
	// creation time. Interleaved transactions since then fold in additively.
	newBalance := locked.CurrentBalance.Sub(txn.Type.BalanceEffect(txn.Amount))
	if err := updateBalanceInTx(ctx, tx, locked.AccountID, newBalance, cancelledBy, now); err != nil {
		return nil, apperrors.NewAppError(500, "failed to reverse balance for transaction "+txn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	txn.Status = domain.StatusCancelled
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = cancelledBy
	return &txn, nil
}

// ListActiveByDateRange returns the user's active transactions within the
// inclusive range; nil bounds leave that side open.
func (r *PgxTransactionRepository) ListActiveByDateRange(ctx context.Context, userID string, startDate, endDate *time.Time) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionFilter{
		StartDate: startDate,
		EndDate:   endDate,
	}
	where, filterArgs := buildFilterClauses(filter)
	args := append([]any{userID}, filterArgs...)

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + where + ` AND status = 'active'
		ORDER BY transaction_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active transactions", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransactionRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, *txn)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", rows.Err())
	}

	return transactions, nil
}

// ListCategories returns the user's distinct categories across all statuses.
func (r *PgxTransactionRepository) ListCategories(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT DISTINCT category FROM transactions WHERE user_id = $1 ORDER BY category;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, category)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", rows.Err())
	}

	return categories, nil
}
