package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB representation of a balance-affecting event.
// Amount is always positive; the sign of the balance effect is derived from
// the type column, never stored.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	UserID            string          `db:"user_id"`
	AccountID         string          `db:"account_id"`
	Amount            decimal.Decimal `db:"amount"`
	Type              string          `db:"type"`
	Category          string          `db:"category"`
	Description       string          `db:"description"`
	TransactionDate   time.Time       `db:"transaction_date"`
	PaymentMethod     *string         `db:"payment_method"`
	Reference         *string         `db:"reference"`
	TransferAccountID *string         `db:"transfer_account_id"`
	BalanceAfter      decimal.Decimal `db:"balance_after"`
	IsRecurring       bool            `db:"is_recurring"`
	RecurringType     *string         `db:"recurring_type"`
	Tags              []string        `db:"tags"`
	Status            string          `db:"status"`
	AuditFields
}
