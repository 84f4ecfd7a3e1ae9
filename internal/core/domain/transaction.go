package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of balance-affecting event kinds. The
// direction of the balance effect is a property of the type; amounts are
// always stored positive.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// RequiresFunds reports whether the type debits the owning account and must
// therefore be covered by the current balance.
func (t TransactionType) RequiresFunds() bool {
	return t == Expense || t == Transfer
}

// BalanceEffect returns the signed delta this type applies to the owning
// account's balance for a given (positive) amount.
func (t TransactionType) BalanceEffect(amount decimal.Decimal) decimal.Decimal {
	if t == Income {
		return amount
	}
	return amount.Neg()
}

// TransactionStatus tracks the lifecycle of a transaction record.
type TransactionStatus string

const (
	StatusActive    TransactionStatus = "active"
	StatusCancelled TransactionStatus = "cancelled"
	StatusPending   TransactionStatus = "pending"
)

// PaymentMethod values accepted on transactions.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentPix      PaymentMethod = "pix"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentBankSlip PaymentMethod = "bank_slip"
)

// RecurringType values accepted on transactions.
type RecurringType string

const (
	RecurringDaily   RecurringType = "daily"
	RecurringWeekly  RecurringType = "weekly"
	RecurringMonthly RecurringType = "monthly"
	RecurringYearly  RecurringType = "yearly"
)

// Transaction is an immutable-except-status record of a balance-affecting
// event. BalanceAfter is a display snapshot taken at commit time; the
// authoritative balance always lives on the Account.
type Transaction struct {
	TransactionID     string            `json:"transactionID"`
	UserID            string            `json:"userID"`
	AccountID         string            `json:"accountID"`
	Amount            decimal.Decimal   `json:"amount"` // Strictly positive
	Type              TransactionType   `json:"type"`
	Category          string            `json:"category"`
	Description       string            `json:"description"`
	TransactionDate   time.Time         `json:"transactionDate"`
	PaymentMethod     *PaymentMethod    `json:"paymentMethod,omitempty"`
	Reference         *string           `json:"reference,omitempty"` // Mirror legs hold the source transaction ID here
	TransferAccountID *string           `json:"transferAccountID,omitempty"`
	BalanceAfter      decimal.Decimal   `json:"balanceAfter"`
	IsRecurring       bool              `json:"isRecurring"`
	RecurringType     *RecurringType    `json:"recurringType,omitempty"`
	Tags              []string          `json:"tags,omitempty"`
	Status            TransactionStatus `json:"status"`
	AuditFields
}

// IsCancelled reports whether the transaction has been reversed.
func (t *Transaction) IsCancelled() bool {
	return t.Status == StatusCancelled
}
