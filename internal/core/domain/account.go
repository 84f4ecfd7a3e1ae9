package domain

import (
	"github.com/shopspring/decimal"
)

// Theme values accepted for account preferences.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Account is a user's single financial balance container plus display
// preferences. CurrentBalance is only ever mutated by the transaction engine
// (or the explicit administrative balance set, which bypasses history).
type Account struct {
	AccountID          string          `json:"accountID"`
	UserID             string          `json:"userID"` // Unique: one account per user
	Avatar             string          `json:"avatar,omitempty"`
	InitialBalance     decimal.Decimal `json:"initialBalance"` // Immutable once > 0
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	Theme              string          `json:"theme"`
	Language           string          `json:"language"`
	Currency           string          `json:"currency"`
	Notifications      bool            `json:"notifications"`
	EmailNotifications bool            `json:"emailNotifications"`
	TwoFactorEnabled   bool            `json:"twoFactorEnabled"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}

// BalanceVariation is the drift of the current balance from the initial one.
func (a *Account) BalanceVariation() decimal.Decimal {
	return a.CurrentBalance.Sub(a.InitialBalance)
}
