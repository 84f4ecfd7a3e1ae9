package models

import "github.com/shopspring/decimal"

// Account is the DB representation of a user's balance container.
type Account struct {
	AccountID          string          `db:"account_id"`
	UserID             string          `db:"user_id"`
	Avatar             string          `db:"avatar"`
	InitialBalance     decimal.Decimal `db:"initial_balance"`
	CurrentBalance     decimal.Decimal `db:"current_balance"`
	Theme              string          `db:"theme"`
	Language           string          `db:"language"`
	Currency           string          `db:"currency"`
	Notifications      bool            `db:"notifications"`
	EmailNotifications bool            `db:"email_notifications"`
	TwoFactorEnabled   bool            `db:"two_factor_enabled"`
	IsActive           bool            `db:"is_active"`
	AuditFields
}
