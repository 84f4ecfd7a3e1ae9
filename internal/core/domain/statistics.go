package domain

import "github.com/shopspring/decimal"

// CategoryStat aggregates amounts for a single category.
type CategoryStat struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int             `json:"count"`
}

// Statistics summarizes a user's active transactions over a period.
// Balance is income minus expenses; transfers are reported separately and
// deliberately excluded from the derived balance figure.
type Statistics struct {
	Income           decimal.Decimal         `json:"income"`
	Expenses         decimal.Decimal         `json:"expenses"`
	Transfers        decimal.Decimal         `json:"transfers"`
	Balance          decimal.Decimal         `json:"balance"`
	TransactionCount int                     `json:"transactionCount"`
	CategoryStats    map[string]CategoryStat `json:"categoryStats"`
}
