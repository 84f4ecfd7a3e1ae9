package dto

import (
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create the user's account.
// All fields are optional; defaults mirror a fresh preference set.
type CreateAccountRequest struct {
	Avatar             *string          `json:"avatar"`
	InitialBalance     *decimal.Decimal `json:"initialBalance" binding:"omitempty,decimalgte0"`
	Theme              *string          `json:"theme" binding:"omitempty,oneof=light dark auto"`
	Language           *string          `json:"language" binding:"omitempty,oneof=pt-BR en-US es-ES"`
	Currency           *string          `json:"currency" binding:"omitempty,oneof=BRL USD EUR"`
	Notifications      *bool            `json:"notifications"`
	EmailNotifications *bool            `json:"emailNotifications"`
	TwoFactorEnabled   *bool            `json:"twoFactorEnabled"`
}

// UpdateAccountRequest defines the preference fields a user may change.
// InitialBalance is silently dropped when it was already set to a positive
// value at creation time.
type UpdateAccountRequest struct {
	Avatar             *string          `json:"avatar"`
	InitialBalance     *decimal.Decimal `json:"initialBalance" binding:"omitempty,decimalgte0"`
	Theme              *string          `json:"theme" binding:"omitempty,oneof=light dark auto"`
	Language           *string          `json:"language" binding:"omitempty,oneof=pt-BR en-US es-ES"`
	Currency           *string          `json:"currency" binding:"omitempty,oneof=BRL USD EUR"`
	Notifications      *bool            `json:"notifications"`
	EmailNotifications *bool            `json:"emailNotifications"`
}

// SetBalanceRequest is the administrative balance overwrite.
type SetBalanceRequest struct {
	Balance decimal.Decimal `json:"balance" binding:"required"`
}

// UpdateAvatarRequest sets the account's avatar URL.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,url,max=500"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID          string          `json:"accountID"`
	UserID             string          `json:"userID"`
	Avatar             string          `json:"avatar,omitempty"`
	InitialBalance     decimal.Decimal `json:"initialBalance"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	Theme              string          `json:"theme"`
	Language           string          `json:"language"`
	Currency           string          `json:"currency"`
	Notifications      bool            `json:"notifications"`
	EmailNotifications bool            `json:"emailNotifications"`
	TwoFactorEnabled   bool            `json:"twoFactorEnabled"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
}

// AccountStatsResponse summarizes an account's balance position.
type AccountStatsResponse struct {
	AccountID        string          `json:"accountID"`
	InitialBalance   decimal.Decimal `json:"initialBalance"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	BalanceVariation decimal.Decimal `json:"balanceVariation"`
	IsActive         bool            `json:"isActive"`
	TwoFactorEnabled bool            `json:"twoFactorEnabled"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:          acc.AccountID,
		UserID:             acc.UserID,
		Avatar:             acc.Avatar,
		InitialBalance:     acc.InitialBalance,
		CurrentBalance:     acc.CurrentBalance,
		Theme:              acc.Theme,
		Language:           acc.Language,
		Currency:           acc.Currency,
		Notifications:      acc.Notifications,
		EmailNotifications: acc.EmailNotifications,
		TwoFactorEnabled:   acc.TwoFactorEnabled,
		IsActive:           acc.IsActive,
		CreatedAt:          acc.CreatedAt,
		LastUpdatedAt:      acc.LastUpdatedAt,
	}
}

// ToAccountStatsResponse builds the stats view of an account.
func ToAccountStatsResponse(acc *domain.Account) AccountStatsResponse {
	return AccountStatsResponse{
		AccountID:        acc.AccountID,
		InitialBalance:   acc.InitialBalance,
		CurrentBalance:   acc.CurrentBalance,
		BalanceVariation: acc.BalanceVariation(),
		IsActive:         acc.IsActive,
		TwoFactorEnabled: acc.TwoFactorEnabled,
		CreatedAt:        acc.CreatedAt,
		LastUpdatedAt:    acc.LastUpdatedAt,
	}
}
