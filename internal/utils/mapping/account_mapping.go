package mapping

import (
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/models"
)

// ToModelAccount converts a domain.Account for DB storage.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:          d.AccountID,
		UserID:             d.UserID,
		Avatar:             d.Avatar,
		InitialBalance:     d.InitialBalance,
		CurrentBalance:     d.CurrentBalance,
		Theme:              d.Theme,
		Language:           d.Language,
		Currency:           d.Currency,
		Notifications:      d.Notifications,
		EmailNotifications: d.EmailNotifications,
		TwoFactorEnabled:   d.TwoFactorEnabled,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a DB account row to the domain entity.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:          m.AccountID,
		UserID:             m.UserID,
		Avatar:             m.Avatar,
		InitialBalance:     m.InitialBalance,
		CurrentBalance:     m.CurrentBalance,
		Theme:              m.Theme,
		Language:           m.Language,
		Currency:           m.Currency,
		Notifications:      m.Notifications,
		EmailNotifications: m.EmailNotifications,
		TwoFactorEnabled:   m.TwoFactorEnabled,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
