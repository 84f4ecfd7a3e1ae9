package mapping

import (
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction for DB storage.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:     d.TransactionID,
		UserID:            d.UserID,
		AccountID:         d.AccountID,
		Amount:            d.Amount,
		Type:              string(d.Type),
		Category:          d.Category,
		Description:       d.Description,
		TransactionDate:   d.TransactionDate,
		Reference:         d.Reference,
		TransferAccountID: d.TransferAccountID,
		BalanceAfter:      d.BalanceAfter,
		IsRecurring:       d.IsRecurring,
		Tags:              d.Tags,
		Status:            string(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.PaymentMethod != nil {
		pm := string(*d.PaymentMethod)
		m.PaymentMethod = &pm
	}
	if d.RecurringType != nil {
		rt := string(*d.RecurringType)
		m.RecurringType = &rt
	}
	return m
}

// ToDomainTransaction converts a DB transaction row to the domain entity.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:     m.TransactionID,
		UserID:            m.UserID,
		AccountID:         m.AccountID,
		Amount:            m.Amount,
		Type:              domain.TransactionType(m.Type),
		Category:          m.Category,
		Description:       m.Description,
		TransactionDate:   m.TransactionDate,
		Reference:         m.Reference,
		TransferAccountID: m.TransferAccountID,
		BalanceAfter:      m.BalanceAfter,
		IsRecurring:       m.IsRecurring,
		Tags:              m.Tags,
		Status:            domain.TransactionStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		d.PaymentMethod = &pm
	}
	if m.RecurringType != nil {
		rt := domain.RecurringType(*m.RecurringType)
		d.RecurringType = &rt
	}
	return d
}
