package mapping

import (
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/models"
)

// ToModelUser converts a domain.User for DB storage.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		CPF:          d.CPF,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		BirthDate:    d.BirthDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a DB user row to the domain entity.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		CPF:          m.CPF,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		BirthDate:    m.BirthDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserAccess converts a DB access row to the domain entity.
func ToDomainUserAccess(m models.UserAccess) domain.UserAccess {
	return domain.UserAccess{
		AccessID:  m.AccessID,
		UserID:    m.UserID,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		Type:      domain.AccessType(m.Type),
		Success:   m.Success,
		CreatedAt: m.CreatedAt,
	}
}
