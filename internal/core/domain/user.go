package domain

import "time"

// User represents a registered person. Each user owns exactly one Account.
type User struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"` // Unique
	CPF          string     `json:"cpf"`   // Unique national identifier
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	AuditFields
}

// AccessType classifies a recorded authentication attempt.
type AccessType string

const (
	AccessLogin    AccessType = "login"
	AccessRegister AccessType = "register"
)

// UserAccess is an audit record of a single authentication attempt.
type UserAccess struct {
	AccessID  string     `json:"accessID"`
	UserID    string     `json:"userID"`
	IPAddress string     `json:"ipAddress"`
	UserAgent string     `json:"userAgent,omitempty"`
	Type      AccessType `json:"accessType"`
	Success   bool       `json:"success"`
	CreatedAt time.Time  `json:"createdAt"`
}
