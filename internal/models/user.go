package models

import "time"

// User is the DB representation of a registered user.
type User struct {
	UserID       string     `db:"user_id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	CPF          string     `db:"cpf"`
	PasswordHash string     `db:"password_hash"`
	Phone        string     `db:"phone"`
	BirthDate    *time.Time `db:"birth_date"`
	AuditFields
}

// UserAccess is the DB representation of an authentication audit record.
type UserAccess struct {
	AccessID  string    `db:"access_id"`
	UserID    string    `db:"user_id"`
	IPAddress string    `db:"ip_address"`
	UserAgent string    `db:"user_agent"`
	Type      string    `db:"access_type"`
	Success   bool      `db:"success"`
	CreatedAt time.Time `db:"created_at"`
}
