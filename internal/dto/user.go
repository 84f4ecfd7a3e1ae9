package dto

import (
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// RegisterUserRequest defines the data needed to register a new user.
type RegisterUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	CPF       string `json:"cpf" binding:"required,min=11,max=14"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AccessMetadata carries request-level facts recorded in the access audit log.
type AccessMetadata struct {
	IPAddress string
	UserAgent string
}

// UserResponse defines the data returned for a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID    string     `json:"userID"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CPF       string     `json:"cpf"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	AccessToken   string       `json:"accessToken"`
	ExpiresAt     time.Time    `json:"expiresAt"`
	User          UserResponse `json:"user"`
	IsFirstAccess bool         `json:"isFirstAccess"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		CPF:       u.CPF,
		Phone:     u.Phone,
		BirthDate: u.BirthDate,
		CreatedAt: u.CreatedAt,
	}
}

// UserAccessResponse defines the data returned for an access audit record.
type UserAccessResponse struct {
	AccessID   string    `json:"accessID"`
	IPAddress  string    `json:"ipAddress"`
	UserAgent  string    `json:"userAgent,omitempty"`
	AccessType string    `json:"accessType"`
	Success    bool      `json:"success"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUserAccessResponses converts domain access records to response DTOs.
func ToUserAccessResponses(accesses []domain.UserAccess) []UserAccessResponse {
	res := make([]UserAccessResponse, len(accesses))
	for i, a := range accesses {
		res[i] = UserAccessResponse{
			AccessID:   a.AccessID,
			IPAddress:  a.IPAddress,
			UserAgent:  a.UserAgent,
			AccessType: string(a.Type),
			Success:    a.Success,
			CreatedAt:  a.CreatedAt,
		}
	}
	return res
}

// ToUserResponses converts a slice of domain users to response DTOs.
func ToUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}
