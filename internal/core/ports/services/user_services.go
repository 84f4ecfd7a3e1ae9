package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// UserSvcFacade exposes user identity operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	ListUserAccesses(ctx context.Context, userID string, limit int) ([]domain.UserAccess, error)
}

// AuthSvcFacade exposes authentication operations. Every successful or failed
// attempt is recorded in the access audit log.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterUserRequest, meta dto.AccessMetadata) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest, meta dto.AccessMetadata) (*dto.AuthResponse, error)
}
