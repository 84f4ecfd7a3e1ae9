package repositories

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserAccessRepository records and queries authentication audit entries.
type UserAccessRepository interface {
	SaveAccess(ctx context.Context, access domain.UserAccess) error
	CountSuccessfulAccesses(ctx context.Context, userID string) (int, error)
	// ListAccessesByUserID returns the user's most recent access records,
	// newest first.
	ListAccessesByUserID(ctx context.Context, userID string, limit int) ([]domain.UserAccess, error)
}
