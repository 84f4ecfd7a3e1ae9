package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/fintrack/fintrack_backend/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	userRepo   portsrepo.UserRepository
	accessRepo portsrepo.UserAccessRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository, accessRepo portsrepo.UserAccessRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, accessRepo: accessRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a bcrypt-hashed password. Email and
// CPF must be unique.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date: %w", err)
		}
		birthDate = &parsed
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		CPF:          req.CPF,
		PasswordHash: hashed,
		Phone:        req.Phone,
		BirthDate:    birthDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", "error", err)
		return nil, err
	}

	logger.Info("User created", "user_id", user.UserID)
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByEmail retrieves a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// ListUsers retrieves a page of users.
func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsers(ctx, limit, offset)
}

// ListUserAccesses retrieves the user's most recent authentication audit
// records.
func (s *userService) ListUserAccesses(ctx context.Context, userID string, limit int) ([]domain.UserAccess, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.accessRepo.ListAccessesByUserID(ctx, userID, limit)
}
