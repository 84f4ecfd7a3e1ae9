package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/fintrack/fintrack_backend/internal/utils"
	"github.com/fintrack/fintrack_backend/pkg/config"
	"github.com/google/uuid"
)

type authService struct {
	userSvc    portssvc.UserSvcFacade
	accountSvc portssvc.AccountSvcFacade
	userRepo   portsrepo.UserRepository
	accessRepo portsrepo.UserAccessRepository
	cfg        *config.Config
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userSvc portssvc.UserSvcFacade,
	accountSvc portssvc.AccountSvcFacade,
	userRepo portsrepo.UserRepository,
	accessRepo portsrepo.UserAccessRepository,
	cfg *config.Config,
) portssvc.AuthSvcFacade {
	return &authService{
		userSvc:    userSvc,
		accountSvc: accountSvc,
		userRepo:   userRepo,
		accessRepo: accessRepo,
		cfg:        cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// recordAccess appends an audit entry. Audit failures are logged but never
// fail the authentication flow itself.
func (s *authService) recordAccess(ctx context.Context, userID string, accessType domain.AccessType, success bool, meta dto.AccessMetadata) {
	logger := middleware.GetLoggerFromCtx(ctx)

	access := domain.UserAccess{
		AccessID:  uuid.NewString(),
		UserID:    userID,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Type:      accessType,
		Success:   success,
		CreatedAt: time.Now(),
	}
	if err := s.accessRepo.SaveAccess(ctx, access); err != nil {
		logger.Error("Failed to record access", "user_id", userID, "error", err)
	}
}

func (s *authService) issueToken(user *domain.User, isFirstAccess bool) (*dto.AuthResponse, error) {
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.AuthResponse{
		AccessToken:   token,
		ExpiresAt:     time.Now().Add(s.cfg.JWTExpiryDuration),
		User:          dto.ToUserResponse(user),
		IsFirstAccess: isFirstAccess,
	}, nil
}

// Register creates a user together with their account, records the
// registration in the audit log, and returns a fresh access token.
func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest, meta dto.AccessMetadata) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userSvc.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.accountSvc.CreateAccount(ctx, user.UserID, dto.CreateAccountRequest{}); err != nil {
		logger.Error("Failed to create account for new user", "user_id", user.UserID, "error", err)
		return nil, err
	}

	s.recordAccess(ctx, user.UserID, domain.AccessRegister, true, meta)

	logger.Info("User registered", "user_id", user.UserID)
	return s.issueToken(user, true)
}

// Login verifies credentials and returns an access token. Every attempt
// against a known user lands in the audit log; IsFirstAccess reports whether
// this is the user's first successful login.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest, meta dto.AccessMetadata) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.recordAccess(ctx, user.UserID, domain.AccessLogin, false, meta)
		logger.Info("Login failed", "user_id", user.UserID)
		return nil, apperrors.ErrUnauthorized
	}

	priorLogins, err := s.accessRepo.CountSuccessfulAccesses(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to count prior accesses", "user_id", user.UserID, "error", err)
		priorLogins = 1
	}

	s.recordAccess(ctx, user.UserID, domain.AccessLogin, true, meta)

	logger.Info("User logged in", "user_id", user.UserID)
	return s.issueToken(user, priorLogins == 0)
}
