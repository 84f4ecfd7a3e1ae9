package services

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates the user's single account. The current balance starts
// at the initial balance; preferences default when omitted.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	account := domain.Account{
		AccountID:          uuid.NewString(),
		UserID:             userID,
		InitialBalance:     decimal.Zero,
		CurrentBalance:     decimal.Zero,
		Theme:              domain.ThemeLight,
		Language:           "pt-BR",
		Currency:           "BRL",
		Notifications:      true,
		EmailNotifications: true,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if req.Avatar != nil {
		account.Avatar = *req.Avatar
	}
	if req.InitialBalance != nil {
		account.InitialBalance = *req.InitialBalance
		account.CurrentBalance = *req.InitialBalance
	}
	if req.Theme != nil {
		account.Theme = *req.Theme
	}
	if req.Language != nil {
		account.Language = *req.Language
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.Notifications != nil {
		account.Notifications = *req.Notifications
	}
	if req.EmailNotifications != nil {
		account.EmailNotifications = *req.EmailNotifications
	}
	if req.TwoFactorEnabled != nil {
		account.TwoFactorEnabled = *req.TwoFactorEnabled
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", "user_id", userID, "error", err)
		return nil, err
	}

	logger.Info("Account created", "account_id", account.AccountID, "user_id", userID)
	return &account, nil
}

// GetAccountByUserID retrieves the account owned by userID.
func (s *accountService) GetAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByUserID(ctx, userID)
}

// GetAccountByID retrieves an account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// UpdateAccount applies preference changes. The initial balance can only be
// set while it is still zero; once positive it is silently left untouched.
func (s *accountService) UpdateAccount(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Avatar != nil {
		account.Avatar = *req.Avatar
	}
	if req.InitialBalance != nil && account.InitialBalance.IsZero() {
		account.InitialBalance = *req.InitialBalance
	}
	if req.Theme != nil {
		account.Theme = *req.Theme
	}
	if req.Language != nil {
		account.Language = *req.Language
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.Notifications != nil {
		account.Notifications = *req.Notifications
	}
	if req.EmailNotifications != nil {
		account.EmailNotifications = *req.EmailNotifications
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", "account_id", account.AccountID, "error", err)
		return nil, err
	}
	return account, nil
}

// SetBalance overwrites the current balance without a transaction record.
func (s *accountService) SetBalance(ctx context.Context, userID string, balance decimal.Decimal) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.SetBalance(ctx, userID, balance, userID, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Balance overwritten", "account_id", account.AccountID, "balance", balance.String())
	return account, nil
}

// UpdateAvatar sets the account's avatar URL.
func (s *accountService) UpdateAvatar(ctx context.Context, userID string, avatarURL string) (*domain.Account, error) {
	avatar := avatarURL
	return s.UpdateAccount(ctx, userID, dto.UpdateAccountRequest{Avatar: &avatar})
}

// ToggleTwoFactor flips the two-factor flag.
func (s *accountService) ToggleTwoFactor(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.TwoFactorEnabled = !account.TwoFactorEnabled
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

// SetActive activates or deactivates the account. Deactivated accounts keep
// their history but reject new transactions.
func (s *accountService) SetActive(ctx context.Context, userID string, active bool) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.IsActive = active
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}

	logger.Info("Account active flag changed", "account_id", account.AccountID, "active", active)
	return account, nil
}

// GetAccountStats returns the account's balance position summary.
func (s *accountService) GetAccountStats(ctx context.Context, userID string) (*dto.AccountStatsResponse, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := dto.ToAccountStatsResponse(account)
	return &stats, nil
}

// ListAccounts retrieves a page of accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}
