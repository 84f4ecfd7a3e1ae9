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
	"github.com/google/uuid"
)

// TransferCategory is the fixed category assigned to transfer mirror legs.
const TransferCategory = "transfer"

type transactionService struct {
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	userRepo        portsrepo.UserRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
	userRepo portsrepo.UserRepository,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		userRepo:        userRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a balance-affecting event for the user's account.
// Transfers additionally produce a mirror income leg on the destination
// account when that account exists; when it does not, the transfer proceeds
// one-sided and only debits the source.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	txnDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction date", apperrors.ErrValidation)
	}

	if txnType == domain.Transfer && req.TransferAccountID == nil {
		return nil, fmt.Errorf("%w: transfer requires a destination account", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
	}

	// Early rejection against the last known balance. The repository repeats
	// this check against the locked balance, which is the one that decides.
	if txnType.RequiresFunds() && account.CurrentBalance.LessThan(req.Amount) {
		return nil, apperrors.ErrInsufficientBalance
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:     uuid.NewString(),
		UserID:            userID,
		AccountID:         account.AccountID,
		Amount:            req.Amount,
		Type:              txnType,
		Category:          req.Category,
		Description:       req.Description,
		TransactionDate:   txnDate,
		Reference:         req.Reference,
		TransferAccountID: req.TransferAccountID,
		Tags:              req.Tags,
		Status:            domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.PaymentMethod != nil {
		pm := domain.PaymentMethod(*req.PaymentMethod)
		txn.PaymentMethod = &pm
	}
	if req.RecurringType != nil {
		rt := domain.RecurringType(*req.RecurringType)
		txn.IsRecurring = true
		txn.RecurringType = &rt
	}

	var mirror *domain.Transaction
	if txnType == domain.Transfer {
		mirror, err = s.buildMirrorLeg(ctx, &txn, *req.TransferAccountID)
		if err != nil {
			return nil, err
		}
		if mirror == nil {
			logger.Info("Transfer destination not found, proceeding one-sided",
				"transaction_id", txn.TransactionID, "destination", *req.TransferAccountID)
		}
	}

	saved, err := s.transactionRepo.SaveTransaction(ctx, txn, mirror)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientBalance) {
			logger.Error("Failed to save transaction", "user_id", userID, "error", err)
		}
		return nil, err
	}

	logger.Info("Transaction created",
		"transaction_id", saved.TransactionID,
		"type", string(saved.Type),
		"amount", saved.Amount.String(),
	)
	return saved, nil
}

// buildMirrorLeg constructs the destination income leg of a transfer. Returns
// (nil, nil) when the destination account does not exist; only unexpected
// lookup failures are returned as errors.
func (s *transactionService) buildMirrorLeg(ctx context.Context, source *domain.Transaction, destAccountID string) (*domain.Transaction, error) {
	dest, err := s.accountRepo.FindAccountByID(ctx, destAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if dest.AccountID == source.AccountID {
		return nil, fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}

	description := "Transfer received"
	if sender, err := s.userRepo.FindUserByID(ctx, source.UserID); err == nil {
		description = fmt.Sprintf("Transfer received from %s", sender.Name)
	}

	reference := source.TransactionID
	mirror := &domain.Transaction{
		TransactionID:     uuid.NewString(),
		UserID:            dest.UserID,
		AccountID:         dest.AccountID,
		Amount:            source.Amount,
		Type:              domain.Income,
		Category:          TransferCategory,
		Description:       description,
		TransactionDate:   source.TransactionDate,
		PaymentMethod:     source.PaymentMethod,
		Reference:         &reference,
		TransferAccountID: &source.AccountID,
		Status:            domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     source.CreatedAt,
			CreatedBy:     source.UserID,
			LastUpdatedAt: source.LastUpdatedAt,
			LastUpdatedBy: source.UserID,
		},
	}
	return mirror, nil
}

// GetTransactionByID retrieves a transaction by ID. Ownership enforcement is
// the caller's responsibility.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions returns one page of the user's transactions matching the
// given filters.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.TransactionFilterParams) (*dto.ListTransactionsResponse, error) {
	params.Normalize()

	filter, err := toRepositoryFilter(params)
	if err != nil {
		return nil, err
	}

	transactions, total, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Items: dto.ToTransactionResponses(transactions),
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}

func toRepositoryFilter(params dto.TransactionFilterParams) (portsrepo.TransactionFilter, error) {
	filter := portsrepo.TransactionFilter{
		Category:  params.Category,
		MinAmount: params.MinAmount,
		MaxAmount: params.MaxAmount,
		Tags:      params.Tags,
		Page:      params.Page,
		Limit:     params.Limit,
	}
	if params.Type != nil {
		t := domain.TransactionType(*params.Type)
		filter.Type = &t
	}
	if params.PaymentMethod != nil {
		pm := domain.PaymentMethod(*params.PaymentMethod)
		filter.PaymentMethod = &pm
	}
	if params.Status != nil {
		st := domain.TransactionStatus(*params.Status)
		filter.Status = &st
	}
	if params.StartDate != nil {
		start, err := time.Parse("2006-01-02", *params.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
		}
		filter.StartDate = &start
	}
	if params.EndDate != nil {
		end, err := time.Parse("2006-01-02", *params.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid end date", apperrors.ErrValidation)
		}
		filter.EndDate = &end
	}
	return filter, nil
}

// UpdateTransaction applies descriptive changes to an owned transaction.
// Amount and type on the request are ignored: financial fields never change
// after creation. Cancellation must go through CancelTransaction so the
// balance reversal happens.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if txn.IsCancelled() {
		return nil, fmt.Errorf("%w: cannot modify a cancelled transaction", apperrors.ErrValidation)
	}
	if req.Status != nil && domain.TransactionStatus(*req.Status) == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: use the cancel operation to cancel a transaction", apperrors.ErrValidation)
	}

	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.TransactionDate != nil {
		txnDate, err := time.Parse("2006-01-02", *req.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid transaction date", apperrors.ErrValidation)
		}
		txn.TransactionDate = txnDate
	}
	if req.PaymentMethod != nil {
		pm := domain.PaymentMethod(*req.PaymentMethod)
		txn.PaymentMethod = &pm
	}
	if req.Reference != nil {
		txn.Reference = req.Reference
	}
	if req.Tags != nil {
		txn.Tags = req.Tags
	}
	if req.RecurringType != nil {
		rt := domain.RecurringType(*req.RecurringType)
		txn.IsRecurring = true
		txn.RecurringType = &rt
	}
	if req.Status != nil {
		txn.Status = domain.TransactionStatus(*req.Status)
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction", "transaction_id", transactionID, "error", err)
		return nil, err
	}
	return txn, nil
}

// CancelTransaction reverses an owned transaction: the record flips to
// cancelled and the inverse balance effect applies to the account's current
// balance.
func (s *transactionService) CancelTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if txn.IsCancelled() {
		return nil, fmt.Errorf("%w: transaction already cancelled", apperrors.ErrValidation)
	}

	cancelled, err := s.transactionRepo.CancelTransaction(ctx, *txn, userID, time.Now())
	if err != nil {
		logger.Error("Failed to cancel transaction", "transaction_id", transactionID, "error", err)
		return nil, err
	}

	logger.Info("Transaction cancelled", "transaction_id", transactionID)
	return cancelled, nil
}
