package services

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// TransactionSvcFacade is the transaction engine's public surface. Callers
// supply an authenticated userID; the engine trusts it without re-verifying
// identity.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, filter dto.TransactionFilterParams) (*dto.ListTransactionsResponse, error)
	UpdateTransaction(ctx context.Context, transactionID string, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	CancelTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
}

// StatisticsSvcFacade derives aggregates from the stored transaction set.
type StatisticsSvcFacade interface {
	GetStatistics(ctx context.Context, userID string, startDate, endDate *time.Time) (*domain.Statistics, error)
	GetCategories(ctx context.Context, userID string) ([]string, error)
}
