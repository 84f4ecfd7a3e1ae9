package services

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
)

type statisticsService struct {
	transactionRepo portsrepo.TransactionRepository
}

// NewStatisticsService creates a new statistics service.
func NewStatisticsService(transactionRepo portsrepo.TransactionRepository) portssvc.StatisticsSvcFacade {
	return &statisticsService{transactionRepo: transactionRepo}
}

var _ portssvc.StatisticsSvcFacade = (*statisticsService)(nil)

// GetStatistics aggregates the user's active transactions in the optional
// date range. Income sums every income-type row, inbound transfer mirror
// legs included; only outgoing transfer legs accumulate under Transfers.
func (s *statisticsService) GetStatistics(ctx context.Context, userID string, startDate, endDate *time.Time) (*domain.Statistics, error) {
	transactions, err := s.transactionRepo.ListActiveByDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	stats := &domain.Statistics{
		TransactionCount: len(transactions),
		CategoryStats:    make(map[string]domain.CategoryStat),
	}

	for i := range transactions {
		txn := &transactions[i]
		cat := stats.CategoryStats[txn.Category]
		cat.Count++

		switch txn.Type {
		case domain.Transfer:
			stats.Transfers = stats.Transfers.Add(txn.Amount)
		case domain.Income:
			stats.Income = stats.Income.Add(txn.Amount)
			cat.Income = cat.Income.Add(txn.Amount)
		case domain.Expense:
			stats.Expenses = stats.Expenses.Add(txn.Amount)
			cat.Expense = cat.Expense.Add(txn.Amount)
		}

		stats.CategoryStats[txn.Category] = cat
	}

	stats.Balance = stats.Income.Sub(stats.Expenses)
	return stats, nil
}

// GetCategories returns the user's distinct transaction categories.
func (s *statisticsService) GetCategories(ctx context.Context, userID string) ([]string, error) {
	return s.transactionRepo.ListCategories(ctx, userID)
}
