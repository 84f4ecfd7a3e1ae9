package services

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatisticsServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     *statisticsService
	ctx         context.Context
}

func (s *StatisticsServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.service = NewStatisticsService(s.mockTxnRepo).(*statisticsService)
	s.ctx = context.Background()
}

func TestStatisticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsServiceTestSuite))
}

func txn(txnType domain.TransactionType, amount int64, category string) domain.Transaction {
	return domain.Transaction{
		Type:     txnType,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Status:   domain.StatusActive,
	}
}

func (s *StatisticsServiceTestSuite) TestGetStatisticsAggregates() {
	s.mockTxnRepo.On("ListActiveByDateRange", s.ctx, "user-1", (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Transaction{
			txn(domain.Income, 100, "salary"),
			txn(domain.Expense, 30, "food"),
			txn(domain.Transfer, 20, "transfer"),
		}, nil)

	stats, err := s.service.GetStatistics(s.ctx, "user-1", nil, nil)

	s.Require().NoError(err)
	s.True(stats.Income.Equal(decimal.NewFromInt(100)), "income: %s", stats.Income)
	s.True(stats.Expenses.Equal(decimal.NewFromInt(30)), "expenses: %s", stats.Expenses)
	s.True(stats.Transfers.Equal(decimal.NewFromInt(20)), "transfers: %s", stats.Transfers)
	s.True(stats.Balance.Equal(decimal.NewFromInt(70)), "balance: %s", stats.Balance)
	s.Equal(3, stats.TransactionCount)
}

func (s *StatisticsServiceTestSuite) TestInboundMirrorLegsCountAsIncome() {
	s.mockTxnRepo.On("ListActiveByDateRange", s.ctx, "user-2", (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Transaction{
			txn(domain.Income, 50, "salary"),
			txn(domain.Income, 20, TransferCategory),
		}, nil)

	stats, err := s.service.GetStatistics(s.ctx, "user-2", nil, nil)

	s.Require().NoError(err)
	s.True(stats.Income.Equal(decimal.NewFromInt(70)), "income: %s", stats.Income)
	s.True(stats.Transfers.IsZero(), "transfers: %s", stats.Transfers)
	s.True(stats.Balance.Equal(decimal.NewFromInt(70)), "balance: %s", stats.Balance)
	s.True(stats.CategoryStats[TransferCategory].Income.Equal(decimal.NewFromInt(20)))
}

func (s *StatisticsServiceTestSuite) TestCategoryBreakdown() {
	s.mockTxnRepo.On("ListActiveByDateRange", s.ctx, "user-3", (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Transaction{
			txn(domain.Expense, 10, "food"),
			txn(domain.Expense, 25, "food"),
			txn(domain.Income, 100, "salary"),
		}, nil)

	stats, err := s.service.GetStatistics(s.ctx, "user-3", nil, nil)

	s.Require().NoError(err)
	food := stats.CategoryStats["food"]
	s.Equal(2, food.Count)
	s.True(food.Expense.Equal(decimal.NewFromInt(35)))
	s.True(food.Income.IsZero())

	salary := stats.CategoryStats["salary"]
	s.Equal(1, salary.Count)
	s.True(salary.Income.Equal(decimal.NewFromInt(100)))
}

func (s *StatisticsServiceTestSuite) TestEmptyRangeYieldsZeroes() {
	s.mockTxnRepo.On("ListActiveByDateRange", s.ctx, "user-4", (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Transaction{}, nil)

	stats, err := s.service.GetStatistics(s.ctx, "user-4", nil, nil)

	s.Require().NoError(err)
	s.True(stats.Balance.IsZero())
	s.Equal(0, stats.TransactionCount)
	s.Empty(stats.CategoryStats)
}

func (s *StatisticsServiceTestSuite) TestGetCategories() {
	s.mockTxnRepo.On("ListCategories", s.ctx, "user-5").Return([]string{"food", "salary"}, nil)

	categories, err := s.service.GetCategories(s.ctx, "user-5")

	s.Require().NoError(err)
	s.Equal([]string{"food", "salary"}, categories)
}
